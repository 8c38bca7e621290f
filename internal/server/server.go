// Package server implements the HTTP JSON API for chefgpt.
//
// This is the only surface the browser client talks to. Four routes proxy
// the Sarvam vendor endpoints (generation, transcription, translation,
// synthesis); the rest manage the server-held session state (pantry,
// favorites, preferences) and expose the ask-the-chef cycle.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/sahas-01/ChefGPT/internal/chef"
	"github.com/sahas-01/ChefGPT/internal/recipe"
	"github.com/sahas-01/ChefGPT/internal/sarvam"
	"github.com/sahas-01/ChefGPT/internal/store"
)

// Chef generates recipe suggestions.
type Chef interface {
	Suggest(ctx context.Context, req chef.Request) (*recipe.Suggestion, error)
}

// Translator translates text and whole recipes.
type Translator interface {
	Text(ctx context.Context, input, sourceLang, targetLang string) (*sarvam.TranslationResult, error)
	Recipe(ctx context.Context, r recipe.Recipe, sourceLang, targetLang string) (recipe.Recipe, error)
}

// Narrator synthesizes speech.
type Narrator interface {
	Narrate(ctx context.Context, text, language, speaker string) (string, error)
}

// Transcriber converts recorded audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (*sarvam.Transcription, error)
}

// Pantry is the session state store.
type Pantry interface {
	AddIngredients(ctx context.Context, names []string) ([]recipe.Ingredient, error)
	Ingredients(ctx context.Context) ([]recipe.Ingredient, error)
	RemoveIngredient(ctx context.Context, id string) error
	ClearIngredients(ctx context.Context) error
	ToggleExpiring(ctx context.Context, id string) (*recipe.Ingredient, error)
	AddFavorite(ctx context.Context, r recipe.Recipe) error
	Favorites(ctx context.Context) ([]recipe.Recipe, error)
	RemoveFavorite(ctx context.Context, recipeID string) error
	SetPreference(ctx context.Context, key, value string) error
	Preference(ctx context.Context, key string) (string, error)
}

// Deps bundles everything the API routes need.
type Deps struct {
	Chef        Chef
	Session     *chef.Session
	Translator  Translator
	Narrator    Narrator
	Transcriber Transcriber
	Pantry      Pantry
}

// Server is the API HTTP server.
type Server struct {
	port   int
	deps   Deps
	server *http.Server
}

// New creates a new API server on the given port.
func New(port int, deps Deps) *Server {
	return &Server{port: port, deps: deps}
}

// Listen starts the HTTP server. It blocks until the context is cancelled or
// the listener fails.
func (s *Server) Listen(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/stt", s.handleSTT)
	mux.HandleFunc("POST /api/tts", s.handleTTS)
	mux.HandleFunc("POST /api/translate", s.handleTranslate)
	mux.HandleFunc("POST /api/translate/recipe", s.handleTranslateRecipe)

	mux.HandleFunc("GET /api/session", s.handleSession)

	mux.HandleFunc("GET /api/ingredients", s.handleListIngredients)
	mux.HandleFunc("POST /api/ingredients", s.handleAddIngredients)
	mux.HandleFunc("DELETE /api/ingredients", s.handleClearIngredients)
	mux.HandleFunc("DELETE /api/ingredients/{id}", s.handleRemoveIngredient)
	mux.HandleFunc("POST /api/ingredients/{id}/expiring", s.handleToggleExpiring)

	mux.HandleFunc("GET /api/favorites", s.handleListFavorites)
	mux.HandleFunc("PUT /api/favorites", s.handleAddFavorite)
	mux.HandleFunc("DELETE /api/favorites/{id}", s.handleRemoveFavorite)

	mux.HandleFunc("GET /api/preferences", s.handleGetPreferences)
	mux.HandleFunc("PUT /api/preferences", s.handlePutPreferences)

	// Swagger UI — serves the generated OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("api server listening", "port", s.port)

	go func() {
		<-ctx.Done()
		slog.Info("api server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("api listen: %w", err)
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// errorEnvelope is the uniform error response body.
type errorEnvelope struct {
	Error string `json:"error"`
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to its envelope and status. Configuration errors
// produce a fixed 500 before any upstream call was attempted; upstream status
// errors forward the original code with the body logged server-side only;
// content-shape errors collapse to the generic parse-failure message.
func writeError(w http.ResponseWriter, err error) {
	var serr *sarvam.StatusError
	switch {
	case errors.Is(err, sarvam.ErrMissingAPIKey):
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: sarvam.ErrMissingAPIKey.Error()})
	case errors.As(err, &serr):
		writeJSON(w, serr.StatusCode, errorEnvelope{Error: fmt.Sprintf("Sarvam API error: %d", serr.StatusCode)})
	case errors.Is(err, chef.ErrBadGeneration):
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: "Failed to parse recipe generation"})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorEnvelope{Error: "not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: err.Error()})
	}
}

// writeBadRequest reports an invalid request body or missing field.
func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: msg})
}
