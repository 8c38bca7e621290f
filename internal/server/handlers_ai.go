package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sahas-01/ChefGPT/internal/chef"
	"github.com/sahas-01/ChefGPT/internal/recipe"
	"github.com/sahas-01/ChefGPT/internal/sarvam"
	"github.com/sahas-01/ChefGPT/internal/store"
)

type chatRequest struct {
	Ingredients []struct {
		Name string `json:"name"`
	} `json:"ingredients"`
	Cuisine  string `json:"cuisine,omitempty"`
	Language string `json:"language,omitempty"`
}

// handleChat runs the ask-the-chef cycle.
//
// @Summary     Generate recipe suggestions
// @Description Builds a generation prompt from the submitted ingredients (or the stored pantry
// @Description when none are sent), asks the LLM for five recipes, and returns the parsed,
// @Description shape-checked result. Regeneration is the caller re-issuing this request.
// @Tags        chef
// @Accept      json
// @Produce     json
// @Param       request  body      chatRequest  true  "Ingredients plus optional cuisine and language"
// @Success     200  {object}  recipe.Suggestion
// @Failure     500  {object}  errorEnvelope  "Missing credential or unparseable generation"
// @Router      /api/chat [post]
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid json: "+err.Error())
		return
	}

	names := make([]string, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		names = append(names, ing.Name)
	}
	if len(names) == 0 {
		pantry, err := s.deps.Pantry.Ingredients(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		for _, ing := range pantry {
			names = append(names, ing.Name)
		}
	}
	if len(names) == 0 {
		writeBadRequest(w, "no ingredients provided")
		return
	}

	cuisine := req.Cuisine
	if cuisine == "" {
		cuisine, _ = s.deps.Pantry.Preference(r.Context(), store.PrefCuisine)
	}

	s.deps.Session.Begin()
	suggestion, err := s.deps.Chef.Suggest(r.Context(), chef.Request{
		Ingredients: names,
		Cuisine:     cuisine,
		Language:    req.Language,
	})
	if err != nil {
		s.deps.Session.Fail(err.Error())
		var serr *sarvam.StatusError
		if errors.As(err, &serr) {
			writeJSON(w, serr.StatusCode, errorEnvelope{Error: "LLM error"})
			return
		}
		writeError(w, err)
		return
	}
	s.deps.Session.Complete(suggestion)

	writeJSON(w, http.StatusOK, suggestion)
}

// handleSTT transcribes one recorded audio upload.
//
// @Summary     Transcribe audio
// @Description Accepts a multipart upload and returns the upstream transcription result,
// @Description including the auto-detected language code, which also becomes the stored
// @Description working language.
// @Tags        speech
// @Accept      multipart/form-data
// @Produce     json
// @Param       file  formData  file  true  "Recorded audio"
// @Success     200  {object}  sarvam.Transcription
// @Failure     400  {object}  errorEnvelope  "No file provided"
// @Router      /api/stt [post]
func (s *Server) handleSTT(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	result, err := s.deps.Transcriber.Transcribe(r.Context(), file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	// The detected language becomes the session's working language for
	// narration and translation until the next recording changes it.
	if result.LanguageCode != "" {
		if err := s.deps.Pantry.SetPreference(r.Context(), store.PrefLanguage, result.LanguageCode); err != nil {
			slog.Warn("failed to store working language", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Raw)
}

type ttsRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	Speaker  string `json:"speaker,omitempty"`
}

type ttsResponse struct {
	Audio string `json:"audio"`
}

// handleTTS narrates text.
//
// @Summary     Synthesize speech
// @Description Returns one base64-encoded audio payload for client playback. Input beyond
// @Description the synthesis ceiling is truncated with an ellipsis, not chunked.
// @Tags        speech
// @Accept      json
// @Produce     json
// @Param       request  body      ttsRequest  true  "Text plus optional language and speaker"
// @Success     200  {object}  ttsResponse
// @Router      /api/tts [post]
func (s *Server) handleTTS(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid json: "+err.Error())
		return
	}
	if req.Text == "" {
		writeBadRequest(w, "text is required")
		return
	}

	audio, err := s.deps.Narrator.Narrate(r.Context(), req.Text, req.Language, req.Speaker)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ttsResponse{Audio: audio})
}

type translateRequest struct {
	Input              string `json:"input"`
	SourceLanguageCode string `json:"source_language_code"`
	TargetLanguageCode string `json:"target_language_code,omitempty"`
}

// handleTranslate translates one piece of text.
//
// @Summary     Translate text
// @Description Proxies one translation call and returns the upstream response unchanged.
// @Tags        translate
// @Accept      json
// @Produce     json
// @Param       request  body      translateRequest  true  "Input text and language pair"
// @Success     200  {object}  sarvam.TranslationResult
// @Router      /api/translate [post]
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid json: "+err.Error())
		return
	}
	if req.Input == "" || req.SourceLanguageCode == "" {
		writeBadRequest(w, "input and source_language_code are required")
		return
	}

	result, err := s.deps.Translator.Text(r.Context(), req.Input, req.SourceLanguageCode, req.TargetLanguageCode)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Raw)
}

type translateRecipeRequest struct {
	Recipe             recipe.Recipe `json:"recipe"`
	SourceLanguageCode string        `json:"source_language_code"`
	TargetLanguageCode string        `json:"target_language_code,omitempty"`
}

type translateRecipeResponse struct {
	Recipe recipe.Recipe `json:"recipe"`
}

// handleTranslateRecipe translates a whole recipe.
//
// @Summary     Translate a recipe
// @Description Issues four concurrent translation calls (name, metadata triple, ingredients,
// @Description steps) and combines them after all settle. A field the model mangled falls
// @Description back to its untranslated original; a failed call fails the whole request.
// @Tags        translate
// @Accept      json
// @Produce     json
// @Param       request  body      translateRecipeRequest  true  "Recipe and language pair"
// @Success     200  {object}  translateRecipeResponse
// @Router      /api/translate/recipe [post]
func (s *Server) handleTranslateRecipe(w http.ResponseWriter, r *http.Request) {
	var req translateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid json: "+err.Error())
		return
	}
	if req.SourceLanguageCode == "" {
		writeBadRequest(w, "source_language_code is required")
		return
	}
	if err := req.Recipe.Validate(); err != nil {
		writeBadRequest(w, "invalid recipe: "+err.Error())
		return
	}

	translated, err := s.deps.Translator.Recipe(r.Context(), req.Recipe, req.SourceLanguageCode, req.TargetLanguageCode)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, translateRecipeResponse{Recipe: translated})
}

type sessionResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Recipes []recipe.Recipe `json:"recipes,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// handleSession reports the current ask-the-chef cycle state.
//
// @Summary     Current generation state
// @Description Returns the session phase (idle, thinking, ready, failed) plus the last
// @Description suggestion when one is ready.
// @Tags        chef
// @Produce     json
// @Success     200  {object}  sessionResponse
// @Router      /api/session [get]
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	phase, suggestion, lastErr := s.deps.Session.Snapshot()

	resp := sessionResponse{Status: phase.String(), Error: lastErr}
	if suggestion != nil {
		resp.Message = suggestion.Message
		resp.Recipes = suggestion.Recipes
	}
	writeJSON(w, http.StatusOK, resp)
}
