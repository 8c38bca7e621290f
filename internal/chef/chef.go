// Package chef implements the prompt-construction and response-normalization
// pipeline that mediates between client intent and the Sarvam generation API.
//
// The pipeline is: build a deterministic instruction from the pantry, issue
// one blocking chat completion, strip Markdown fence artifacts from the
// returned text, parse it as JSON, and structurally validate the result
// against the recipe contract before accepting it. There is no retry and no
// caching — regeneration is always caller-initiated.
package chef

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/sahas-01/ChefGPT/internal/config"
	"github.com/sahas-01/ChefGPT/internal/recipe"
	"github.com/sahas-01/ChefGPT/internal/sarvam"
)

// ErrBadGeneration is returned when the model output cannot be parsed or
// fails the recipe shape check. The offending text is logged server-side and
// never attached to the error.
var ErrBadGeneration = errors.New("failed to parse recipe generation")

// ChatCaller is the slice of the Sarvam client the chef needs.
type ChatCaller interface {
	Chat(ctx context.Context, system, user string, opts sarvam.ChatOpts) (string, error)
}

// Request describes one generation ask.
type Request struct {
	// Ingredients are the pantry item names, in order.
	Ingredients []string

	// Cuisine is an optional regional-style hint (e.g., "Punjabi").
	Cuisine string

	// Language is the desired response language. Defaults to Hindi.
	Language string
}

// Chef is the generation gateway.
type Chef struct {
	client ChatCaller
	cfg    config.GenerationConfig
}

// New creates a Chef backed by the given chat caller.
func New(client ChatCaller, cfg config.GenerationConfig) *Chef {
	return &Chef{client: client, cfg: cfg}
}

// Suggest generates recipes for the request's pantry. Upstream status errors
// propagate unchanged so the API layer can forward the original code; content
// that fails to parse or validate collapses to ErrBadGeneration.
func (c *Chef) Suggest(ctx context.Context, req Request) (*recipe.Suggestion, error) {
	prompt := BuildPrompt(req.Ingredients, req.Cuisine, req.Language)

	content, err := c.client.Chat(ctx, systemRole, prompt, sarvam.ChatOpts{
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	cleaned := StripFences(content)

	var suggestion recipe.Suggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestion); err != nil {
		slog.Error("unparseable generation output", "error", err, "content", content)
		return nil, ErrBadGeneration
	}
	if err := suggestion.Validate(); err != nil {
		slog.Error("generation output failed shape check", "error", err, "content", content)
		return nil, ErrBadGeneration
	}

	slog.Info("generation complete", "recipes", len(suggestion.Recipes))
	return &suggestion, nil
}

// StripFences removes Markdown code-fence markers from model output and trims
// surrounding whitespace. Models wrap JSON in ```json fences despite being
// told not to; stripping is idempotent and fence-position independent.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
