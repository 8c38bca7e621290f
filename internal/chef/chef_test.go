package chef

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sahas-01/ChefGPT/internal/config"
	"github.com/sahas-01/ChefGPT/internal/sarvam"
)

const suggestionJSON = `{
  "message": "Aapke liye paanch recipes mili hain!",
  "recipes": [
    {
      "id": "generated_1",
      "name": "Paneer Bhurji",
      "region": "Punjabi",
      "time": "20 mins",
      "difficulty": "Easy",
      "ingredients": ["200g paneer", "1 onion"],
      "steps": ["Crumble the paneer.", "Saute onions until golden."],
      "description": "Quick scrambled paneer."
    }
  ]
}`

type fakeChat struct {
	content    string
	err        error
	lastSystem string
	lastUser   string
	lastOpts   sarvam.ChatOpts
}

func (f *fakeChat) Chat(_ context.Context, system, user string, opts sarvam.ChatOpts) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	f.lastOpts = opts
	return f.content, f.err
}

func genConfig() config.GenerationConfig {
	return config.GenerationConfig{Temperature: 0.3, MaxTokens: 3500}
}

func TestSuggest(t *testing.T) {
	fake := &fakeChat{content: suggestionJSON}
	c := New(fake, genConfig())

	got, err := c.Suggest(context.Background(), Request{
		Ingredients: []string{"paneer", "onion"},
		Cuisine:     "Punjabi",
		Language:    "hi-IN",
	})
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if len(got.Recipes) != 1 || got.Recipes[0].Name != "Paneer Bhurji" {
		t.Errorf("unexpected suggestion: %+v", got)
	}
	if got.Message == "" {
		t.Error("expected a spoken summary message")
	}

	if !strings.Contains(fake.lastUser, "paneer") || !strings.Contains(fake.lastUser, "Punjabi") {
		t.Error("prompt did not carry the ingredients and cuisine")
	}
	if fake.lastSystem != systemRole {
		t.Errorf("unexpected system role: %q", fake.lastSystem)
	}
	if fake.lastOpts.Temperature != 0.3 || fake.lastOpts.MaxTokens != 3500 {
		t.Errorf("generation options not forwarded: %+v", fake.lastOpts)
	}
}

func TestSuggestFencedOutput(t *testing.T) {
	plain := &fakeChat{content: suggestionJSON}
	fenced := &fakeChat{content: "```json\n" + suggestionJSON + "\n```"}

	a, err := New(plain, genConfig()).Suggest(context.Background(), Request{Ingredients: []string{"paneer"}})
	if err != nil {
		t.Fatalf("plain output: %v", err)
	}
	b, err := New(fenced, genConfig()).Suggest(context.Background(), Request{Ingredients: []string{"paneer"}})
	if err != nil {
		t.Fatalf("fenced output: %v", err)
	}
	if a.Recipes[0].Name != b.Recipes[0].Name || a.Message != b.Message {
		t.Error("fenced and unfenced outputs parsed differently")
	}
}

func TestSuggestBadOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Prose", "Sorry, I cannot help with that."},
		{"NotAnObject", `["one", "two"]`},
		{"EmptyRecipes", `{"message": "hi", "recipes": []}`},
		{"RecipeMissingSteps", `{"message": "hi", "recipes": [{"id": "generated_1", "name": "X", "region": "R", "time": "5 mins", "difficulty": "Easy", "ingredients": ["a"], "steps": []}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fakeChat{content: tt.content}, genConfig())
			_, err := c.Suggest(context.Background(), Request{Ingredients: []string{"rice"}})
			if !errors.Is(err, ErrBadGeneration) {
				t.Fatalf("expected ErrBadGeneration, got %v", err)
			}
			// Raw model text must never leak into the error surface.
			if strings.Contains(err.Error(), tt.content) {
				t.Error("error message leaks model output")
			}
		})
	}
}

func TestSuggestUpstreamErrorPassthrough(t *testing.T) {
	upstream := &sarvam.StatusError{StatusCode: 429, Endpoint: "/v1/chat/completions"}
	c := New(&fakeChat{err: upstream}, genConfig())

	_, err := c.Suggest(context.Background(), Request{Ingredients: []string{"rice"}})
	var se *sarvam.StatusError
	if !errors.As(err, &se) || se.StatusCode != 429 {
		t.Fatalf("expected upstream status error to propagate, got %v", err)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Bare", `{"a":1}`, `{"a":1}`},
		{"JSONFence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"PlainFence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"TrailingFenceOnly", "{\"a\":1}\n```", `{"a":1}`},
		{"Whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripFences(tt.in)
			if got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := StripFences(got); again != got {
				t.Errorf("StripFences is not idempotent on %q", got)
			}
		})
	}
}
