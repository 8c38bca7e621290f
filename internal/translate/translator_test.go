package translate

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/sahas-01/ChefGPT/internal/recipe"
	"github.com/sahas-01/ChefGPT/internal/sarvam"
)

// fakeCaller maps each input to a canned translation and records calls.
type fakeCaller struct {
	mu      sync.Mutex
	replies map[string]string
	failOn  string
	calls   []string
}

func (f *fakeCaller) Translate(_ context.Context, input, _, _ string) (*sarvam.TranslationResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, input)
	f.mu.Unlock()

	if f.failOn != "" && strings.Contains(input, f.failOn) {
		return nil, &sarvam.StatusError{StatusCode: 503, Endpoint: "/translate"}
	}
	reply, ok := f.replies[input]
	if !ok {
		reply = input
	}
	return &sarvam.TranslationResult{TranslatedText: reply}, nil
}

func sampleRecipe() recipe.Recipe {
	return recipe.Recipe{
		ID:          "generated_1",
		Name:        "पनीर भुर्जी",
		Region:      "पंजाबी",
		Time:        "20 मिनट",
		Difficulty:  "आसान",
		Ingredients: []string{"200 ग्राम पनीर", "1 प्याज"},
		Steps:       []string{"पनीर को मसल लें।", "प्याज भूनें।"},
		Description: "झटपट बनने वाला नाश्ता",
	}
}

func TestRecipeTranslation(t *testing.T) {
	r := sampleRecipe()
	fake := &fakeCaller{replies: map[string]string{
		r.Name: "Paneer Bhurji",
		EncodeMetadata(Metadata{Region: r.Region, Time: r.Time, Difficulty: r.Difficulty}): "Punjabi ||| 20 mins ||| Easy",
		EncodeLines(r.Ingredients): "200g paneer\n1 onion",
		EncodeLines(r.Steps):       "Crumble the paneer.\nSaute the onion.",
	}}

	got, err := New(fake).Recipe(context.Background(), r, "hi-IN", "en-IN")
	if err != nil {
		t.Fatalf("Recipe returned error: %v", err)
	}

	if got.Name != "Paneer Bhurji" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Region != "Punjabi" || got.Time != "20 mins" || got.Difficulty != "Easy" {
		t.Errorf("metadata = %q/%q/%q", got.Region, got.Time, got.Difficulty)
	}
	if !reflect.DeepEqual(got.Ingredients, []string{"200g paneer", "1 onion"}) {
		t.Errorf("ingredients = %v", got.Ingredients)
	}
	if !reflect.DeepEqual(got.Steps, []string{"Crumble the paneer.", "Saute the onion."}) {
		t.Errorf("steps = %v", got.Steps)
	}

	// Untranslated fields carry over unchanged.
	if got.ID != r.ID || got.Description != r.Description {
		t.Errorf("id/description changed: %q %q", got.ID, got.Description)
	}

	// The whole recipe costs exactly four calls.
	if len(fake.calls) != 4 {
		t.Errorf("made %d translation calls, want 4", len(fake.calls))
	}
}

func TestRecipeTranslationFailsWhole(t *testing.T) {
	r := sampleRecipe()
	fake := &fakeCaller{failOn: "मसल"} // fail the steps block only

	_, err := New(fake).Recipe(context.Background(), r, "hi-IN", "en-IN")
	var se *sarvam.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestRecipeTranslationMangledSegmentsFallBack(t *testing.T) {
	r := sampleRecipe()
	fake := &fakeCaller{replies: map[string]string{
		r.Name: "",
		EncodeMetadata(Metadata{Region: r.Region, Time: r.Time, Difficulty: r.Difficulty}): "Punjabi - 20 mins - Easy",
	}}

	got, err := New(fake).Recipe(context.Background(), r, "hi-IN", "en-IN")
	if err != nil {
		t.Fatalf("Recipe returned error: %v", err)
	}
	if got.Name != r.Name {
		t.Errorf("empty name translation should keep the original, got %q", got.Name)
	}
	if got.Region != r.Region || got.Time != r.Time || got.Difficulty != r.Difficulty {
		t.Errorf("mangled metadata should fall back to originals, got %q/%q/%q",
			got.Region, got.Time, got.Difficulty)
	}
}

func TestTextDefaultsTarget(t *testing.T) {
	fake := &fakeCaller{}
	tr := New(fake)

	var gotTarget string
	capture := callerFunc(func(ctx context.Context, input, source, target string) (*sarvam.TranslationResult, error) {
		gotTarget = target
		return fake.Translate(ctx, input, source, target)
	})

	if _, err := New(capture).Text(context.Background(), "नमस्ते", "hi-IN", ""); err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if gotTarget != DefaultTargetLanguage {
		t.Errorf("target = %q, want %q", gotTarget, DefaultTargetLanguage)
	}

	if _, err := tr.Text(context.Background(), "नमस्ते", "hi-IN", "ta-IN"); err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
}

type callerFunc func(ctx context.Context, input, sourceLang, targetLang string) (*sarvam.TranslationResult, error)

func (f callerFunc) Translate(ctx context.Context, input, sourceLang, targetLang string) (*sarvam.TranslationResult, error) {
	return f(ctx, input, sourceLang, targetLang)
}
