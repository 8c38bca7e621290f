package translate

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sahas-01/ChefGPT/internal/recipe"
	"github.com/sahas-01/ChefGPT/internal/sarvam"
)

// DefaultTargetLanguage is used when the caller does not name a target.
const DefaultTargetLanguage = "en-IN"

// Caller is the slice of the Sarvam client the translator needs.
type Caller interface {
	Translate(ctx context.Context, input, sourceLang, targetLang string) (*sarvam.TranslationResult, error)
}

// Translator produces translated shadow copies of recipes.
type Translator struct {
	client Caller
}

// New creates a Translator backed by the given caller.
func New(client Caller) *Translator {
	return &Translator{client: client}
}

// Text translates a single string.
func (t *Translator) Text(ctx context.Context, input, sourceLang, targetLang string) (*sarvam.TranslationResult, error) {
	if targetLang == "" {
		targetLang = DefaultTargetLanguage
	}
	return t.client.Translate(ctx, input, sourceLang, targetLang)
}

// Recipe translates a whole recipe in four concurrent calls: name, the
// metadata triple, the ingredient block, and the step block. The combined
// result is assembled only after every call settles; any transport failure
// fails the whole operation. Decoding degrades field-by-field: a segment the
// model mangled falls back to its untranslated original.
func (t *Translator) Recipe(ctx context.Context, r recipe.Recipe, sourceLang, targetLang string) (recipe.Recipe, error) {
	if targetLang == "" {
		targetLang = DefaultTargetLanguage
	}

	meta := Metadata{Region: r.Region, Time: r.Time, Difficulty: r.Difficulty}

	var name, metaText, ingredients, steps string

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		res, err := t.client.Translate(gctx, r.Name, sourceLang, targetLang)
		if err != nil {
			return fmt.Errorf("translating name: %w", err)
		}
		name = res.TranslatedText
		return nil
	})
	grp.Go(func() error {
		res, err := t.client.Translate(gctx, EncodeMetadata(meta), sourceLang, targetLang)
		if err != nil {
			return fmt.Errorf("translating metadata: %w", err)
		}
		metaText = res.TranslatedText
		return nil
	})
	grp.Go(func() error {
		res, err := t.client.Translate(gctx, EncodeLines(r.Ingredients), sourceLang, targetLang)
		if err != nil {
			return fmt.Errorf("translating ingredients: %w", err)
		}
		ingredients = res.TranslatedText
		return nil
	})
	grp.Go(func() error {
		res, err := t.client.Translate(gctx, EncodeLines(r.Steps), sourceLang, targetLang)
		if err != nil {
			return fmt.Errorf("translating steps: %w", err)
		}
		steps = res.TranslatedText
		return nil
	})
	if err := grp.Wait(); err != nil {
		return recipe.Recipe{}, err
	}

	out := r
	if name != "" {
		out.Name = name
	}
	decoded := DecodeMetadata(metaText, meta)
	out.Region = decoded.Region
	out.Time = decoded.Time
	out.Difficulty = decoded.Difficulty
	out.Ingredients = DecodeLines(ingredients, r.Ingredients)
	out.Steps = DecodeLines(steps, r.Steps)

	slog.Debug("recipe translated", "recipe_id", r.ID, "source", sourceLang, "target", targetLang)
	return out, nil
}
