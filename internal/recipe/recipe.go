// Package recipe defines the core data types flowing through the ChefGPT pipeline.
package recipe

import (
	"fmt"
	"strings"
)

// Ingredient is a named pantry item managed by the user.
type Ingredient struct {
	// ID is an opaque identifier, unique within the pantry.
	ID string `json:"id"`

	// Name is the free-text ingredient name (e.g., "paneer", "onion").
	Name string `json:"name"`

	// Expiring marks the ingredient as expiring soon, so the chef can
	// prioritise it.
	Expiring bool `json:"expiring"`
}

// Recipe is a generated cooking instruction set. Recipes are produced only by
// the generation gateway and are immutable once received; translated copies
// are held separately.
type Recipe struct {
	// ID identifies the recipe within its generation batch (e.g., "generated_1").
	ID string `json:"id"`

	// Name is the dish name.
	Name string `json:"name"`

	// Region is the regional cuisine (e.g., "Punjabi", "South Indian").
	Region string `json:"region"`

	// Time is the preparation time as free text (e.g., "30 mins").
	Time string `json:"time"`

	// Difficulty is one of "Easy", "Medium", "Hard". The model is instructed
	// to use these values but they are not strictly enforced.
	Difficulty string `json:"difficulty"`

	// Ingredients are quantity-annotated strings in cooking order.
	Ingredients []string `json:"ingredients"`

	// Steps are the instructions, in order. Numbering is meaning-bearing.
	Steps []string `json:"steps"`

	// Description is a short appetizing summary. Optional.
	Description string `json:"description,omitempty"`
}

// Suggestion is the parsed output of one generation call: a spoken summary
// plus the generated recipes.
type Suggestion struct {
	// Message is a brief, friendly summary meant to be read aloud.
	Message string `json:"message"`

	// Recipes are the generated recipes, in the order the model produced them.
	Recipes []Recipe `json:"recipes"`
}

// Validate checks that a generated recipe has the shape required to render a
// recipe card. The model is prompted with the schema but adherence is not
// guaranteed, so parsed output is checked before being accepted.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("recipe %q: missing name", r.ID)
	}
	if strings.TrimSpace(r.Region) == "" {
		return fmt.Errorf("recipe %q: missing region", r.ID)
	}
	if strings.TrimSpace(r.Time) == "" {
		return fmt.Errorf("recipe %q: missing time", r.ID)
	}
	if strings.TrimSpace(r.Difficulty) == "" {
		return fmt.Errorf("recipe %q: missing difficulty", r.ID)
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("recipe %q: no ingredients", r.ID)
	}
	if len(r.Steps) == 0 {
		return fmt.Errorf("recipe %q: no steps", r.ID)
	}
	return nil
}

// Validate checks every recipe in the suggestion.
func (s *Suggestion) Validate() error {
	if len(s.Recipes) == 0 {
		return fmt.Errorf("suggestion contains no recipes")
	}
	for i := range s.Recipes {
		if err := s.Recipes[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
