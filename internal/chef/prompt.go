package chef

import (
	"fmt"
	"strings"
)

// DefaultLanguage is used when the caller does not name a response language.
const DefaultLanguage = "Hindi"

const systemRole = "You are a helpful assistant found at providing accurate JSON outputs."

// promptTemplate embeds the ingredient list, the task directive, fixed
// authenticity guidelines, and a literal description of the required JSON
// output schema. The model is told to answer with the raw JSON string only.
const promptTemplate = `You are an expert Indian Home Chef with decades of experience. The user has these ingredients: %s.

Task:
%s

Guidelines for Authenticity & Quality:
- Recipes must be REAL and TESTED Indian home-style dishes. Do not invent non-existent dishes.
- If the ingredients are unusual for Indian cooking (e.g., avocado), suggest valid fusion or modern Indian adaptations (e.g., Avocado Chaat), but acknowledge it.
- INSTRUCTIONS: Must be step-by-step, detailed, and use Indian cooking terminology (e.g., "saute until oil separates", "crackling spices").
- QUANTITIES: Assume standard Indian household quantities (e.g., serving 2-3 people).
- LANGUAGE: The response must be in %s. If the user asks for Hindi, use natural conversational Hindi.

Output Format:
- Provide a brief, friendly spoken summary of what you found.
- Return strict JSON format with this structure:
{
  "message": "Spoken summary text...",
  "recipes": [
    {
      "id": "generated_1",
      "name": "Recipe Name",
      "region": "Region/Cuisine (e.g. Punjabi, South Indian)",
      "time": "XX mins",
      "difficulty": "Easy/Medium/Hard",
      "ingredients": ["1 cup Rice", "2 tbsp Oil"],
      "steps": ["Step 1...", "Step 2..."],
      "description": "Short appetizing description"
    }
  ]
}

Do not include markdown formatting, backticks, or any other text. Just the raw JSON string.`

// BuildPrompt constructs the generation instruction for the given ingredient
// names, optional cuisine label, and target language. The result is
// deterministic for identical inputs and performs no I/O.
//
// Ingredient names, the cuisine label, and the language tag are sanitized so
// user text cannot break out of the instruction or smuggle in its own
// schema or directives.
func BuildPrompt(ingredients []string, cuisine, language string) string {
	names := make([]string, 0, len(ingredients))
	for _, name := range ingredients {
		name = sanitizeField(name)
		if name != "" {
			names = append(names, name)
		}
	}
	joined := strings.Join(names, ", ")

	cuisine = sanitizeField(cuisine)
	language = sanitizeField(language)
	if language == "" {
		language = DefaultLanguage
	}

	task := `1. Generate 5 distinct, authentic Indian recipes that can be made primarily with these ingredients. You can assume common pantry staples (oil, salt, spices, water) are available.`
	if cuisine != "" {
		task = fmt.Sprintf(`1. Generate 5 authentic %s Indian recipes using these ingredients. If the ingredients don't strictly fit, adapt them creatively to %s style.`, cuisine, cuisine)
	}

	return fmt.Sprintf(promptTemplate, joined, task, language)
}

// sanitizeField neutralises template-injection attempts in user-supplied
// text: newlines and control characters are collapsed to spaces and fence or
// structure characters are dropped. Ordinary ingredient names pass through
// verbatim.
func sanitizeField(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '`' || r == '{' || r == '}':
			// dropped
		case r == '\n' || r == '\r' || r == '\t':
			sb.WriteRune(' ')
		case r < 0x20:
			// dropped
		default:
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
