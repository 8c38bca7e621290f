// Package translate implements whole-recipe translation over the Sarvam
// translation endpoint using a batched field codec.
//
// Translating a recipe field-by-field would cost a dozen calls; instead the
// short metadata fields are framed into one delimiter-joined line and the
// ingredient and step lists into newline-joined blocks, so a full recipe
// costs exactly four calls. The decoder tolerates model drift: each field
// falls back to its untranslated original rather than failing the whole
// operation.
package translate

import (
	"regexp"
	"strings"
)

// metaDelimiter frames the region/time/difficulty triple. It is reliable
// enough for short single-line fields and survives most model output.
const metaDelimiter = " ||| "

// looseMetaDelimiter re-splits when the model altered spacing around the
// delimiter.
var looseMetaDelimiter = regexp.MustCompile(`\s*\|\|\|\s*`)

// Metadata is the translatable recipe metadata triple.
type Metadata struct {
	Region     string
	Time       string
	Difficulty string
}

// EncodeMetadata joins the triple into a single line for one translation call.
func EncodeMetadata(m Metadata) string {
	return m.Region + metaDelimiter + m.Time + metaDelimiter + m.Difficulty
}

// DecodeMetadata splits translated metadata back into its triple. The strict
// delimiter is tried first; if the model altered spacing, a whitespace-
// tolerant split is retried. If fewer than three segments remain, the
// original untranslated values are returned unchanged.
func DecodeMetadata(translated string, original Metadata) Metadata {
	if translated == "" {
		return original
	}

	parts := strings.Split(translated, "|||")
	if len(parts) < 3 {
		parts = looseMetaDelimiter.Split(translated, -1)
	}
	if len(parts) < 3 {
		return original
	}

	return Metadata{
		Region:     strings.TrimSpace(parts[0]),
		Time:       strings.TrimSpace(parts[1]),
		Difficulty: strings.TrimSpace(parts[2]),
	}
}

// EncodeLines joins a list into one newline-separated block.
func EncodeLines(items []string) string {
	return strings.Join(items, "\n")
}

// DecodeLines splits a translated block back into a list, trimming each line
// and dropping empties while preserving order. An empty translation keeps
// the original list unchanged.
func DecodeLines(translated string, original []string) []string {
	if translated == "" {
		return original
	}

	lines := strings.Split(translated, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return original
	}
	return out
}
