// Package speech wraps the Sarvam speech endpoints as the narration and
// transcription bridges used by the API layer.
package speech

import (
	"context"
	"log/slog"

	"github.com/sahas-01/ChefGPT/internal/config"
	"github.com/sahas-01/ChefGPT/internal/sarvam"
)

// DefaultLanguage is the narration voice language used when the caller does
// not name one.
const DefaultLanguage = "hi-IN"

// Synthesizer is the slice of the Sarvam client the narrator needs.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, opts sarvam.SynthesizeOpts) (string, error)
}

// Narrator converts text to base64-encoded audio for client playback.
type Narrator struct {
	client Synthesizer
	cfg    config.TTSConfig
}

// NewNarrator creates a Narrator from config.
func NewNarrator(client Synthesizer, cfg config.TTSConfig) *Narrator {
	return &Narrator{client: client, cfg: cfg}
}

// Narrate synthesizes speech for the given text. Text longer than the
// configured ceiling is truncated with an ellipsis marker before submission
// because the upstream enforces a hard input-length limit; long recipes are
// not chunked into multiple calls.
func (n *Narrator) Narrate(ctx context.Context, text, language, speaker string) (string, error) {
	if language == "" {
		language = DefaultLanguage
	}
	if speaker == "" {
		speaker = n.cfg.Speaker
	}

	if max := n.cfg.MaxChars; max > 0 && len([]rune(text)) > max {
		runes := []rune(text)
		slog.Warn("tts input truncated", "from", len(runes), "to", max)
		text = string(runes[:max-3]) + "..."
	}

	return n.client.Synthesize(ctx, text, sarvam.SynthesizeOpts{
		Language:   language,
		Speaker:    speaker,
		SampleRate: n.cfg.SampleRate,
	})
}
