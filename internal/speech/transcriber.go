package speech

import (
	"context"
	"io"

	"github.com/sahas-01/ChefGPT/internal/sarvam"
)

// Recognizer is the slice of the Sarvam client the transcriber needs.
type Recognizer interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (*sarvam.Transcription, error)
}

// Transcriber converts a recorded audio upload into text plus the language
// code the upstream detected, which becomes the session's working language
// for subsequent narration and translation.
type Transcriber struct {
	client Recognizer
}

// NewTranscriber creates a Transcriber.
func NewTranscriber(client Recognizer) *Transcriber {
	return &Transcriber{client: client}
}

// Transcribe submits one recording. The language is auto-detected upstream
// rather than specified by the caller.
func (t *Transcriber) Transcribe(ctx context.Context, audio io.Reader, filename string) (*sarvam.Transcription, error) {
	return t.client.Transcribe(ctx, audio, filename)
}
