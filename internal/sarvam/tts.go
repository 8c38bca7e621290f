package sarvam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

type ttsRequest struct {
	Inputs              []string `json:"inputs"`
	TargetLanguageCode  string   `json:"target_language_code"`
	Speaker             string   `json:"speaker"`
	SpeechSampleRate    int      `json:"speech_sample_rate"`
	EnablePreprocessing bool     `json:"enable_preprocessing"`
	Model               string   `json:"model"`
}

type ttsResponse struct {
	Audios []string `json:"audios"`
}

// SynthesizeOpts controls speech synthesis.
type SynthesizeOpts struct {
	// Language selects the voice language (e.g., "hi-IN").
	Language string

	// Speaker selects the voice.
	Speaker string

	// SampleRate is the output sample rate in Hz.
	SampleRate int
}

// Synthesize converts text to speech and returns one base64-encoded audio
// payload suitable for direct playback. Input length limits are the caller's
// responsibility; the upstream rejects over-long text.
func (c *Client) Synthesize(ctx context.Context, text string, opts SynthesizeOpts) (string, error) {
	if err := c.checkKey(); err != nil {
		return "", err
	}

	reqBody := ttsRequest{
		Inputs:              []string{text},
		TargetLanguageCode:  opts.Language,
		Speaker:             opts.Speaker,
		SpeechSampleRate:    opts.SampleRate,
		EnablePreprocessing: true,
		Model:               c.ttsModel,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshalling tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/text-to-speech", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating tts request: %w", err)
	}
	req.Header.Set("api-subscription-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		serr := statusError("text-to-speech", resp)
		slog.Error("sarvam tts error", "status", serr.StatusCode, "body", serr.Body)
		return "", serr
	}

	var result ttsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding tts response: %w", err)
	}
	if len(result.Audios) == 0 {
		return "", fmt.Errorf("no audio returned from tts API")
	}

	slog.Debug("synthesis complete", "audio_base64_length", len(result.Audios[0]))
	return result.Audios[0], nil
}
