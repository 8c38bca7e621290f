package sarvam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
)

// Transcription is the speech-to-text result. RequestID and any extra fields
// the upstream adds flow through Raw so the API can return them unchanged.
type Transcription struct {
	// Transcript is the recognized text in its original language.
	Transcript string `json:"transcript"`

	// LanguageCode is the BCP-47-like tag detected by the upstream (e.g.,
	// "hi-IN"). It becomes the session's working language.
	LanguageCode string `json:"language_code"`

	// Raw is the full upstream response body for passthrough.
	Raw json.RawMessage `json:"-"`
}

// Transcribe uploads recorded audio for transcription. The language is never
// sent, so the upstream auto-detects it; transcribe mode preserves the
// original language mix (e.g., Hindi/English) rather than translating.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename string) (*Transcription, error) {
	if err := c.checkKey(); err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if filename == "" {
		filename = "recording.webm"
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, fmt.Errorf("writing audio: %w", err)
	}
	_ = writer.WriteField("model", c.sttModel)
	_ = writer.WriteField("mode", "transcribe")
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/speech-to-text", body)
	if err != nil {
		return nil, fmt.Errorf("creating transcription request: %w", err)
	}
	req.Header.Set("api-subscription-key", c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		serr := statusError("speech-to-text", resp)
		slog.Error("sarvam stt error", "status", serr.StatusCode, "body", serr.Body)
		return nil, serr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading transcription response: %w", err)
	}

	var result Transcription
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding transcription: %w", err)
	}
	result.LanguageCode = strings.TrimSpace(result.LanguageCode)
	result.Raw = raw

	slog.Debug("transcription complete", "text_length", len(result.Transcript), "language", result.LanguageCode)
	return &result, nil
}
