package sarvam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

type translateRequest struct {
	Input              string `json:"input"`
	SourceLanguageCode string `json:"source_language_code"`
	TargetLanguageCode string `json:"target_language_code"`
	Model              string `json:"model"`
}

// TranslationResult is the translation endpoint's response. Raw carries the
// full upstream body for passthrough.
type TranslationResult struct {
	TranslatedText     string `json:"translated_text"`
	SourceLanguageCode string `json:"source_language_code"`

	Raw json.RawMessage `json:"-"`
}

// Translate converts input text from one language tag to another.
func (c *Client) Translate(ctx context.Context, input, sourceLang, targetLang string) (*TranslationResult, error) {
	if err := c.checkKey(); err != nil {
		return nil, err
	}

	reqBody := translateRequest{
		Input:              input,
		SourceLanguageCode: sourceLang,
		TargetLanguageCode: targetLang,
		Model:              c.translateModel,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating translate request: %w", err)
	}
	req.Header.Set("api-subscription-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		serr := statusError("translate", resp)
		slog.Error("sarvam translate error", "status", serr.StatusCode, "body", serr.Body)
		return nil, serr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading translate response: %w", err)
	}

	var result TranslationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding translation: %w", err)
	}
	result.Raw = raw

	return &result, nil
}
