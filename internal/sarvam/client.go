// Package sarvam implements a client for the Sarvam AI REST API.
//
// Sarvam hosts every piece of intelligence this service delegates: chat
// completions for recipe generation, speech-to-text with language detection,
// text translation, and speech synthesis. All four endpoints share one
// server-held credential; chat uses Bearer auth while the speech and
// translation endpoints use the api-subscription-key header.
package sarvam

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sahas-01/ChefGPT/internal/config"
)

// ErrMissingAPIKey is returned before any upstream call is attempted when the
// credential is not configured.
var ErrMissingAPIKey = errors.New("SARVAM_API_KEY missing/not configured")

// StatusError is an upstream non-2xx response. The status code is forwarded
// to the caller; the body is logged server-side only.
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sarvam %s: status %d", e.Endpoint, e.StatusCode)
}

// Client is a Sarvam AI API client. All methods issue a single blocking call
// with no retries; regeneration is always caller-initiated.
type Client struct {
	apiKey         string
	baseURL        string
	chatModel      string
	sttModel       string
	ttsModel       string
	translateModel string
	httpClient     *http.Client
}

// New creates a Sarvam client from config.
func New(cfg config.SarvamConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		chatModel:      cfg.ChatModel,
		sttModel:       cfg.STTModel,
		ttsModel:       cfg.TTSModel,
		translateModel: cfg.TranslateModel,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

// checkKey guards every call so a missing credential never reaches upstream.
func (c *Client) checkKey() error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// statusError drains up to 2 KiB of the error body for diagnostics.
func statusError(endpoint string, resp *http.Response) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Endpoint:   endpoint,
		Body:       string(body),
	}
}
