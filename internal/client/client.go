// Package client calls the voice generation endpoint from Go.
//
// It mirrors the browser page: blank input is rejected locally, error bodies
// are surfaced through their "error" field, and successful audio can be saved
// under voiceover.DownloadFileName.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"voiceover-app/internal/domain/audio"
	"voiceover-app/internal/domain/voiceover"
	"voiceover-app/internal/infrastructure/storage"
)

const (
	messageRequestFailed = "Failed to generate voice"
	messageNetworkFailed = "Failed to generate voiceover"
)

// ErrEmptyInput is returned for empty or whitespace-only text before any request is made.
var ErrEmptyInput = errors.New("Please enter some text") //nolint:staticcheck // shown to users verbatim

// RequestError is a non-success response from the endpoint.
type RequestError struct {
	StatusCode int
	Message    string
	Fallback   bool // provider not configured or unavailable
}

func (e *RequestError) Error() string {
	return e.Message
}

// Client talks to a running voiceover server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the server at baseURL (e.g. http://localhost:8080).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateVoice requests audio for text. Exactly one request is made per call
// unless text is blank, in which case ErrEmptyInput is returned.
func (c *Client) GenerateVoice(ctx context.Context, text string) (*audio.Audio, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+voiceover.GenerateVoicePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", messageNetworkFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", messageNetworkFailed, err)
	}
	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = audio.MIMETypeMPEG
	}
	return &audio.Audio{Data: data, MIMEType: mimeType}, nil
}

func decodeError(resp *http.Response) *RequestError {
	rerr := &RequestError{StatusCode: resp.StatusCode, Message: messageRequestFailed}
	var body struct {
		Error    string `json:"error"`
		Fallback bool   `json:"fallback"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return rerr
	}
	if body.Error != "" {
		rerr.Message = body.Error
	}
	rerr.Fallback = body.Fallback
	return rerr
}

// SaveAudio writes a to dir/voiceover.DownloadFileName and returns the path.
func SaveAudio(dir string, a *audio.Audio) (string, error) {
	return storage.NewFileStore(dir).Save(a, voiceover.DownloadFileName)
}
