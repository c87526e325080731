package voiceover

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MessageTextRequired is the client-facing message for a missing or non-string text.
const MessageTextRequired = "Text is required"

// ErrNullBody is returned when the body is the JSON literal null and carries no fields at all.
var ErrNullBody = errors.New("request body is null")

// Request is the voice generation payload sent by the client.
type Request struct {
	Text string `json:"text"`
}

// ValidationError reports malformed input that is rejected before any provider call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseRequest decodes a JSON request body.
//
// Undecodable bodies return a plain decode error. A body that decodes but has no
// usable "text" member returns *ValidationError. Only presence, type and
// non-emptiness are checked; whitespace-only text is accepted.
func ParseRequest(body []byte) (*Request, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}
	if payload == nil {
		return nil, ErrNullBody
	}

	obj, _ := payload.(map[string]any)
	text, ok := obj["text"].(string)
	if !ok || text == "" {
		return nil, &ValidationError{Field: "text", Message: MessageTextRequired}
	}
	return &Request{Text: text}, nil
}
