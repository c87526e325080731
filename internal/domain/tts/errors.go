package tts

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable is matched by every non-success provider response.
	ErrProviderUnavailable = errors.New("tts provider unavailable")

	// ErrProviderNotConfigured is returned before any outbound call when no
	// usable provider credential is configured.
	ErrProviderNotConfigured = errors.New("tts provider not configured")
)

// ProviderError describes a non-success response from the speech provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string // truncated response body, for logs only
}

func (e *ProviderError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s error %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s error %d", e.Provider, e.StatusCode)
}

// Is reports ProviderError as ErrProviderUnavailable.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderUnavailable
}
