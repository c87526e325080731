package tts

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderError_IsUnavailable(t *testing.T) {
	err := fmt.Errorf("synthesize: %w", &ProviderError{Provider: "elevenlabs", StatusCode: 401})

	assert.ErrorIs(t, err, ErrProviderUnavailable)
	assert.NotErrorIs(t, err, ErrProviderNotConfigured)

	var perr *ProviderError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 401, perr.StatusCode)
}

func TestProviderError_Message(t *testing.T) {
	assert.Equal(t, "elevenlabs error 500", (&ProviderError{Provider: "elevenlabs", StatusCode: 500}).Error())
	assert.Equal(t, "elevenlabs error 401: invalid key",
		(&ProviderError{Provider: "elevenlabs", StatusCode: 401, Body: "invalid key"}).Error())
}
