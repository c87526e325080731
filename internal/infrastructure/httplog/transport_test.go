package httplog

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestTransport_LogsStatusWithoutSecrets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	client := &http.Client{Transport: NewTransport(nil, zerolog.New(&buf).Level(zerolog.DebugLevel))}

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/text-to-speech/v", strings.NewReader(`{"text":"secret words"}`))
	require.NoError(t, err)
	req.Header.Set("xi-api-key", "sk-very-secret")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, "/text-to-speech/v")
	assert.NotContains(t, out, "sk-very-secret")
	assert.NotContains(t, out, "secret words")
}

func TestTransport_PropagatesError(t *testing.T) {
	boom := errors.New("dial failed")
	var buf bytes.Buffer
	tr := NewTransport(roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	}), zerolog.New(&buf).Level(zerolog.DebugLevel))

	req := httptest.NewRequest(http.MethodGet, "http://example.invalid/", nil)
	_, err := tr.RoundTrip(req)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "dial failed")
}

func TestTransport_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	}), zerolog.New(&buf).Level(zerolog.InfoLevel))

	_, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "http://example.invalid/", nil))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
