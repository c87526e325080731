package httplog

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Transport wraps an existing http.RoundTripper and logs outgoing provider
// requests and the corresponding responses at debug level.
// Only method, URL, latency and status are recorded. Bodies and headers are
// never logged because they carry user text and the API key.
type Transport struct {
	Base   http.RoundTripper
	Logger zerolog.Logger
}

// NewTransport wraps base (http.DefaultTransport when nil).
func NewTransport(base http.RoundTripper, logger zerolog.Logger) *Transport {
	return &Transport{Base: base, Logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	t.Logger.Debug().Str("method", req.Method).Str("url", req.URL.Redacted()).Msg("->")

	rt := t.Base
	if rt == nil {
		rt = http.DefaultTransport
	}
	resp, err := rt.RoundTrip(req)
	if err != nil {
		t.Logger.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("<- error")
		return resp, err
	}

	t.Logger.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("<-")
	return resp, nil
}
