package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"voiceover-app/internal/config"
	"voiceover-app/internal/domain/audio"
	"voiceover-app/internal/domain/tts"
	"voiceover-app/internal/infrastructure/httplog"
	"voiceover-app/internal/infrastructure/metrics"
)

const (
	providerName = "elevenlabs"

	// DefaultBaseURL is the public ElevenLabs API root.
	DefaultBaseURL = "https://api.elevenlabs.io/v1"

	// VoiceID selects the "Adam" voice. It is fixed; per-request voice selection is not offered.
	VoiceID = "pNInz6obpgDQGcFmaJgB"
	// ModelID is the multilingual v2 model, which handles Hindi, English and Hinglish.
	ModelID = "eleven_multilingual_v2"

	// maxErrorBody bounds how much of a failed response is kept for logs.
	maxErrorBody = 512
)

// DefaultVoiceSettings are sent with every request.
var DefaultVoiceSettings = VoiceSettings{
	Stability:       0.5,
	SimilarityBoost: 0.75,
	Style:           0.5,
	UseSpeakerBoost: true,
}

// VoiceSettings shapes the synthesized voice.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// Request is the text-to-speech request body.
type Request struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

// Synthesizer implements tts.Synthesizer using the ElevenLabs text-to-speech endpoint.
type Synthesizer struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

var _ tts.Synthesizer = (*Synthesizer)(nil)

// Option configures the Synthesizer.
type Option func(*Synthesizer)

// WithBaseURL points the synthesizer at another API root (e.g. a test double).
func WithBaseURL(url string) Option {
	return func(s *Synthesizer) {
		s.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets the HTTP client used for provider calls.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Synthesizer) {
		s.client = client
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Synthesizer) {
		s.logger = logger
	}
}

// NewSynthesizer creates an ElevenLabs synthesizer.
// An empty or placeholder apiKey is accepted; Synthesize then reports
// tts.ErrProviderNotConfigured without calling the provider.
func NewSynthesizer(apiKey string, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHTTPClient returns the client used for provider calls: traced with
// OpenTelemetry and logged at debug level. timeout 0 means no client timeout;
// the inbound request context still bounds each call. Without otelOpts the
// global tracer provider and propagator are used.
func NewHTTPClient(timeout time.Duration, logger zerolog.Logger, otelOpts ...otelhttp.Option) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(httplog.NewTransport(http.DefaultTransport, logger), otelOpts...),
	}
}

// Configured reports whether a usable credential is set.
func (s *Synthesizer) Configured() bool {
	return s.apiKey != "" && s.apiKey != config.PlaceholderAPIKey
}

// Endpoint returns the full synthesis URL for the fixed voice.
func (s *Synthesizer) Endpoint() string {
	return fmt.Sprintf("%s/text-to-speech/%s", s.baseURL, VoiceID)
}

// Synthesize converts text to MP3 audio. Non-success responses return
// *tts.ProviderError and are never retried.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (*audio.Audio, error) {
	if !s.Configured() {
		return nil, tts.ErrProviderNotConfigured
	}

	body, err := json.Marshal(Request{
		Text:          text,
		ModelID:       ModelID,
		VoiceSettings: DefaultVoiceSettings,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", audio.MIMETypeMPEG)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.apiKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		metrics.RecordProviderCall(providerName, 0, time.Since(start))
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()
	metrics.RecordProviderCall(providerName, resp.StatusCode, time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &tts.ProviderError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}

	s.logger.Debug().
		Int("text_runes", len([]rune(text))).
		Int("audio_bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("synthesis completed")

	return &audio.Audio{Data: data, MIMEType: audio.MIMETypeMPEG}, nil
}
