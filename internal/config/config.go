package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// PlaceholderAPIKey stands in for a missing ELEVENLABS_API_KEY. The provider always rejects it.
	PlaceholderAPIKey = "demo_key"

	defaultElevenLabsBaseURL = "https://api.elevenlabs.io/v1"
)

// Config holds application-wide configuration populated from environment variables.
type Config struct {
	ElevenLabsAPIKey  string
	ElevenLabsBaseURL string
	ElevenLabsTimeout time.Duration // 0 means no client-side timeout
	Port              string
	LogLevel          string
	LogFormat         string
	MetricsEnabled    bool
	OTLPEndpoint      string // empty disables trace export
}

// Load reads environment variables and returns Config with defaults applied.
// A missing API key is not an error; it resolves to PlaceholderAPIKey.
func Load() *Config {
	// .env at the working directory is optional
	_ = godotenv.Load()
	return &Config{
		ElevenLabsAPIKey:  getEnv("ELEVENLABS_API_KEY", PlaceholderAPIKey),
		ElevenLabsBaseURL: getEnv("ELEVENLABS_BASE_URL", defaultElevenLabsBaseURL),
		ElevenLabsTimeout: getEnvDuration("ELEVENLABS_TIMEOUT", 0),
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
		OTLPEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

// ProviderConfigured reports whether a real provider credential is set.
func (c *Config) ProviderConfigured() bool {
	return c.ElevenLabsAPIKey != "" && c.ElevenLabsAPIKey != PlaceholderAPIKey
}

// ListenAddr returns the fiber listen address.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	default:
		return def
	}
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	// bare integers are seconds
	if n, err := strconv.Atoi(v); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
