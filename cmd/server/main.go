package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"voiceover-app/internal/config"
	"voiceover-app/internal/infrastructure/logging"
	"voiceover-app/internal/infrastructure/metrics"
	"voiceover-app/internal/infrastructure/telemetry"
	"voiceover-app/internal/infrastructure/tts/elevenlabs"
	"voiceover-app/internal/interface/http/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	flowLog := logging.Component(logger, "flow")

	if !cfg.ProviderConfigured() {
		flowLog.Warn().Msg("ELEVENLABS_API_KEY not set; voice generation will answer 503 until it is configured")
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.OTLPEndpoint)
	if err != nil {
		flowLog.Fatal().Err(err).Msg("failed to set up tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			flowLog.Error().Err(err).Msg("flush traces")
		}
	}()
	if cfg.OTLPEndpoint != "" {
		flowLog.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("exporting traces")
	}

	synth := elevenlabs.NewSynthesizer(cfg.ElevenLabsAPIKey,
		elevenlabs.WithBaseURL(cfg.ElevenLabsBaseURL),
		elevenlabs.WithHTTPClient(elevenlabs.NewHTTPClient(cfg.ElevenLabsTimeout, logging.Component(logger, "provider"))),
		elevenlabs.WithLogger(logging.Component(logger, "tts")),
	)

	var reg *prometheus.Registry
	if cfg.MetricsEnabled {
		reg = metrics.NewRegistry()
	}

	app := server.New(server.Deps{
		Synthesizer: synth,
		Logger:      logger,
		Registry:    reg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		flowLog.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			flowLog.Error().Err(err).Msg("shutdown failed")
		}
	}()

	flowLog.Info().Str("addr", cfg.ListenAddr()).Msg("server listening")
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		flowLog.Fatal().Err(err).Msg("failed to start server")
	}
}
