package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"voiceover-app/internal/domain/tts"
	"voiceover-app/internal/domain/voiceover"
	"voiceover-app/internal/infrastructure/logging"
	"voiceover-app/internal/interface/http/handler"
	"voiceover-app/internal/interface/http/web"
	ucvoice "voiceover-app/internal/usecase/voice"
)

// MaxBodyBytes caps request bodies. Larger bodies are answered with a plain
// 413 by the HTTP layer before any route runs.
const MaxBodyBytes = 4 * 1024 * 1024

// Deps are the collaborators the HTTP app is built from.
type Deps struct {
	Synthesizer tts.Synthesizer
	Logger      zerolog.Logger
	Registry    *prometheus.Registry // nil disables /metrics
}

// New wires routes and middleware into a fiber app.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "voiceover",
		DisableStartupMessage: true,
		BodyLimit:             MaxBodyBytes,
		ErrorHandler:          handler.ErrorHandler(logging.Component(d.Logger, "http")),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	handler.RegisterHealthRoutes(app)
	if d.Registry != nil {
		handler.RegisterMetricsRoutes(app, d.Registry)
	}
	web.Register(app, voiceover.GenerateVoicePath, voiceover.DownloadFileName)

	uc := ucvoice.NewGenerateVoice(d.Synthesizer)
	handler.NewVoiceHandler(uc, logging.Component(d.Logger, "handler")).Register(app)

	return app
}
