package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"voiceover-app/internal/domain/audio"
	"voiceover-app/internal/domain/tts"
	"voiceover-app/internal/domain/voiceover"
	"voiceover-app/internal/infrastructure/metrics"
	"voiceover-app/internal/usecase"
	ucvoice "voiceover-app/internal/usecase/voice"
)

// Client-facing error messages.
const (
	MessageProviderUnavailable = "Voice generation service unavailable. Please add ELEVENLABS_API_KEY to environment variables."
	MessageUnexpected          = "Failed to generate voice. Please configure API credentials."
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error    string `json:"error"`
	Fallback bool   `json:"fallback,omitempty"`
}

// VoiceHandler bundles dependencies for the voice generation route.
type VoiceHandler struct {
	uc  usecase.UseCase[ucvoice.GenerateVoiceInput, ucvoice.GenerateVoiceOutput]
	log zerolog.Logger
}

func NewVoiceHandler(uc usecase.UseCase[ucvoice.GenerateVoiceInput, ucvoice.GenerateVoiceOutput], logger zerolog.Logger) *VoiceHandler {
	return &VoiceHandler{uc: uc, log: logger}
}

// Register registers routes to app.
func (h *VoiceHandler) Register(app *fiber.App) {
	app.Post(voiceover.GenerateVoicePath, h.generateVoice)
}

func (h *VoiceHandler) generateVoice(c *fiber.Ctx) error {
	req, err := voiceover.ParseRequest(c.Body())
	if err != nil {
		var verr *voiceover.ValidationError
		if errors.As(err, &verr) {
			metrics.RecordRequest(metrics.OutcomeValidationError)
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: verr.Message})
		}
		return h.unexpected(c, err)
	}

	out, err := h.uc.Execute(c.UserContext(), &ucvoice.GenerateVoiceInput{Request: req})
	switch {
	case err == nil:
	case errors.Is(err, tts.ErrProviderNotConfigured), errors.Is(err, tts.ErrProviderUnavailable):
		metrics.RecordRequest(metrics.OutcomeProviderUnavailable)
		h.log.Warn().Err(err).Str("request_id", requestID(c)).Msg("voice provider unavailable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:    MessageProviderUnavailable,
			Fallback: true,
		})
	default:
		return h.unexpected(c, err)
	}

	metrics.RecordRequest(metrics.OutcomeSuccess)
	metrics.RecordAudioBytes(out.Audio.Len())
	c.Set(fiber.HeaderContentType, audio.MIMETypeMPEG)
	c.Response().Header.SetContentLength(out.Audio.Len())
	return c.Status(fiber.StatusOK).Send(out.Audio.Data)
}

func (h *VoiceHandler) unexpected(c *fiber.Ctx, err error) error {
	metrics.RecordRequest(metrics.OutcomeUnexpectedError)
	h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("error generating voice")
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MessageUnexpected})
}
