package voice

import (
	"context"
	"errors"

	"voiceover-app/internal/domain/audio"
	"voiceover-app/internal/domain/tts"
	"voiceover-app/internal/domain/voiceover"
	"voiceover-app/internal/usecase"
)

// GenerateVoiceInput is input DTO.
type GenerateVoiceInput struct {
	Request *voiceover.Request
}

// GenerateVoiceOutput is output DTO.
type GenerateVoiceOutput struct {
	Audio *audio.Audio
}

// GenerateVoice turns a validated request into audio via the synthesizer.
// It holds no state between calls; every Execute makes its own provider call.
type GenerateVoice struct {
	synthesizer tts.Synthesizer
}

var _ usecase.UseCase[GenerateVoiceInput, GenerateVoiceOutput] = (*GenerateVoice)(nil)

func NewGenerateVoice(synth tts.Synthesizer) *GenerateVoice {
	return &GenerateVoice{synthesizer: synth}
}

// Execute synthesizes in.Request.Text. Provider errors are returned unchanged
// so callers can classify them with errors.Is.
func (uc *GenerateVoice) Execute(ctx context.Context, in *GenerateVoiceInput) (*GenerateVoiceOutput, error) {
	if in == nil || in.Request == nil {
		return nil, &voiceover.ValidationError{Field: "text", Message: voiceover.MessageTextRequired}
	}

	a, err := uc.synthesizer.Synthesize(ctx, in.Request.Text)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New("synthesizer returned no audio")
	}

	return &GenerateVoiceOutput{Audio: a}, nil
}
