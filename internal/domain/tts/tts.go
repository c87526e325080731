package tts

import (
	"context"

	"voiceover-app/internal/domain/audio"
)

// Synthesizer converts text to Audio.
// Concrete implementation wraps a speech provider (ElevenLabs).
type Synthesizer interface {
	// Synthesize takes text and returns Audio.
	Synthesize(ctx context.Context, text string) (*audio.Audio, error)
}
