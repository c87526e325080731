package voice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceover-app/internal/domain/audio"
	"voiceover-app/internal/domain/tts"
	"voiceover-app/internal/domain/voiceover"
)

type fakeSynthesizer struct {
	texts []string
	audio *audio.Audio
	err   error
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, text string) (*audio.Audio, error) {
	f.texts = append(f.texts, text)
	return f.audio, f.err
}

func TestGenerateVoice_Success(t *testing.T) {
	clip := &audio.Audio{Data: []byte("mp3"), MIMEType: audio.MIMETypeMPEG}
	synth := &fakeSynthesizer{audio: clip}

	out, err := NewGenerateVoice(synth).Execute(context.Background(), &GenerateVoiceInput{
		Request: &voiceover.Request{Text: "Hello"},
	})
	require.NoError(t, err)

	assert.Same(t, clip, out.Audio)
	assert.Equal(t, []string{"Hello"}, synth.texts)
}

func TestGenerateVoice_NoCaching(t *testing.T) {
	synth := &fakeSynthesizer{audio: &audio.Audio{Data: []byte("a")}}
	uc := NewGenerateVoice(synth)

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), &GenerateVoiceInput{Request: &voiceover.Request{Text: "same"}})
		require.NoError(t, err)
	}
	assert.Len(t, synth.texts, 3)
}

func TestGenerateVoice_PropagatesProviderErrors(t *testing.T) {
	for _, want := range []error{
		tts.ErrProviderNotConfigured,
		&tts.ProviderError{Provider: "elevenlabs", StatusCode: 401},
		errors.New("connection reset"),
	} {
		synth := &fakeSynthesizer{err: want}
		_, err := NewGenerateVoice(synth).Execute(context.Background(), &GenerateVoiceInput{
			Request: &voiceover.Request{Text: "Hello"},
		})
		assert.ErrorIs(t, err, want)
	}
}

func TestGenerateVoice_MissingRequest(t *testing.T) {
	synth := &fakeSynthesizer{}
	_, err := NewGenerateVoice(synth).Execute(context.Background(), &GenerateVoiceInput{})

	var verr *voiceover.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Empty(t, synth.texts)
}

func TestGenerateVoice_NilAudio(t *testing.T) {
	_, err := NewGenerateVoice(&fakeSynthesizer{}).Execute(context.Background(), &GenerateVoiceInput{
		Request: &voiceover.Request{Text: "Hello"},
	})
	assert.Error(t, err)
}
