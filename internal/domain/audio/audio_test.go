package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudioLen(t *testing.T) {
	var nilAudio *Audio
	assert.Equal(t, 0, nilAudio.Len())
	assert.Equal(t, 0, (&Audio{}).Len())
	assert.Equal(t, 3, (&Audio{Data: []byte{1, 2, 3}, MIMEType: MIMETypeMPEG}).Len())
}
