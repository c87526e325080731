package audio

// MIMETypeMPEG is the content type of MP3 audio.
const MIMETypeMPEG = "audio/mpeg"

// Audio is an opaque synthesized clip passed from the provider to the client
// without modification.
type Audio struct {
	Data     []byte
	MIMEType string // e.g. "audio/mpeg"
}

// Len returns the clip size in bytes.
func (a *Audio) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}
