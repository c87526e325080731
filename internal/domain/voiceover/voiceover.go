// Package voiceover holds the request contract shared by the server and its clients.
package voiceover

const (
	// GenerateVoicePath is the route of the voice generation endpoint.
	GenerateVoicePath = "/api/generate-voice"

	// DownloadFileName is the name clients save generated audio under.
	DownloadFileName = "voiceover.mp3"
)
