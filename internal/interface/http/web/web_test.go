package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_FillsPlaceholders(t *testing.T) {
	page := string(Page("/api/generate-voice", "voiceover.mp3"))

	assert.Contains(t, page, `const endpoint = "/api/generate-voice";`)
	assert.Contains(t, page, `const downloadName = "voiceover.mp3";`)
	assert.NotContains(t, page, "{{ENDPOINT}}")
	assert.NotContains(t, page, "{{DOWNLOAD_NAME}}")
}

// The page script is not executed here. Its blank-input guard and error
// fallbacks follow the same contract as internal/client, which is exercised
// in client_test.go (TestGenerateVoice_BlankInput, TestGenerateVoice_ErrorResponses).
func TestPage_ClientMessages(t *testing.T) {
	page := string(Page("/x", "y.mp3"))

	for _, msg := range []string{"Please enter some text", "Failed to generate voice", "Failed to generate voiceover"} {
		assert.Contains(t, page, msg)
	}
}

func TestRegister_ServesHTML(t *testing.T) {
	app := fiber.New()
	Register(app, "/api/generate-voice", "voiceover.mp3")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMETextHTMLCharsetUTF8, resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), "<textarea")
}
