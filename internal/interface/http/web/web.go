// Package web serves the browser client page.
package web

import (
	_ "embed"
	"strings"

	"github.com/gofiber/fiber/v2"
)

//go:embed index.html
var indexTemplate string

// Page renders the client page for a given endpoint and download file name.
func Page(endpoint, downloadName string) []byte {
	r := strings.NewReplacer(
		"{{ENDPOINT}}", endpoint,
		"{{DOWNLOAD_NAME}}", downloadName,
	)
	return []byte(r.Replace(indexTemplate))
}

// Register serves the page at GET /.
func Register(app *fiber.App, endpoint, downloadName string) {
	page := Page(endpoint, downloadName)
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(page)
	})
}
