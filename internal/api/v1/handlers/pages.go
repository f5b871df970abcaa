package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// ServePage mengirim satu halaman statis dari direktori public.
// Dipakai untuk halaman desk yang harus lewat authorization gate dulu.
func ServePage(publicDir, page string) fiber.Handler {
	path := filepath.Join(publicDir, page)
	return func(c *fiber.Ctx) error {
		return c.SendFile(path)
	}
}
