package api

import (
	"bytes"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Root serves the loading page until startup marks the app ready, then
// hands visitors to the login page.
func (handler *Handler) Root(c *fiber.Ctx) error {
	if !handler.readiness.Ready() {
		return c.SendFile(filepath.Join(handler.staticDir, "loading", "index.html"))
	}
	return c.Redirect("/login", fiber.StatusFound)
}

func (handler *Handler) Manifest(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(handler.staticDir, "manifest.json"))
}

func (handler *Handler) ServiceWorker(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(handler.staticDir, "service-worker.js"))
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", data); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}
