package api

import (
	"github.com/frabiasco/assenze/internal/db"
	"github.com/frabiasco/assenze/internal/models"
	"github.com/frabiasco/assenze/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowAdminDashboard(c *fiber.Ctx) error {
	document := db.LoadOrEmpty(c.Context(), handler.store)
	view := services.BuildAdminView(document, handler.today())

	return handler.render(c, "admin_dashboard", fiber.Map{
		"Absences":           view.Absences,
		"Categories":         view.Categories,
		"CalendarByCategory": view.CalendarByCategory,
	})
}

// UpsertCategory saves a category's weekday schedule. A missing name is a
// plain redirect, bad day names just contribute no dates: lenient by
// design, the form never errors.
func (handler *Handler) UpsertCategory(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	days := formValues(c, "days")

	err := handler.store.Update(c.Context(), func(document *models.Document) error {
		services.UpsertCategory(document, name, days)
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Errore interno del server")
	}

	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// DumpDocument exposes the raw stored document, kept from the original
// deployment as a quick remote-store check.
func (handler *Handler) DumpDocument(c *fiber.Ctx) error {
	document, err := handler.store.Load(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	document.EnsureDefaults()
	return c.JSON(document)
}
