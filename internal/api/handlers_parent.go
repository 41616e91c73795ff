package api

import (
	"strings"

	"github.com/frabiasco/assenze/internal/db"
	"github.com/frabiasco/assenze/internal/models"
	"github.com/frabiasco/assenze/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowParentDashboard(c *fiber.Ctx) error {
	email := emailParam(c)
	document := db.LoadOrEmpty(c.Context(), handler.store)

	view, found := services.BuildParentView(document, email, handler.today())
	if !found {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	return handler.render(c, "parent_dashboard", fiber.Map{
		"User":     view.User,
		"Upcoming": view.Upcoming,
		"History":  view.History,
	})
}

func (handler *Handler) ToggleAbsence(c *fiber.Ctx) error {
	email := emailParam(c)
	date := strings.TrimSpace(c.FormValue("date"))

	err := handler.store.Update(c.Context(), func(document *models.Document) error {
		services.ToggleAbsence(document, email, date)
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Errore interno del server")
	}

	return c.Redirect(parentPath(services.NormalizeEmail(email)), fiber.StatusSeeOther)
}
