package api

import (
	"errors"

	"github.com/frabiasco/assenze/internal/db"
	"github.com/frabiasco/assenze/internal/models"
	"github.com/frabiasco/assenze/internal/services"
	"github.com/gofiber/fiber/v2"
)

var errEmailTaken = errors.New("email already registered")

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	return handler.render(c, "login", fiber.Map{"Error": ""})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	email := services.NormalizeEmail(c.FormValue("email"))
	password := services.NormalizePassword(c.FormValue("password"))

	if email == services.NormalizeEmail(handler.admin.Email) && password == services.NormalizePassword(handler.admin.Password) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	document := db.LoadOrEmpty(c.Context(), handler.store)
	if user, ok := services.CheckCredentials(document.Users, email, password); ok {
		return c.Redirect(parentPath(user.Email), fiber.StatusSeeOther)
	}

	return handler.render(c, "login", fiber.Map{"Error": "Email o password errate"})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	document := db.LoadOrEmpty(c.Context(), handler.store)
	return handler.render(c, "register", fiber.Map{
		"Error":      "",
		"Categories": services.SortedCategories(document.Categories),
	})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	user := models.User{
		Name:      c.FormValue("name"),
		Email:     c.FormValue("email"),
		Password:  c.FormValue("password"),
		ChildName: c.FormValue("childName"),
		Category:  c.FormValue("category"),
	}

	err := handler.store.Update(c.Context(), func(document *models.Document) error {
		if _, exists := services.FindUserByEmail(document.Users, user.Email); exists {
			return errEmailTaken
		}
		document.Users = append(document.Users, user)
		return nil
	})
	if errors.Is(err, errEmailTaken) {
		document := db.LoadOrEmpty(c.Context(), handler.store)
		return handler.render(c, "register", fiber.Map{
			"Error":      "Utente già registrato!",
			"Categories": services.SortedCategories(document.Categories),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Errore interno del server")
	}

	return c.Redirect("/login", fiber.StatusSeeOther)
}
