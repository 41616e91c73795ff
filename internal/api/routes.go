package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/", handler.Root)
	app.Get("/manifest.json", handler.Manifest)
	app.Get("/service-worker.js", handler.ServiceWorker)

	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)

	app.Get("/parent/:email", handler.ShowParentDashboard)
	app.Post("/parent/:email/toggle-absence", handler.ToggleAbsence)

	app.Get("/admin", handler.ShowAdminDashboard)
	app.Post("/admin/category", handler.UpsertCategory)

	app.Get("/test-db", handler.DumpDocument)
}
