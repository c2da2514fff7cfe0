package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/controllers"
	"github.com/ctrl-alt-elite/alumni-backend/src/middleware"
)

// EventRoutes sets up event listings
func EventRoutes(app *fiber.App) {
	app.Get("/api/events", controllers.GetEvents)
	app.Post("/api/events", middleware.ProtectRoute, controllers.CreateEvent)
	app.Post("/api/seed-events", controllers.SeedEvents)
}
