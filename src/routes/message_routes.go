package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/controllers"
	"github.com/ctrl-alt-elite/alumni-backend/src/middleware"
)

// MessageRoutes sets up chat message sending and thread retrieval
func MessageRoutes(app *fiber.App) {
	messages := app.Group("/api/messages", middleware.ProtectRoute)

	messages.Post("/", controllers.SendMessage)
	messages.Get("/:userA/:userB", controllers.GetThread)
}
