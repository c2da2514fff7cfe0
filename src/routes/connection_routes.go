package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/controllers"
	"github.com/ctrl-alt-elite/alumni-backend/src/middleware"
)

// ConnectionRoutes sets up the connection request lifecycle and the
// connection list the chat sidebar reads
func ConnectionRoutes(app *fiber.App) {
	connections := app.Group("/api/connections", middleware.ProtectRoute)

	connections.Get("/", controllers.GetUserConnections)
	connections.Get("/status/:username", controllers.GetConnectionStatus)
	connections.Post("/request", controllers.RequestConnection)
	connections.Post("/accept", controllers.AcceptConnection)
	connections.Post("/reject", controllers.RejectConnection)
}
