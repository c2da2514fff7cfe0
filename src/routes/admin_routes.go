package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/controllers"
	"github.com/ctrl-alt-elite/alumni-backend/src/middleware"
)

// AdminRoutes sets up the admin dashboard stats and hard deletes
func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.ProtectRoute)

	admin.Get("/stats", controllers.GetAdminStats)
	admin.Delete("/user/:id", controllers.DeleteUser)
	admin.Delete("/post/:id", controllers.DeletePost)
}
