package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/controllers"
	"github.com/ctrl-alt-elite/alumni-backend/src/middleware"
)

// UserRoutes sets up the directory, suggestions and profile endpoints
func UserRoutes(app *fiber.App) {
	users := app.Group("/api/users", middleware.ProtectRoute)
	users.Get("/all", controllers.GetAllUsers)
	users.Get("/suggested", controllers.GetSuggestedUsers)

	user := app.Group("/api/user", middleware.ProtectRoute)
	user.Get("/:username", controllers.GetUser)
	user.Put("/:username", controllers.UpdateUser)
	user.Put("/:username/photo", controllers.UpdateUserPhoto)
}
