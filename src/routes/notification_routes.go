package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/controllers"
	"github.com/ctrl-alt-elite/alumni-backend/src/middleware"
)

// NotificationRoutes sets up the notification list/respond endpoints and the
// mentorship and meeting request submissions that feed it
func NotificationRoutes(app *fiber.App) {
	notifications := app.Group("/api/notifications", middleware.ProtectRoute)
	notifications.Get("/:username", controllers.GetNotifications)
	notifications.Put("/:id/respond", controllers.RespondNotification)

	app.Post("/api/mentorship/request", middleware.ProtectRoute, controllers.RequestMentorship)
	app.Post("/api/meet/request", middleware.ProtectRoute, controllers.RequestMeeting)
}
