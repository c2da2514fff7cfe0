package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/controllers"
	"github.com/ctrl-alt-elite/alumni-backend/src/middleware"
)

// OpportunityRoutes sets up the mentorship board postings
func OpportunityRoutes(app *fiber.App) {
	opportunities := app.Group("/api/opportunities", middleware.ProtectRoute)

	opportunities.Get("/", controllers.GetOpportunities)
	opportunities.Post("/", controllers.CreateOpportunity)
}
