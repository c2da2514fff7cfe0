package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/controllers"
	"github.com/ctrl-alt-elite/alumni-backend/src/middleware"
)

// PostRoutes sets up the feed, likes, comments and leaderboard
func PostRoutes(app *fiber.App) {
	posts := app.Group("/api/posts", middleware.ProtectRoute)

	posts.Get("/", controllers.GetPosts)
	posts.Post("/", controllers.CreatePost)
	posts.Get("/leaderboard", controllers.GetLeaderboard)
	posts.Get("/user/:username", controllers.GetUserPosts)
	posts.Put("/:id/like", controllers.LikePost)
	posts.Post("/:id/comment", controllers.CreateComment)

	app.Post("/api/seed-posts", controllers.SeedPosts)
}
