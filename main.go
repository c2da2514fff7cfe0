package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/ctrl-alt-elite/alumni-backend/src/controllers"
	"github.com/ctrl-alt-elite/alumni-backend/src/core"
	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
	"github.com/ctrl-alt-elite/alumni-backend/src/routes"
	"github.com/ctrl-alt-elite/alumni-backend/src/store/mongostore"
)

func main() {
	app := fiber.New(fiber.Config{
		// Profile pictures arrive as base64 payloads
		BodyLimit: 50 * 1024 * 1024,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	lib.ConnectDB()

	svc := core.NewService(
		mongostore.NewUsers(lib.DB),
		mongostore.NewNotifications(lib.DB),
		mongostore.NewMessages(lib.DB),
	)
	controllers.Setup(svc)

	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.ConnectionRoutes(app)
	routes.NotificationRoutes(app)
	routes.MessageRoutes(app)
	routes.PostRoutes(app)
	routes.EventRoutes(app)
	routes.OpportunityRoutes(app)
	routes.AdminRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	app.Static("/", "./public")

	log.Println("Server is running on port " + port)
	log.Fatal(app.Listen(":" + port))
}
