package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

// GetEvents lists events, optionally filtered by a case-insensitive title search
func GetEvents(c *fiber.Ctx) error {
	filter := bson.M{}
	if search := c.Query("search"); search != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}
	}

	cursor, err := lib.DB.Collection("events").Find(c.Context(), filter)
	if err != nil {
		log.Printf("Error finding events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	defer cursor.Close(c.Context())

	events := []models.Event{}
	if err := cursor.All(c.Context(), &events); err != nil {
		log.Printf("Error decoding events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(events)
}

// CreateEvent stores a new event listing
func CreateEvent(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil || event.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Title is required"))
	}
	event.Id = primitive.NewObjectID()

	if _, err := lib.DB.Collection("events").InsertOne(c.Context(), event); err != nil {
		log.Printf("Error creating event: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Created"))
}

// SeedEvents resets the events collection with sample data
func SeedEvents(c *fiber.Ctx) error {
	events := lib.DB.Collection("events")
	if _, err := events.DeleteMany(c.Context(), bson.M{}); err != nil {
		log.Printf("Error clearing events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	sample := models.Event{
		Id:       primitive.NewObjectID(),
		Title:    "Network Mixer",
		Date:     "2024-03-15",
		Location: "Main Campus",
		Fee:      "Free",
		Category: "Networking",
	}
	if _, err := events.InsertOne(c.Context(), sample); err != nil {
		log.Printf("Error seeding events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(lib.MessageResponse("Seeded"))
}
