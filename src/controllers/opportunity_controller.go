package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

// GetOpportunities lists mentorship and job postings, newest first
func GetOpportunities(c *fiber.Ctx) error {
	opts := options.Find().SetSort(bson.M{"_id": -1})
	cursor, err := lib.DB.Collection("opportunities").Find(c.Context(), bson.M{}, opts)
	if err != nil {
		log.Printf("Error finding opportunities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	defer cursor.Close(c.Context())

	opportunities := []models.Opportunity{}
	if err := cursor.All(c.Context(), &opportunities); err != nil {
		log.Printf("Error decoding opportunities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(opportunities)
}

// CreateOpportunity stores a new posting on the mentorship board
func CreateOpportunity(c *fiber.Ctx) error {
	var opportunity models.Opportunity
	if err := c.BodyParser(&opportunity); err != nil || opportunity.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Title is required"))
	}
	opportunity.Id = primitive.NewObjectID()

	if _, err := lib.DB.Collection("opportunities").InsertOne(c.Context(), opportunity); err != nil {
		log.Printf("Error creating opportunity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.Status(fiber.StatusCreated).JSON(opportunity)
}
