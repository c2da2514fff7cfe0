package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

// GetAdminStats returns the dashboard counters
func GetAdminStats(c *fiber.Ctx) error {
	users := lib.DB.Collection("users")

	totalUsers, err := users.CountDocuments(c.Context(), bson.M{})
	if err != nil {
		log.Printf("Error counting users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	students, err := users.CountDocuments(c.Context(), bson.M{"userType": models.UserTypeStudent})
	if err != nil {
		log.Printf("Error counting students: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	alumni, err := users.CountDocuments(c.Context(), bson.M{"userType": models.UserTypeAlumni})
	if err != nil {
		log.Printf("Error counting alumni: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	totalPosts, err := lib.DB.Collection("posts").CountDocuments(c.Context(), bson.M{})
	if err != nil {
		log.Printf("Error counting posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	totalEvents, err := lib.DB.Collection("events").CountDocuments(c.Context(), bson.M{})
	if err != nil {
		log.Printf("Error counting events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.JSON(fiber.Map{
		"totalUsers":  totalUsers,
		"students":    students,
		"alumni":      alumni,
		"totalPosts":  totalPosts,
		"totalEvents": totalEvents,
	})
}

// DeleteUser removes a user document outright. Pending notifications or
// requests referencing the user are left in place; reads that touch them
// surface a not-found error instead of crashing
func DeleteUser(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	result, err := lib.DB.Collection("users").DeleteOne(c.Context(), bson.M{"_id": userID})
	if err != nil {
		log.Printf("Error deleting user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
	}
	return c.JSON(lib.MessageResponse("Deleted"))
}

// DeletePost removes a post document outright
func DeletePost(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid post ID format"))
	}

	result, err := lib.DB.Collection("posts").DeleteOne(c.Context(), bson.M{"_id": postID})
	if err != nil {
		log.Printf("Error deleting post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Post not found"))
	}
	return c.JSON(lib.MessageResponse("Deleted"))
}
