package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

// GetAllUsers returns the directory for the authenticated viewer: everyone
// except the viewer, filtered by the optional search term and annotated with
// the viewer-relative connection status
func GetAllUsers(c *fiber.Ctx) error {
	entries, err := svc.ListDirectory(c.Context(), viewer(c), c.Query("search"))
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(entries)
}

// GetSuggestedUsers returns a short list of users for the dashboard sidebar
func GetSuggestedUsers(c *fiber.Ctx) error {
	opts := options.Find().
		SetLimit(3).
		SetProjection(bson.M{"username": 1, "userType": 1, "profilePic": 1})

	cursor, err := lib.DB.Collection("users").Find(c.Context(), bson.M{}, opts)
	if err != nil {
		log.Printf("Error finding suggested users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	defer cursor.Close(c.Context())

	var users []models.User
	if err := cursor.All(c.Context(), &users); err != nil {
		log.Printf("Error decoding suggested users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(users)
}

// GetUser returns a single profile by username, without the password
func GetUser(c *fiber.Ctx) error {
	var user models.User
	err := lib.DB.Collection("users").FindOne(
		c.Context(),
		bson.M{"username": c.Params("username")},
		options.FindOne().SetProjection(bson.M{"password": 0}),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
	}
	if err != nil {
		log.Printf("Error finding user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(user)
}

// UpdateUser updates the editable profile fields of a user
func UpdateUser(c *fiber.Ctx) error {
	var body struct {
		FullName       *string `json:"fullName"`
		Email          *string `json:"email"`
		Phone          *string `json:"phone"`
		Location       *string `json:"location"`
		Bio            *string `json:"bio"`
		Department     *string `json:"department"`
		CollegeName    *string `json:"collegeName"`
		CurrentJobRole *string `json:"currentJobRole"`
		Year           *int    `json:"year"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	set := bson.M{}
	for field, value := range map[string]*string{
		"fullName":       body.FullName,
		"email":          body.Email,
		"phone":          body.Phone,
		"location":       body.Location,
		"bio":            body.Bio,
		"department":     body.Department,
		"collegeName":    body.CollegeName,
		"currentJobRole": body.CurrentJobRole,
	} {
		if value != nil {
			set[field] = *value
		}
	}
	if body.Year != nil {
		set["year"] = *body.Year
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Nothing to update"))
	}

	result, err := lib.DB.Collection("users").UpdateOne(
		c.Context(),
		bson.M{"username": c.Params("username")},
		bson.M{"$set": set},
	)
	if err != nil {
		log.Printf("Error updating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
	}
	return c.JSON(lib.MessageResponse("Updated"))
}

// UpdateUserPhoto replaces the profile picture of a user
func UpdateUserPhoto(c *fiber.Ctx) error {
	var body struct {
		ProfilePic string `json:"profilePic"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	result, err := lib.DB.Collection("users").UpdateOne(
		c.Context(),
		bson.M{"username": c.Params("username")},
		bson.M{"$set": bson.M{"profilePic": body.ProfilePic}},
	)
	if err != nil {
		log.Printf("Error updating photo: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
	}
	return c.JSON(lib.MessageResponse("Updated"))
}
