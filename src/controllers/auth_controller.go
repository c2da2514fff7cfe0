package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

// Register handles user registration, validates input, checks for duplicates,
// hashes the password and creates the user document
func Register(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if user.Username == "" || user.Email == "" || user.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Username, email and password are required"))
	}
	if user.UserType == "" {
		user.UserType = models.UserTypeStudent
	}

	users := lib.DB.Collection("users")
	var existing models.User
	err := users.FindOne(c.Context(), bson.M{"username": user.Username}).Decode(&existing)
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Username already exists"))
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("Error checking existing user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), 11)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	user.Password = string(hashed)
	user.Connections = []string{}
	user.SentRequests = []string{}
	user.ReceivedRequests = []string{}

	if _, err := users.InsertOne(c.Context(), user); err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to register"))
	}

	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Registered"))
}

// Login authenticates a user by username and password and returns a JWT
// along with the profile fields the client caches
func Login(c *fiber.Ctx) error {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&credentials); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	var user models.User
	err := lib.DB.Collection("users").FindOne(c.Context(), bson.M{"username": credentials.Username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
	}
	if err != nil {
		log.Printf("Error finding user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
	}

	token, err := lib.GenerateJWT(user.Username)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.JSON(fiber.Map{
		"token":       token,
		"userType":    user.UserType,
		"username":    user.Username,
		"profilePic":  user.ProfilePic,
		"collegeName": user.CollegeName,
		"department":  user.Department,
	})
}
