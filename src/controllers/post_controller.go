package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

func findPosts(c *fiber.Ctx, filter bson.M, opts *options.FindOptions) ([]models.Post, error) {
	cursor, err := lib.DB.Collection("posts").Find(c.Context(), filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c.Context())

	posts := []models.Post{}
	if err := cursor.All(c.Context(), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPosts returns the feed, newest first
func GetPosts(c *fiber.Ctx) error {
	posts, err := findPosts(c, bson.M{}, options.Find().SetSort(bson.M{"_id": -1}))
	if err != nil {
		log.Printf("Error finding posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(posts)
}

// GetUserPosts returns the posts authored by one user, newest first
func GetUserPosts(c *fiber.Ctx) error {
	filter := bson.M{"author": c.Params("username")}
	posts, err := findPosts(c, filter, options.Find().SetSort(bson.M{"_id": -1}))
	if err != nil {
		log.Printf("Error finding user posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(posts)
}

// GetLeaderboard returns the most liked posts
func GetLeaderboard(c *fiber.Ctx) error {
	opts := options.Find().SetSort(bson.M{"likes": -1}).SetLimit(10)
	posts, err := findPosts(c, bson.M{}, opts)
	if err != nil {
		log.Printf("Error finding leaderboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(posts)
}

// CreatePost creates a post, snapshotting the author's current profile picture
func CreatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	var author models.User
	err := lib.DB.Collection("users").FindOne(c.Context(), bson.M{"username": post.Author}).Decode(&author)
	if err == nil {
		post.AuthorPic = author.ProfilePic
	} else if err != mongo.ErrNoDocuments {
		log.Printf("Error finding author: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	post.Id = primitive.NewObjectID()
	post.Timestamp = "Just now"
	post.Likes = 0
	post.Comments = []models.Comment{}

	if _, err := lib.DB.Collection("posts").InsertOne(c.Context(), post); err != nil {
		log.Printf("Error creating post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to create post"))
	}
	return c.JSON(post)
}

// LikePost increments a post's like counter and returns the updated post
func LikePost(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid post ID format"))
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err = lib.DB.Collection("posts").FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": postID},
		bson.M{"$inc": bson.M{"likes": 1}},
		opts,
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Post not found"))
	}
	if err != nil {
		log.Printf("Error liking post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(post)
}

// CreateComment appends a comment to a post and returns the updated post
func CreateComment(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid post ID format"))
	}

	var comment models.Comment
	if err := c.BodyParser(&comment); err != nil || comment.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Comment text is required"))
	}
	comment.Timestamp = "Just now"

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err = lib.DB.Collection("posts").FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}},
		opts,
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Post not found"))
	}
	if err != nil {
		log.Printf("Error commenting on post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(post)
}

// SeedPosts resets the posts collection with sample data
func SeedPosts(c *fiber.Ctx) error {
	posts := lib.DB.Collection("posts")
	if _, err := posts.DeleteMany(c.Context(), bson.M{}); err != nil {
		log.Printf("Error clearing posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	sample := models.Post{
		Id:        primitive.NewObjectID(),
		Author:    "Alex Johnson",
		Role:      "Alumni",
		Content:   "Excited to share my research!",
		Timestamp: "2h ago",
		Likes:     12,
		Comments:  []models.Comment{},
	}
	if _, err := posts.InsertOne(c.Context(), sample); err != nil {
		log.Printf("Error seeding posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(lib.MessageResponse("Seeded"))
}
