package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

// GetNotifications returns a user's notifications newest first plus the
// pending count used for the badge
func GetNotifications(c *fiber.Ctx) error {
	count, notifications, err := svc.ListNotifications(c.Context(), c.Params("username"))
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(fiber.Map{
		"count":         count,
		"notifications": notifications,
	})
}

// RespondNotification accepts or rejects a pending notification. Responding
// to an already resolved notification fails with a conflict
func RespondNotification(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid notification ID format"))
	}

	var body struct {
		Decision models.NotificationStatus `json:"decision"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	updated, err := svc.RespondToNotification(c.Context(), id, body.Decision)
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(updated)
}

// RequestMentorship files a mentorship request notification for the mentor
func RequestMentorship(c *fiber.Ctx) error {
	var body struct {
		MentorName  string `json:"mentorName"`
		StudentName string `json:"studentName"`
		Message     string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if err := svc.SubmitMentorshipRequest(c.Context(), body.MentorName, body.StudentName, body.Message); err != nil {
		return coreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Request sent"))
}

// RequestMeeting files a meeting-booking notification carrying the requested slot
func RequestMeeting(c *fiber.Ctx) error {
	var body struct {
		MentorName  string `json:"mentorName"`
		StudentName string `json:"studentName"`
		Message     string `json:"message"`
		Slot        string `json:"slot"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if err := svc.SubmitMeetingRequest(c.Context(), body.MentorName, body.StudentName, body.Message, body.Slot); err != nil {
		return coreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Request sent"))
}
