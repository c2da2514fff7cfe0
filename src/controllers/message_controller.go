package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
)

// SendMessage appends a chat message from the authenticated user
func SendMessage(c *fiber.Ctx) error {
	var body struct {
		Recipient string `json:"recipient"`
		Text      string `json:"text"`
	}
	if err := c.BodyParser(&body); err != nil || body.Recipient == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Recipient is required"))
	}

	if err := svc.SendMessage(c.Context(), viewer(c), body.Recipient, body.Text); err != nil {
		return coreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Sent"))
}

// GetThread returns the full message history between two users, oldest
// first. The chat view polls this every 3 seconds while a thread is open
func GetThread(c *fiber.Ctx) error {
	messages, err := svc.FetchThread(c.Context(), c.Params("userA"), c.Params("userB"))
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(messages)
}
