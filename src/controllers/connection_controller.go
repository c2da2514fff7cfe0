package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
)

// RequestConnection sends a connection request from the authenticated user to another user
func RequestConnection(c *fiber.Ctx) error {
	var body struct {
		Recipient string `json:"recipient"`
	}
	if err := c.BodyParser(&body); err != nil || body.Recipient == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Recipient is required"))
	}

	if err := svc.RequestConnection(c.Context(), viewer(c), body.Recipient); err != nil {
		return coreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Connection request sent successfully"))
}

// AcceptConnection accepts a pending connection request addressed to the authenticated user
func AcceptConnection(c *fiber.Ctx) error {
	var body struct {
		Sender string `json:"sender"`
	}
	if err := c.BodyParser(&body); err != nil || body.Sender == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Sender is required"))
	}

	if err := svc.AcceptConnection(c.Context(), body.Sender, viewer(c)); err != nil {
		return coreError(c, err)
	}
	return c.JSON(lib.MessageResponse("Connection accepted successfully"))
}

// RejectConnection rejects a pending connection request addressed to the authenticated user
func RejectConnection(c *fiber.Ctx) error {
	var body struct {
		Sender string `json:"sender"`
	}
	if err := c.BodyParser(&body); err != nil || body.Sender == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Sender is required"))
	}

	if err := svc.RejectConnection(c.Context(), body.Sender, viewer(c)); err != nil {
		return coreError(c, err)
	}
	return c.JSON(lib.MessageResponse("Connection request rejected"))
}

// GetConnectionStatus returns the connection status between the authenticated user and another user
func GetConnectionStatus(c *fiber.Ctx) error {
	status, err := svc.ConnectionStatusOf(c.Context(), viewer(c), c.Params("username"))
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(fiber.Map{"status": status})
}

// GetUserConnections returns all users connected to the authenticated user
func GetUserConnections(c *fiber.Ctx) error {
	connections, err := svc.ListConnections(c.Context(), viewer(c))
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(connections)
}
