package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/core"
	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
)

var svc *core.Service

// Setup wires the core service the handlers delegate to. Called once from
// main, and from tests with a memstore-backed service.
func Setup(s *core.Service) {
	svc = s
}

// coreError maps a core error kind to an HTTP status. Anything that is not a
// core error is a storage failure and surfaces as a 500.
func coreError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch core.KindOf(err) {
	case core.KindNotFound:
		status = fiber.StatusNotFound
	case core.KindValidation:
		status = fiber.StatusBadRequest
	case core.KindInvalidState:
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(lib.MessageResponse(err.Error()))
}

func viewer(c *fiber.Ctx) string {
	username, _ := c.Locals("username").(string)
	return username
}
