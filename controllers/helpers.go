package controllers

import (
	"log"

	"garment-flow/apperr"

	"github.com/gofiber/fiber/v2"
)

// sendError translates a repository error into the client response.
// Internal error text never leaves the process; unexpected failures get a
// generic message and a full log line.
func sendError(ctx *fiber.Ctx, err error) error {
	if appErr, ok := apperr.As(err); ok {
		if appErr.Status() >= 500 {
			log.Printf("store error: %v", appErr)
		}
		return ctx.Status(appErr.Status()).JSON(fiber.Map{"message": appErr.Message})
	}
	log.Printf("unexpected error: %v", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "An unexpected error occurred. Please try again later.",
	})
}
