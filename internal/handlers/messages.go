package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/brasketbro/lovenest/internal/models"
	"github.com/brasketbro/lovenest/internal/store"
)

// GetMessagesHandler lists all love notes, newest first
func GetMessagesHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messages, err := st.GetMessages(c.Context())
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get messages"})
		}
		return c.JSON(messages)
	}
}

// CreateMessageHandler validates and stores a new love note
func CreateMessageHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.InsertMessage
		if err := c.BodyParser(&body); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := body.Validate(); err != nil {
			return validationResponse(c, err)
		}

		message, err := st.CreateMessage(c.Context(), body)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		return c.Status(http.StatusCreated).JSON(message)
	}
}

// DeleteMessageHandler removes a love note by id
func DeleteMessageHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid message id"})
		}

		deleted, err := st.DeleteMessage(c.Context(), id)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		if !deleted {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "message not found"})
		}
		return c.SendStatus(http.StatusNoContent)
	}
}
