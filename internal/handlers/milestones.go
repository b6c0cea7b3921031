package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/brasketbro/lovenest/internal/models"
	"github.com/brasketbro/lovenest/internal/store"
)

// GetMilestonesHandler lists milestones in chronological order
func GetMilestonesHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		milestones, err := st.GetMilestones(c.Context())
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get milestones"})
		}
		return c.JSON(milestones)
	}
}

// CreateMilestoneHandler validates and stores a new milestone
func CreateMilestoneHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.InsertMilestone
		if err := c.BodyParser(&body); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := body.Validate(); err != nil {
			return validationResponse(c, err)
		}

		milestone, err := st.CreateMilestone(c.Context(), body)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		return c.Status(http.StatusCreated).JSON(milestone)
	}
}

// DeleteMilestoneHandler removes a milestone by id
func DeleteMilestoneHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid milestone id"})
		}

		deleted, err := st.DeleteMilestone(c.Context(), id)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		if !deleted {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "milestone not found"})
		}
		return c.SendStatus(http.StatusNoContent)
	}
}
