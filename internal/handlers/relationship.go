package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/brasketbro/lovenest/internal/store"
)

// GetRelationshipHandler returns the couple's relationship record. Only the
// first-created record is ever served; when none exists the body is null.
func GetRelationshipHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rel, err := st.GetRelationship(c.Context())
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get relationship data"})
		}
		return c.JSON(rel)
	}
}
