package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/brasketbro/lovenest/internal/models"
	"github.com/brasketbro/lovenest/internal/store"
)

// GetBucketItemsHandler lists bucket items, completed first
func GetBucketItemsHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := st.GetBucketItems(c.Context())
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get bucket list items"})
		}
		return c.JSON(items)
	}
}

// CreateBucketItemHandler validates and stores a new bucket item
func CreateBucketItemHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.InsertBucketItem
		if err := c.BodyParser(&body); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := body.Validate(); err != nil {
			return validationResponse(c, err)
		}

		item, err := st.CreateBucketItem(c.Context(), body)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		return c.Status(http.StatusCreated).JSON(item)
	}
}

// UpdateBucketItemHandler applies a partial update to an existing bucket item
func UpdateBucketItemHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid bucket item id"})
		}

		var body models.BucketItemUpdate
		if err := c.BodyParser(&body); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		item, err := st.UpdateBucketItem(c.Context(), id, body)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		if item == nil {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "bucket item not found"})
		}
		return c.JSON(item)
	}
}

// ToggleBucketItemHandler flips completion state. Completing stamps
// completedDate (today when the body omits it); un-completing clears it.
func ToggleBucketItemHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid bucket item id"})
		}

		var body models.BucketItemToggle
		if err := c.BodyParser(&body); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := body.Validate(); err != nil {
			return validationResponse(c, err)
		}

		item, err := st.ToggleBucketItemCompletion(c.Context(), id, *body.Completed, body.CompletedDate)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		if item == nil {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "bucket item not found"})
		}
		return c.JSON(item)
	}
}

// DeleteBucketItemHandler removes a bucket item by id
func DeleteBucketItemHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid bucket item id"})
		}

		deleted, err := st.DeleteBucketItem(c.Context(), id)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		if !deleted {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "bucket item not found"})
		}
		return c.SendStatus(http.StatusNoContent)
	}
}
