package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/brasketbro/lovenest/internal/models"
	"github.com/brasketbro/lovenest/internal/store"
)

// GetPhotosHandler lists all photos, newest first
func GetPhotosHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := st.GetPhotos(c.Context())
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get photos"})
		}
		return c.JSON(photos)
	}
}

// GetPhotosByCategoryHandler lists photos whose category matches exactly
func GetPhotosByCategoryHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Params("category")
		photos, err := st.GetPhotosByCategory(c.Context(), category)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get photos by category"})
		}
		return c.JSON(photos)
	}
}

// CreatePhotoHandler validates and stores a new photo
func CreatePhotoHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.InsertPhoto
		if err := c.BodyParser(&body); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := body.Validate(); err != nil {
			return validationResponse(c, err)
		}

		photo, err := st.CreatePhoto(c.Context(), body)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		return c.Status(http.StatusCreated).JSON(photo)
	}
}

// UpdatePhotoHandler applies a partial update to an existing photo
func UpdatePhotoHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid photo id"})
		}

		var body models.PhotoUpdate
		if err := c.BodyParser(&body); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		photo, err := st.UpdatePhoto(c.Context(), id, body)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		if photo == nil {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "photo not found"})
		}
		return c.JSON(photo)
	}
}

// DeletePhotoHandler removes a photo by id
func DeletePhotoHandler(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid photo id"})
		}

		deleted, err := st.DeletePhoto(c.Context(), id)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		if !deleted {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "photo not found"})
		}
		return c.SendStatus(http.StatusNoContent)
	}
}

// validationResponse maps a field validation failure to a 400 with the
// field-naming message; anything else is not leaked.
func validationResponse(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
	}
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
