package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/brasketbro/lovenest/internal/utils"
)

// UploadImageHandler saves a gallery image uploaded as multipart field
// "image" and returns the URL to submit as a photo's imageUrl.
func UploadImageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
		}

		uploadDir := utils.GetEnv("UPLOAD_DIR", "uploads")
		if err := os.MkdirAll(uploadDir, 0755); err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create upload dir"})
		}

		// Unique filename preserving the original extension
		filename := uuid.New().String() + filepath.Ext(fileHeader.Filename)
		destPath := filepath.Join(uploadDir, filename)

		if err := c.SaveFile(fileHeader, destPath); err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
		}

		// Build accessible URL (served from /uploads)
		base := utils.GetEnv("BASE_URL", "")
		var url string
		if base == "" {
			url = "/uploads/" + filename
		} else {
			url = fmt.Sprintf("%s/uploads/%s", base, filename)
		}

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"filename": filename,
			"url":      url,
		})
	}
}
