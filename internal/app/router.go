package app

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/brasketbro/lovenest/internal/handlers"
	"github.com/brasketbro/lovenest/internal/store"
	"github.com/brasketbro/lovenest/internal/utils"
)

// New builds the Fiber app over the given store. Tests construct it with a
// fresh MemStorage for isolation.
func New(st store.Storage) *fiber.App {
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Ensure upload dir exists and serve uploaded gallery images
	uploadDir := utils.GetEnv("UPLOAD_DIR", "uploads")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Printf("Warning: failed to create upload dir: %v", err)
	}
	app.Static("/uploads", uploadDir)

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	api := app.Group("/api")

	// Relationship
	api.Get("/relationship", handlers.GetRelationshipHandler(st))

	// Photos
	api.Get("/photos", handlers.GetPhotosHandler(st))
	api.Get("/photos/category/:category", handlers.GetPhotosByCategoryHandler(st))
	api.Post("/photos", handlers.CreatePhotoHandler(st))
	api.Put("/photos/:id", handlers.UpdatePhotoHandler(st))
	api.Delete("/photos/:id", handlers.DeletePhotoHandler(st))

	// Messages
	api.Get("/messages", handlers.GetMessagesHandler(st))
	api.Post("/messages", handlers.CreateMessageHandler(st))
	api.Delete("/messages/:id", handlers.DeleteMessageHandler(st))

	// Milestones
	api.Get("/milestones", handlers.GetMilestonesHandler(st))
	api.Post("/milestones", handlers.CreateMilestoneHandler(st))
	api.Delete("/milestones/:id", handlers.DeleteMilestoneHandler(st))

	// Bucket list
	api.Get("/bucket-items", handlers.GetBucketItemsHandler(st))
	api.Post("/bucket-items", handlers.CreateBucketItemHandler(st))
	api.Put("/bucket-items/:id", handlers.UpdateBucketItemHandler(st))
	api.Put("/bucket-items/:id/toggle", handlers.ToggleBucketItemHandler(st))
	api.Delete("/bucket-items/:id", handlers.DeleteBucketItemHandler(st))

	// Gallery image upload (field name: "image")
	api.Post("/uploads", handlers.UploadImageHandler())

	return app
}
