package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"meprofiled/backend/internal/models"
	"meprofiled/backend/internal/services"
)

// ModelHandle is the part of the embedding model the health check needs.
type ModelHandle interface {
	Load(ctx context.Context) (services.Embedder, error)
	Stats() (hits, misses int64)
}

type HealthHandler struct {
	model ModelHandle
}

func NewHealthHandler(model ModelHandle) *HealthHandler {
	return &HealthHandler{model: model}
}

// HandleHealth handles GET /health
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	if _, err := h.model.Load(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.HealthResponse{
			Status: "unhealthy",
			Error:  err.Error(),
		})
	}

	hits, misses := h.model.Stats()
	return c.JSON(models.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		ModelLoaded: true,
		Cache:       &models.CacheStats{Hits: hits, Misses: misses},
	})
}

// HandleRoot handles GET /
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Hello from Backend",
	})
}
