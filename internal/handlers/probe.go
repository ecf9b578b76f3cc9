package handlers

import (
	"github.com/gofiber/fiber/v3"

	"sendsong/internal/db"
)

const serviceName = "sendsong"

// ProbeHandler serves the orchestrator health endpoints.
type ProbeHandler struct {
	db *db.DB
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(database *db.DB) *ProbeHandler {
	return &ProbeHandler{db: database}
}

// Liveness reports that the process is up. Always 200.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": serviceName,
	})
}

// Readiness reports whether the feed can be served: 200 when the database
// answers a ping, 503 otherwise.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "error",
			"service": serviceName,
			"error":   "database unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": serviceName,
	})
}
