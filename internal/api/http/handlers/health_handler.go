package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// StorePinger reports whether the document store is reachable.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	driver      string
	store       StorePinger
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version, driver string, store StorePinger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, driver: driver, store: store}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports whether the document store answers a ping.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":       "unavailable",
			"dependencies": fiber.Map{h.driver: err.Error()},
		})
	}
	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": fiber.Map{h.driver: "ok"},
	})
}
