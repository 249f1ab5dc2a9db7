package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/tracking"
)

// RegisterTrackingRoutes wires weight record endpoints under the auth middleware.
func RegisterTrackingRoutes(r fiber.Router, h *tracking.Handler) {
	group := r.Group("/tracking/users/:userId/weight-records")
	group.Post("/", h.Create)
	group.Get("/", h.List)
	group.Put("/:recordId", h.Update)
	group.Delete("/:recordId", h.Delete)
}
