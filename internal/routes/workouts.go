package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/workout"
)

// RegisterWorkoutRoutes wires workout endpoints under the auth middleware.
func RegisterWorkoutRoutes(r fiber.Router, h *workout.Handler) {
	group := r.Group("/workouts/users/:userId")
	group.Post("/", h.Create)
	group.Get("/", h.List)
	group.Get("/:workoutId", h.Get)
	group.Put("/:workoutId", h.Update)
	group.Delete("/:workoutId", h.Delete)
}
