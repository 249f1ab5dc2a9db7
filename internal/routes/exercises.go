package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/exercise"
)

// RegisterExerciseRoutes wires the public read-only exercise catalog.
func RegisterExerciseRoutes(r fiber.Router, h *exercise.Handler) {
	group := r.Group("/exercises")
	group.Get("/groups", h.MuscleGroups)
	group.Get("/", h.ByMuscleGroup)
}
