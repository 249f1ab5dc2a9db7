package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/nutrition"
)

// RegisterNutritionRoutes wires meal endpoints under the auth middleware.
func RegisterNutritionRoutes(r fiber.Router, h *nutrition.Handler) {
	group := r.Group("/nutrition/users/:userId")
	group.Post("/meals", h.Create)
	group.Get("/meals", h.List)
	group.Get("/meals/date", h.ListByDate)
	group.Get("/calories", h.DailyCalories)
	group.Put("/meals/:mealId", h.Update)
	group.Delete("/meals/:mealId", h.Delete)
}
