package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/auth"
)

// RegisterAuthRoutes wires the public authentication endpoints: register,
// login and the smoke endpoint take no token.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler) {
	group := r.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
	group.Get("/test", h.Test)
}

// RegisterProfileRoutes wires profile reads behind the bearer middleware.
func RegisterProfileRoutes(r fiber.Router, h *auth.Handler) {
	r.Get("/auth/me", h.Me)
	r.Get("/auth/user/:userId", h.GetUser)
}
