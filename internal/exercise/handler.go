package exercise

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
)

// Handler exposes the public exercise catalog endpoints.
type Handler struct {
	repo Repository
}

// NewHandler builds an exercise HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type exerciseResponse struct {
	ID           int64  `json:"id"`
	MuscleGroup  string `json:"muscleGroup"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

// MuscleGroups lists the distinct muscle groups for region selection.
func (h *Handler) MuscleGroups(c *fiber.Ctx) error {
	groups, err := h.repo.ListMuscleGroups(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(groups)
}

// ByMuscleGroup lists the exercises of one muscle group.
func (h *Handler) ByMuscleGroup(c *fiber.Ctx) error {
	muscleGroup := strings.TrimSpace(c.Query("muscleGroup"))
	if muscleGroup == "" {
		return apperr.New(apperr.Validation, "muscleGroup gerekli")
	}
	exercises, err := h.repo.ListByMuscleGroup(c.UserContext(), muscleGroup)
	if err != nil {
		return err
	}
	out := make([]exerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, exerciseResponse{
			ID:           e.ID,
			MuscleGroup:  e.MuscleGroup,
			Name:         e.Name,
			Description:  e.Description,
			Instructions: e.Instructions,
		})
	}
	return c.Status(http.StatusOK).JSON(out)
}
