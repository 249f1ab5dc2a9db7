package nutrition

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
	"github.com/EnesKotay/Fitness-App/internal/auth"
)

// Handler exposes meal HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a nutrition HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type mealRequest struct {
	Name     *string    `json:"name"`
	MealType *string    `json:"mealType"`
	Calories *int       `json:"calories"`
	Protein  *float64   `json:"protein"`
	Carbs    *float64   `json:"carbs"`
	Fat      *float64   `json:"fat"`
	MealDate *time.Time `json:"mealDate"`
	Notes    *string    `json:"notes"`
}

type mealResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	MealType  string    `json:"mealType"`
	Calories  int       `json:"calories"`
	Protein   *float64  `json:"protein"`
	Carbs     *float64  `json:"carbs"`
	Fat       *float64  `json:"fat"`
	MealDate  time.Time `json:"mealDate"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(m Meal) mealResponse {
	return mealResponse{
		ID:        m.ID,
		Name:      m.Name,
		MealType:  m.MealType,
		Calories:  m.Calories,
		Protein:   m.Protein,
		Carbs:     m.Carbs,
		Fat:       m.Fat,
		MealDate:  m.MealDate,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r mealRequest) toInput() MealInput {
	return MealInput{
		Name:     r.Name,
		MealType: r.MealType,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
		MealDate: r.MealDate,
		Notes:    r.Notes,
	}
}

// Create records a new meal for the path user.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	var req mealRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	meal, err := h.svc.CreateMeal(c.UserContext(), userID, req.toInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(toResponse(meal))
}

// List returns all meals of the path user, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	meals, err := h.svc.ListMeals(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toResponses(meals))
}

// ListByDate returns the path user's meals on a calendar day.
func (h *Handler) ListByDate(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return err
	}
	meals, err := h.svc.MealsByDate(c.UserContext(), userID, date)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toResponses(meals))
}

// DailyCalories returns the calorie total for a calendar day.
func (h *Handler) DailyCalories(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return err
	}
	total, err := h.svc.DailyCalories(c.UserContext(), userID, date)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"date":          date.Format("2006-01-02"),
		"totalCalories": total,
	})
}

// Update applies partial changes to a meal the path user owns.
func (h *Handler) Update(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	mealID, err := strconv.ParseInt(c.Params("mealId"), 10, 64)
	if err != nil {
		return apperr.New(apperr.NotFound, mealNotFoundMsg)
	}
	var req mealRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	meal, err := h.svc.UpdateMeal(c.UserContext(), userID, mealID, req.toInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toResponse(meal))
}

// Delete removes a meal the path user owns.
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	mealID, err := strconv.ParseInt(c.Params("mealId"), 10, 64)
	if err != nil {
		return apperr.New(apperr.NotFound, mealNotFoundMsg)
	}
	if err := h.svc.DeleteMeal(c.UserContext(), userID, mealID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func toResponses(meals []Meal) []mealResponse {
	out := make([]mealResponse, 0, len(meals))
	for _, m := range meals {
		out = append(out, toResponse(m))
	}
	return out
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperr.New(apperr.Validation, "Geçersiz tarih formatı. Örnek: 2024-01-26")
	}
	return date, nil
}
