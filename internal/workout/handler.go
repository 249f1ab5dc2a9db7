package workout

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
	"github.com/EnesKotay/Fitness-App/internal/auth"
)

// Handler exposes workout HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a workout HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type workoutRequest struct {
	Name            *string    `json:"name"`
	WorkoutType     *string    `json:"workoutType"`
	DurationMinutes *int       `json:"durationMinutes"`
	CaloriesBurned  *int       `json:"caloriesBurned"`
	WorkoutDate     *time.Time `json:"workoutDate"`
	Notes           *string    `json:"notes"`
}

type workoutResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	WorkoutType     string    `json:"workoutType"`
	DurationMinutes *int      `json:"durationMinutes"`
	CaloriesBurned  *int      `json:"caloriesBurned"`
	WorkoutDate     time.Time `json:"workoutDate"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toResponse(w Workout) workoutResponse {
	return workoutResponse{
		ID:              w.ID,
		Name:            w.Name,
		WorkoutType:     w.WorkoutType,
		DurationMinutes: w.DurationMinutes,
		CaloriesBurned:  w.CaloriesBurned,
		WorkoutDate:     w.WorkoutDate,
		Notes:           w.Notes,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func (r workoutRequest) toInput() WorkoutInput {
	return WorkoutInput{
		Name:            r.Name,
		WorkoutType:     r.WorkoutType,
		DurationMinutes: r.DurationMinutes,
		CaloriesBurned:  r.CaloriesBurned,
		WorkoutDate:     r.WorkoutDate,
		Notes:           r.Notes,
	}
}

// Create records a new workout for the path user.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	var req workoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	w, err := h.svc.CreateWorkout(c.UserContext(), userID, req.toInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(toResponse(w))
}

// List returns all workouts of the path user, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	workouts, err := h.svc.ListWorkouts(c.UserContext(), userID)
	if err != nil {
		return err
	}
	out := make([]workoutResponse, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, toResponse(w))
	}
	return c.Status(http.StatusOK).JSON(out)
}

// Get fetches a single workout the path user owns.
func (h *Handler) Get(c *fiber.Ctx) error {
	userID, workoutID, err := h.pathIDs(c)
	if err != nil {
		return err
	}
	w, err := h.svc.GetWorkout(c.UserContext(), userID, workoutID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toResponse(w))
}

// Update applies partial changes to a workout the path user owns.
func (h *Handler) Update(c *fiber.Ctx) error {
	userID, workoutID, err := h.pathIDs(c)
	if err != nil {
		return err
	}
	var req workoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	w, err := h.svc.UpdateWorkout(c.UserContext(), userID, workoutID, req.toInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toResponse(w))
}

// Delete removes a workout the path user owns.
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, workoutID, err := h.pathIDs(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteWorkout(c.UserContext(), userID, workoutID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *Handler) pathIDs(c *fiber.Ctx) (int64, int64, error) {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return 0, 0, err
	}
	workoutID, err := strconv.ParseInt(c.Params("workoutId"), 10, 64)
	if err != nil {
		return 0, 0, apperr.New(apperr.NotFound, workoutNotFoundMsg)
	}
	return userID, workoutID, nil
}
