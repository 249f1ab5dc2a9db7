package tracking

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
	"github.com/EnesKotay/Fitness-App/internal/auth"
)

// Handler exposes weight tracking HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a tracking HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type recordRequest struct {
	Weight            *float64   `json:"weight"`
	BodyFatPercentage *float64   `json:"bodyFatPercentage"`
	MuscleMass        *float64   `json:"muscleMass"`
	RecordedAt        *time.Time `json:"recordedAt"`
	Notes             *string    `json:"notes"`
}

type recordResponse struct {
	ID                int64     `json:"id"`
	Weight            float64   `json:"weight"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage"`
	MuscleMass        *float64  `json:"muscleMass"`
	RecordedAt        time.Time `json:"recordedAt"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toResponse(rec WeightRecord) recordResponse {
	return recordResponse{
		ID:                rec.ID,
		Weight:            rec.Weight,
		BodyFatPercentage: rec.BodyFatPercentage,
		MuscleMass:        rec.MuscleMass,
		RecordedAt:        rec.RecordedAt,
		Notes:             rec.Notes,
		CreatedAt:         rec.CreatedAt,
	}
}

func (r recordRequest) toInput() RecordInput {
	return RecordInput{
		Weight:            r.Weight,
		BodyFatPercentage: r.BodyFatPercentage,
		MuscleMass:        r.MuscleMass,
		RecordedAt:        r.RecordedAt,
		Notes:             r.Notes,
	}
}

// Create stores a new weight record for the path user.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.CreateRecord(c.UserContext(), userID, req.toInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(toResponse(rec))
}

// List returns all weight records of the path user, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return err
	}
	records, err := h.svc.ListRecords(c.UserContext(), userID)
	if err != nil {
		return err
	}
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toResponse(rec))
	}
	return c.Status(http.StatusOK).JSON(out)
}

// Update applies partial changes to a record the path user owns.
func (h *Handler) Update(c *fiber.Ctx) error {
	userID, recordID, err := h.pathIDs(c)
	if err != nil {
		return err
	}
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.UpdateRecord(c.UserContext(), userID, recordID, req.toInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toResponse(rec))
}

// Delete removes a record the path user owns.
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, recordID, err := h.pathIDs(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteRecord(c.UserContext(), userID, recordID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *Handler) pathIDs(c *fiber.Ctx) (int64, int64, error) {
	userID, err := auth.SelfFromPath(c, "userId")
	if err != nil {
		return 0, 0, err
	}
	recordID, err := strconv.ParseInt(c.Params("recordId"), 10, 64)
	if err != nil {
		return 0, 0, apperr.New(apperr.NotFound, recordNotFoundMsg)
	}
	return userID, recordID, nil
}
