package tracking

import (
	"context"
	"errors"
	"time"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
	"github.com/EnesKotay/Fitness-App/internal/auth"
	"github.com/EnesKotay/Fitness-App/internal/user"
)

const recordNotFoundMsg = "Kayıt bulunamadı veya yetkiniz yok!"

// Service exposes weight tracking operations.
type Service struct {
	records Repository
	users   user.Repository
	now     func() time.Time
}

// NewService builds a tracking service instance.
func NewService(records Repository, users user.Repository) *Service {
	return &Service{records: records, users: users, now: time.Now}
}

// RecordInput carries weight record fields; nil pointers mean "not provided".
type RecordInput struct {
	Weight            *float64
	BodyFatPercentage *float64
	MuscleMass        *float64
	RecordedAt        *time.Time
	Notes             *string
}

// CreateRecord stores a weight measurement and syncs the user's current
// weight to it, mirroring what the profile screen displays.
func (s *Service) CreateRecord(ctx context.Context, userID int64, in RecordInput) (WeightRecord, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return WeightRecord{}, apperr.New(apperr.NotFound, "Kullanıcı bulunamadı!")
		}
		return WeightRecord{}, err
	}

	now := s.now().UTC()
	rec := WeightRecord{
		UserID:     userID,
		RecordedAt: now,
		CreatedAt:  now,
	}
	if in.Weight != nil {
		rec.Weight = *in.Weight
	}
	rec.BodyFatPercentage = in.BodyFatPercentage
	rec.MuscleMass = in.MuscleMass
	if in.RecordedAt != nil {
		rec.RecordedAt = in.RecordedAt.UTC()
	}
	if in.Notes != nil {
		rec.Notes = *in.Notes
	}

	created, err := s.records.Create(ctx, rec)
	if err != nil {
		return WeightRecord{}, err
	}

	weight := created.Weight
	u.Weight = &weight
	u.UpdatedAt = now
	if err := s.users.Update(ctx, u); err != nil {
		return WeightRecord{}, err
	}

	return created, nil
}

// ListRecords returns all of the user's weight records, newest first.
func (s *Service) ListRecords(ctx context.Context, userID int64) ([]WeightRecord, error) {
	return s.records.ListByUser(ctx, userID)
}

// UpdateRecord applies the provided fields to a record the user owns. Missing
// and foreign records report the same not-found outcome.
func (s *Service) UpdateRecord(ctx context.Context, userID, recordID int64, in RecordInput) (WeightRecord, error) {
	rec, err := s.ownedRecord(ctx, userID, recordID)
	if err != nil {
		return WeightRecord{}, err
	}

	if in.Weight != nil {
		rec.Weight = *in.Weight
	}
	if in.BodyFatPercentage != nil {
		rec.BodyFatPercentage = in.BodyFatPercentage
	}
	if in.MuscleMass != nil {
		rec.MuscleMass = in.MuscleMass
	}
	if in.RecordedAt != nil {
		rec.RecordedAt = in.RecordedAt.UTC()
	}
	if in.Notes != nil {
		rec.Notes = *in.Notes
	}

	if err := s.records.Update(ctx, rec); err != nil {
		return WeightRecord{}, err
	}
	return rec, nil
}

// DeleteRecord removes a record the user owns.
func (s *Service) DeleteRecord(ctx context.Context, userID, recordID int64) error {
	if _, err := s.ownedRecord(ctx, userID, recordID); err != nil {
		return err
	}
	return s.records.Delete(ctx, recordID)
}

func (s *Service) ownedRecord(ctx context.Context, userID, recordID int64) (WeightRecord, error) {
	rec, err := s.records.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return WeightRecord{}, apperr.New(apperr.NotFound, recordNotFoundMsg)
		}
		return WeightRecord{}, err
	}
	if err := auth.AuthorizeOwnership(userID, rec.UserID, recordNotFoundMsg); err != nil {
		return WeightRecord{}, err
	}
	return rec, nil
}
