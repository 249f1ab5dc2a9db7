package workout

import (
	"context"
	"errors"
	"time"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
	"github.com/EnesKotay/Fitness-App/internal/auth"
	"github.com/EnesKotay/Fitness-App/internal/user"
)

const workoutNotFoundMsg = "Antrenman bulunamadı veya yetkiniz yok!"

// Service exposes workout operations.
type Service struct {
	workouts Repository
	users    user.Repository
	now      func() time.Time
}

// NewService builds a workout service instance.
func NewService(workouts Repository, users user.Repository) *Service {
	return &Service{workouts: workouts, users: users, now: time.Now}
}

// WorkoutInput carries workout fields; nil pointers mean "not provided".
type WorkoutInput struct {
	Name            *string
	WorkoutType     *string
	DurationMinutes *int
	CaloriesBurned  *int
	WorkoutDate     *time.Time
	Notes           *string
}

// CreateWorkout records a workout for the user, stamping ownership and timestamps.
func (s *Service) CreateWorkout(ctx context.Context, userID int64, in WorkoutInput) (Workout, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Workout{}, apperr.New(apperr.NotFound, "Kullanıcı bulunamadı!")
		}
		return Workout{}, err
	}

	now := s.now().UTC()
	w := Workout{
		UserID:      userID,
		WorkoutDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.WorkoutType != nil {
		w.WorkoutType = *in.WorkoutType
	}
	w.DurationMinutes = in.DurationMinutes
	w.CaloriesBurned = in.CaloriesBurned
	if in.WorkoutDate != nil {
		w.WorkoutDate = in.WorkoutDate.UTC()
	}
	if in.Notes != nil {
		w.Notes = *in.Notes
	}

	return s.workouts.Create(ctx, w)
}

// ListWorkouts returns all of the user's workouts, newest first.
func (s *Service) ListWorkouts(ctx context.Context, userID int64) ([]Workout, error) {
	return s.workouts.ListByUser(ctx, userID)
}

// GetWorkout fetches a single workout the user owns. Missing and foreign
// workouts report the same not-found outcome.
func (s *Service) GetWorkout(ctx context.Context, userID, workoutID int64) (Workout, error) {
	return s.ownedWorkout(ctx, userID, workoutID)
}

// UpdateWorkout applies the provided fields to a workout the user owns.
func (s *Service) UpdateWorkout(ctx context.Context, userID, workoutID int64, in WorkoutInput) (Workout, error) {
	w, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return Workout{}, err
	}

	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.WorkoutType != nil {
		w.WorkoutType = *in.WorkoutType
	}
	if in.DurationMinutes != nil {
		w.DurationMinutes = in.DurationMinutes
	}
	if in.CaloriesBurned != nil {
		w.CaloriesBurned = in.CaloriesBurned
	}
	if in.WorkoutDate != nil {
		w.WorkoutDate = in.WorkoutDate.UTC()
	}
	if in.Notes != nil {
		w.Notes = *in.Notes
	}
	w.UpdatedAt = s.now().UTC()

	if err := s.workouts.Update(ctx, w); err != nil {
		return Workout{}, err
	}
	return w, nil
}

// DeleteWorkout removes a workout the user owns.
func (s *Service) DeleteWorkout(ctx context.Context, userID, workoutID int64) error {
	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return err
	}
	return s.workouts.Delete(ctx, workoutID)
}

func (s *Service) ownedWorkout(ctx context.Context, userID, workoutID int64) (Workout, error) {
	w, err := s.workouts.FindByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Workout{}, apperr.New(apperr.NotFound, workoutNotFoundMsg)
		}
		return Workout{}, err
	}
	if err := auth.AuthorizeOwnership(userID, w.UserID, workoutNotFoundMsg); err != nil {
		return Workout{}, err
	}
	return w, nil
}
