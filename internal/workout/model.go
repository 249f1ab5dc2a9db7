package workout

import "time"

// Workout is a training session owned by a single user. UserID is set at
// creation and never reassigned.
type Workout struct {
	ID              int64
	UserID          int64
	Name            string
	WorkoutType     string // STRENGTH, CARDIO, FLEXIBILITY, ...
	DurationMinutes *int
	CaloriesBurned  *int
	WorkoutDate     time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
