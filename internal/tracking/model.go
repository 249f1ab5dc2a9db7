package tracking

import "time"

// WeightRecord is a body measurement owned by a single user. UserID is set at
// creation and never reassigned.
type WeightRecord struct {
	ID                int64
	UserID            int64
	Weight            float64 // kg
	BodyFatPercentage *float64
	MuscleMass        *float64 // kg
	RecordedAt        time.Time
	Notes             string
	CreatedAt         time.Time
}
