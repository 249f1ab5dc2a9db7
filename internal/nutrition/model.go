package nutrition

import "time"

// Meal is a nutrition entry owned by a single user. UserID is set at creation
// and never reassigned.
type Meal struct {
	ID        int64
	UserID    int64
	Name      string
	MealType  string // BREAKFAST, LUNCH, DINNER, SNACK
	Calories  int
	Protein   *float64
	Carbs     *float64
	Fat       *float64
	MealDate  time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
