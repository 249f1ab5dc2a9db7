package nutrition

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals that no meal matched the lookup.
var ErrNotFound = errors.New("meal not found")

// Repository persists meals.
type Repository interface {
	Create(ctx context.Context, m Meal) (Meal, error)
	FindByID(ctx context.Context, id int64) (Meal, error)
	// ListByUser returns the user's meals ordered by meal date descending.
	ListByUser(ctx context.Context, userID int64) ([]Meal, error)
	// ListByUserBetween returns the user's meals within [from, to], newest first.
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]Meal, error)
	Update(ctx context.Context, m Meal) error
	Delete(ctx context.Context, id int64) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed meal repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const mealColumns = `id, user_id, name, meal_type, calories, protein, carbs, fat, meal_date, notes, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, m Meal) (Meal, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO meals (user_id, name, meal_type, calories, protein, carbs, fat, meal_date, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		m.UserID, m.Name, m.MealType, m.Calories, m.Protein, m.Carbs, m.Fat, m.MealDate.UTC(), m.Notes, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
	if err := row.Scan(&m.ID); err != nil {
		return Meal{}, err
	}
	return m, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (Meal, error) {
	row := r.db.QueryRow(ctx, `SELECT `+mealColumns+` FROM meals WHERE id = $1`, id)
	m, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Meal{}, ErrNotFound
		}
		return Meal{}, err
	}
	return m, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]Meal, error) {
	rows, err := r.db.Query(ctx, `SELECT `+mealColumns+` FROM meals WHERE user_id = $1 ORDER BY meal_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMeals(rows)
}

func (r *PostgresRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]Meal, error) {
	rows, err := r.db.Query(ctx, `SELECT `+mealColumns+` FROM meals
        WHERE user_id = $1 AND meal_date >= $2 AND meal_date <= $3 ORDER BY meal_date DESC`,
		userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMeals(rows)
}

func (r *PostgresRepository) Update(ctx context.Context, m Meal) error {
	cmd, err := r.db.Exec(ctx, `UPDATE meals SET name = $1, meal_type = $2, calories = $3, protein = $4,
        carbs = $5, fat = $6, meal_date = $7, notes = $8, updated_at = $9 WHERE id = $10`,
		m.Name, m.MealType, m.Calories, m.Protein, m.Carbs, m.Fat, m.MealDate.UTC(), m.Notes, m.UpdatedAt.UTC(), m.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMeal(row pgx.Row) (Meal, error) {
	var m Meal
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.MealType, &m.Calories, &m.Protein, &m.Carbs, &m.Fat,
		&m.MealDate, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return Meal{}, err
	}
	m.MealDate = m.MealDate.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}

func collectMeals(rows pgx.Rows) ([]Meal, error) {
	meals := make([]Meal, 0)
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}
