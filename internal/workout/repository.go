package workout

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals that no workout matched the lookup.
var ErrNotFound = errors.New("workout not found")

// Repository persists workouts.
type Repository interface {
	Create(ctx context.Context, w Workout) (Workout, error)
	FindByID(ctx context.Context, id int64) (Workout, error)
	// ListByUser returns the user's workouts ordered by workout date descending.
	ListByUser(ctx context.Context, userID int64) ([]Workout, error)
	Update(ctx context.Context, w Workout) error
	Delete(ctx context.Context, id int64) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed workout repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const workoutColumns = `id, user_id, name, workout_type, duration_minutes, calories_burned, workout_date, notes, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, w Workout) (Workout, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO workouts (user_id, name, workout_type, duration_minutes, calories_burned, workout_date, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		w.UserID, w.Name, w.WorkoutType, w.DurationMinutes, w.CaloriesBurned, w.WorkoutDate.UTC(), w.Notes, w.CreatedAt.UTC(), w.UpdatedAt.UTC())
	if err := row.Scan(&w.ID); err != nil {
		return Workout{}, err
	}
	return w, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (Workout, error) {
	row := r.db.QueryRow(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = $1`, id)
	w, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Workout{}, ErrNotFound
		}
		return Workout{}, err
	}
	return w, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]Workout, error) {
	rows, err := r.db.Query(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE user_id = $1 ORDER BY workout_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, w Workout) error {
	cmd, err := r.db.Exec(ctx, `UPDATE workouts SET name = $1, workout_type = $2, duration_minutes = $3,
        calories_burned = $4, workout_date = $5, notes = $6, updated_at = $7 WHERE id = $8`,
		w.Name, w.WorkoutType, w.DurationMinutes, w.CaloriesBurned, w.WorkoutDate.UTC(), w.Notes, w.UpdatedAt.UTC(), w.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanWorkout(row pgx.Row) (Workout, error) {
	var w Workout
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.WorkoutType, &w.DurationMinutes, &w.CaloriesBurned,
		&w.WorkoutDate, &w.Notes, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return Workout{}, err
	}
	w.WorkoutDate = w.WorkoutDate.UTC()
	w.CreatedAt = w.CreatedAt.UTC()
	w.UpdatedAt = w.UpdatedAt.UTC()
	return w, nil
}
