package exercise

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Exercise is a catalog entry. The catalog is read-only and shared by all
// users, so no ownership applies.
type Exercise struct {
	ID           int64
	MuscleGroup  string // CHEST, BACK, LEGS, SHOULDERS, BICEPS, TRICEPS, CORE, GLUTES
	Name         string
	Description  string
	Instructions string
}

// Repository reads the exercise catalog.
type Repository interface {
	// ListMuscleGroups returns the distinct muscle groups, sorted.
	ListMuscleGroups(ctx context.Context) ([]string, error)
	ListByMuscleGroup(ctx context.Context, muscleGroup string) ([]Exercise, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed exercise repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMuscleGroups(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT muscle_group FROM exercises ORDER BY muscle_group`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]string, 0)
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *PostgresRepository) ListByMuscleGroup(ctx context.Context, muscleGroup string) ([]Exercise, error) {
	rows, err := r.db.Query(ctx, `SELECT id, muscle_group, name, description, instructions
        FROM exercises WHERE muscle_group = $1 ORDER BY name`, muscleGroup)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.MuscleGroup, &e.Name, &e.Description, &e.Instructions); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
