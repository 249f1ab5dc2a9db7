package tracking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals that no weight record matched the lookup.
var ErrNotFound = errors.New("weight record not found")

// Repository persists weight records.
type Repository interface {
	Create(ctx context.Context, rec WeightRecord) (WeightRecord, error)
	FindByID(ctx context.Context, id int64) (WeightRecord, error)
	// ListByUser returns the user's records ordered by recording time descending.
	ListByUser(ctx context.Context, userID int64) ([]WeightRecord, error)
	Update(ctx context.Context, rec WeightRecord) error
	Delete(ctx context.Context, id int64) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed weight record repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const recordColumns = `id, user_id, weight, body_fat_percentage, muscle_mass, recorded_at, notes, created_at`

func (r *PostgresRepository) Create(ctx context.Context, rec WeightRecord) (WeightRecord, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO weight_records (user_id, weight, body_fat_percentage, muscle_mass, recorded_at, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		rec.UserID, rec.Weight, rec.BodyFatPercentage, rec.MuscleMass, rec.RecordedAt.UTC(), rec.Notes, rec.CreatedAt.UTC())
	if err := row.Scan(&rec.ID); err != nil {
		return WeightRecord{}, err
	}
	return rec, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (WeightRecord, error) {
	row := r.db.QueryRow(ctx, `SELECT `+recordColumns+` FROM weight_records WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return WeightRecord{}, ErrNotFound
		}
		return WeightRecord{}, err
	}
	return rec, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]WeightRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+recordColumns+` FROM weight_records WHERE user_id = $1 ORDER BY recorded_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]WeightRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, rec WeightRecord) error {
	cmd, err := r.db.Exec(ctx, `UPDATE weight_records SET weight = $1, body_fat_percentage = $2,
        muscle_mass = $3, recorded_at = $4, notes = $5 WHERE id = $6`,
		rec.Weight, rec.BodyFatPercentage, rec.MuscleMass, rec.RecordedAt.UTC(), rec.Notes, rec.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM weight_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (WeightRecord, error) {
	var rec WeightRecord
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Weight, &rec.BodyFatPercentage, &rec.MuscleMass,
		&rec.RecordedAt, &rec.Notes, &rec.CreatedAt)
	if err != nil {
		return WeightRecord{}, err
	}
	rec.RecordedAt = rec.RecordedAt.UTC()
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}
