package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound signals that no user matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail signals a uniqueness violation on the email column.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Repository persists users.
type Repository interface {
	// Create inserts the user and returns it with the assigned id.
	Create(ctx context.Context, u User) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	// FindByEmail matches the already-normalized email exactly.
	FindByEmail(ctx context.Context, email string) (User, error)
	// FindByEmailFold normalizes the input before matching, so any casing a
	// user types at login resolves to the canonical account.
	FindByEmailFold(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password, name, height, weight, birth_date, gender, created_at, updated_at`

// Create inserts a new user and returns the row with its assigned id.
func (r *PostgresRepository) Create(ctx context.Context, u User) (User, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO users (email, password, name, height, weight, birth_date, gender, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		u.Email, u.PasswordHash, u.Name, u.Height, u.Weight, u.BirthDate, u.Gender, u.CreatedAt.UTC(), u.UpdatedAt.UTC())
	if err := row.Scan(&u.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, ErrDuplicateEmail
		}
		return User{}, err
	}
	return u, nil
}

// FindByID fetches a user by primary key.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail fetches a user by exact email match.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// FindByEmailFold fetches a user matching the normalized email case-insensitively.
func (r *PostgresRepository) FindByEmailFold(ctx context.Context, email string) (User, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return User{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = $1`, normalized)
	return scanUser(row)
}

// Update rewrites the stored user row, including the password hash.
func (r *PostgresRepository) Update(ctx context.Context, u User) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET email = $1, password = $2, name = $3, height = $4,
        weight = $5, birth_date = $6, gender = $7, updated_at = $8 WHERE id = $9`,
		u.Email, u.PasswordHash, u.Name, u.Height, u.Weight, u.BirthDate, u.Gender, u.UpdatedAt.UTC(), u.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (User, error) {
	var (
		u         User
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Height, &u.Weight, &u.BirthDate, &u.Gender, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.CreatedAt = createdAt.UTC()
	u.UpdatedAt = updatedAt.UTC()
	return u, nil
}
