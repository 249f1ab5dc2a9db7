package user

import (
	"strings"
	"time"
)

// User represents a registered account. PasswordHash holds a bcrypt hash, or
// transiently a legacy plaintext password that gets upgraded on first login.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Height       *float64
	Weight       *float64
	BirthDate    *time.Time
	Gender       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases and trims an email so that every lookup and the
// uniqueness constraint operate on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
