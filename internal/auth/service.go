package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
	"github.com/EnesKotay/Fitness-App/internal/notification"
	"github.com/EnesKotay/Fitness-App/internal/user"
)

// Service implements registration and login on top of the user repository,
// the password hasher and the token service.
type Service struct {
	users    user.Repository
	tokens   *TokenService
	notifier notification.Notifier
	now      func() time.Time
}

// NewService creates a new auth service.
func NewService(users user.Repository, tokens *TokenService, notifier notification.Notifier) *Service {
	return &Service{users: users, tokens: tokens, notifier: notifier, now: time.Now}
}

// RegisterInput carries a registration request.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput carries a login request.
type LoginInput struct {
	Email    string
	Password string
}

// Result bundles a signed token with the account it identifies.
type Result struct {
	Token string
	User  user.User
}

// Register creates an account with a normalized unique email, a bcrypt
// password hash and explicit timestamps, then issues a token for it.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Result, error) {
	email := user.NormalizeEmail(in.Email)
	if email == "" {
		return Result{}, apperr.New(apperr.Validation, "Email gerekli!")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return Result{}, apperr.New(apperr.DuplicateEmail, "Bu email zaten kullanılıyor!")
	} else if !errors.Is(err, user.ErrNotFound) {
		return Result{}, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return Result{}, err
	}

	now := s.now().UTC()
	created, err := s.users.Create(ctx, user.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(in.Name),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return Result{}, apperr.New(apperr.DuplicateEmail, "Bu email zaten kullanılıyor!")
		}
		return Result{}, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return Result{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindWelcome,
			Destination: created.Email,
			Body:        fmt.Sprintf("Hoş geldin, %s!", created.Name),
		})
	}

	return Result{Token: token, User: created}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password collapse into one message so the response never reveals which
// part failed. A stored legacy plaintext password that matches is rewritten
// as a bcrypt hash and persisted before success is returned.
func (s *Service) Login(ctx context.Context, in LoginInput) (Result, error) {
	if strings.TrimSpace(in.Email) == "" {
		return Result{}, apperr.New(apperr.Validation, "Email gerekli!")
	}

	u, err := s.users.FindByEmailFold(ctx, in.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Result{}, apperr.New(apperr.InvalidCredentials, "Email veya şifre hatalı!")
		}
		return Result{}, err
	}

	if IsLegacyPlaintext(u.PasswordHash) {
		if in.Password != u.PasswordHash {
			return Result{}, apperr.New(apperr.InvalidCredentials, "Email veya şifre hatalı!")
		}
		// One-shot upgrade: the plaintext record is rewritten before the
		// login is acknowledged, so the next login takes the bcrypt path.
		hash, err := HashPassword(in.Password)
		if err != nil {
			return Result{}, err
		}
		u.PasswordHash = hash
		u.UpdatedAt = s.now().UTC()
		if err := s.users.Update(ctx, u); err != nil {
			return Result{}, err
		}
	} else if !VerifyPassword(in.Password, u.PasswordHash) {
		return Result{}, apperr.New(apperr.InvalidCredentials, "Email veya şifre hatalı!")
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return Result{}, err
	}
	return Result{Token: token, User: u}, nil
}

// GetUser fetches a profile by id.
func (s *Service) GetUser(ctx context.Context, id int64) (user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, apperr.New(apperr.NotFound, "Kullanıcı bulunamadı!")
		}
		return user.User{}, err
	}
	return u, nil
}
