package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/EnesKotay/Fitness-App/internal/user"
)

const tokenIssuer = "fitness-backend"

var (
	// ErrMissingBearer signals a missing or malformed Authorization header.
	ErrMissingBearer = errors.New("Geçersiz veya eksik Authorization header")
	// ErrInvalidToken signals a token whose signature or shape does not verify.
	ErrInvalidToken = errors.New("Geçersiz token")
	// ErrTokenExpired signals a token past its expiry.
	ErrTokenExpired = errors.New("Token süresi dolmuş")
	// ErrMalformedSubject signals an absent, blank or non-numeric subject claim.
	ErrMalformedSubject = errors.New("Token subject yok")
)

// Claims carries the token payload. Email and name are denormalized at
// issuance for display only; authorization decisions use the subject alone.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a token service. An empty secret falls back to the
// documented development default; ttl <= 0 falls back to 24 hours.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if secret == "" {
		secret = "fitness-backend-jwt-secret-key-at-least-32-bytes-long"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the wall clock. Test use only.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for the user with the configured lifespan.
func (s *TokenService) Issue(u user.User) (string, error) {
	now := s.now()
	claims := Claims{
		Email: u.Email,
		Name:  u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyHeader validates a raw Authorization header value and returns the
// acting user id parsed from the subject claim.
func (s *TokenService) VerifyHeader(authorization string) (int64, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return 0, ErrMissingBearer
	}
	tokenStr := strings.TrimSpace(authorization[len("Bearer "):])
	if tokenStr == "" {
		return 0, ErrMissingBearer
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return 0, ErrMalformedSubject
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, ErrMalformedSubject
	}
	return userID, nil
}
