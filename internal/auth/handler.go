package auth

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
	"github.com/EnesKotay/Fitness-App/internal/middleware"
	"github.com/EnesKotay/Fitness-App/internal/user"
)

// Handler exposes the auth HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     user.NormalizeEmail(u.Email),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// Register creates an account and returns a token for it.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.Register(c.UserContext(), RegisterInput{Email: req.Email, Password: req.Password, Name: req.Name})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(authResponse{Token: res.Token, User: toUserResponse(res.User)})
}

// Login verifies credentials and returns a token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.Login(c.UserContext(), LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(authResponse{Token: res.Token, User: toUserResponse(res.User)})
}

// Me returns the profile of the token's owner. The user id comes from the
// verified token, never from a request parameter.
func (h *Handler) Me(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	u, err := h.svc.GetUser(c.UserContext(), uid)
	if err != nil {
		// Matches the original contract: every failure on /me is a 401.
		return apperr.New(apperr.Unauthorized, err.Error())
	}
	return c.Status(http.StatusOK).JSON(toUserResponse(u))
}

// GetUser returns a profile by path id, but only to its owner.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	pathID, err := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil {
		return apperr.New(apperr.NotFound, "Kullanıcı bulunamadı!")
	}
	if err := AuthorizeSelf(middleware.UserID(c), pathID); err != nil {
		return err
	}
	u, err := h.svc.GetUser(c.UserContext(), pathID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toUserResponse(u))
}

// Test is the original smoke endpoint.
func (h *Handler) Test(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Auth endpoint çalışıyor!"})
}
