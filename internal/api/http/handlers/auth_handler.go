package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fiskfix/workorder-service/internal/api/dto"
	"github.com/fiskfix/workorder-service/internal/domain"
	"github.com/fiskfix/workorder-service/internal/service"
	apperrors "github.com/fiskfix/workorder-service/pkg/util"
)

// AuthHandler exposes the unauthenticated registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid user data")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("invalid user data")
	}

	user, token, _, err := h.auth.Register(c.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(authResponse(user, token))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewUnauthorized("invalid email or password")
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(authResponse(user, token))
}

func authResponse(user *domain.User, token string) dto.AuthResponse {
	return dto.AuthResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}
}
