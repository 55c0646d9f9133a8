package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"odontocare_backend/internals/features/users/auth/dto"
	"odontocare_backend/internals/features/users/auth/model"
	"odontocare_backend/internals/features/users/auth/service"
	helper "odontocare_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, user, err := service.Login(ac.DB, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, service.ErrAccountInactive):
			return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
		}
	}

	// cookie fallback for clients that do not keep the Authorization header
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   int(service.AccessTokenTTL.Seconds()),
	})

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User: dto.UserInfo{
			ID:       user.ID.String(),
			UserName: user.UserName,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	token := ""
	if fields := strings.Fields(auth); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		token = fields[1]
	} else if cookieTok := c.Cookies("access_token"); cookieTok != "" {
		token = cookieTok
	}
	if token == "" {
		return helper.Error(c, fiber.StatusBadRequest, "No token to revoke")
	}

	if err := service.Logout(ac.DB, token); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Logout failed")
	}

	c.ClearCookie("access_token")
	return helper.Success(c, "Logged out", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid UUID format")
	}

	var user model.UserModel
	if err := ac.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "OK", dto.UserInfo{
		ID:       user.ID.String(),
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.Role,
	})
}
