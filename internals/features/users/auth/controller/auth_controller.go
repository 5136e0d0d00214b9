package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "dakwahku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ctrl.DB, c)
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctrl.DB, c)
}

// POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ctrl.DB, c)
}

// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ctrl.DB, c)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctrl.DB, c)
}

// GET /api/auth/me (butuh AuthMiddleware)
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	return authService.Me(ctrl.DB, c)
}
