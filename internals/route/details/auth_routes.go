package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "dakwahku_backend/internals/features/users/auth/controller"
	middlewares "dakwahku_backend/internals/middlewares"
	authMiddleware "dakwahku_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint autentikasi. Register/login/google/refresh publik
// (dengan rate limit), logout & me butuh token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api := app.Group("/api/auth")

	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	api.Post("/refresh-token", ctrl.RefreshToken)

	api.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
	api.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
