// file: internals/features/users/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gasku_backend/internals/features/users/auth/controller"
	"gasku_backend/internals/middlewares"
)

// AuthPublicRoutes: endpoint tanpa JWT, dilindungi rate limiter.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &controller.AuthController{
		DB:        db,
		Validator: validator.New(),
	}

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	auth.Post("/reset-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ResetPassword)
}

// AuthProtectedRoutes: logout butuh token aktif (untuk tahu apa yang
// di-blacklist).
func AuthProtectedRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := &controller.AuthController{
		DB:        db,
		Validator: validator.New(),
	}
	admin.Post("/auth/logout", ctrl.Logout)
}
