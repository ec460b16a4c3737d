// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "teep_backend/internals/features/users/auth/controller"
	"teep_backend/internals/middlewares"
)

// AuthPublicRoutes: no JWT required
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/confirm", ctrl.ConfirmEmail)
	auth.Post("/refresh", ctrl.RefreshToken)
	auth.Get("/password-strength", ctrl.PasswordStrength)
}

// AuthPrivateRoutes: mounted behind the JWT middleware
func AuthPrivateRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/change-password", ctrl.ChangePassword)
}
