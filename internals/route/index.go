// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "teep_backend/internals/middlewares/auth"
	"teep_backend/internals/route/details"
)

// SetupRoutes mounts everything. /api holds the public surface
// (register, login, email confirmation), /api/u everything behind auth.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	details.PublicRoutes(api, db)

	protected := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	details.ProtectedRoutes(protected, db)
}
