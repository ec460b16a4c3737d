// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "teep_backend/internals/features/users/auth/route"
)

func PublicRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(api, db)
}
