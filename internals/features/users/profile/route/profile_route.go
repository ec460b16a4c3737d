// internals/features/users/profile/route/profile_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "teep_backend/internals/features/users/profile/controller"
)

func ProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	profile := r.Group("/profile")
	profile.Get("/", ctrl.GetProfile)
	profile.Put("/", ctrl.UpdateProfile)
	profile.Post("/avatar", ctrl.UploadAvatar)
}
