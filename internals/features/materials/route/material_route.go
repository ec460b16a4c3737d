// file: internals/features/materials/route/material_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	materialController "teep_backend/internals/features/materials/controller"
)

func MaterialRoutes(api fiber.Router, db *gorm.DB) {
	ctl := materialController.NewMaterialController(db)

	materials := api.Group("/materials")
	materials.Get("/", ctl.ListMaterials)
	materials.Post("/", ctl.CreateMaterial)
	materials.Put("/:id", ctl.UpdateMaterial)
	materials.Delete("/:id", ctl.DeleteMaterial)
}
