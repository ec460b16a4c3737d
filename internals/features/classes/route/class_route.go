// file: internals/features/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "teep_backend/internals/features/classes/controller"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctl := classController.NewClassController(db)

	classes := api.Group("/classes")
	classes.Get("/", ctl.ListClasses)
	classes.Post("/", ctl.CreateClass)
	classes.Get("/:id", ctl.GetClass)
	classes.Put("/:id", ctl.UpdateClass)
	classes.Delete("/:id", ctl.DeleteClass)

	classes.Post("/:id/students", ctl.AddStudentToClass)
	classes.Delete("/:id/students/:entryId", ctl.RemoveStudentFromClass)
}
