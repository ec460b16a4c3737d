// file: internals/features/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "teep_backend/internals/features/students/controller"
)

// StudentRoutes registers everything under /students (auth-protected group).
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctl.ListStudents)
	students.Post("/", ctl.CreateStudent)
	students.Get("/:id", ctl.GetStudent)
	students.Put("/:id", ctl.UpdateStudent)
	students.Delete("/:id", ctl.DeleteStudent)
}
