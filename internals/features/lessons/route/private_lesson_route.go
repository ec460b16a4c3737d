// file: internals/features/lessons/route/private_lesson_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonController "teep_backend/internals/features/lessons/controller"
)

func PrivateLessonRoutes(api fiber.Router, db *gorm.DB) {
	ctl := lessonController.NewPrivateLessonController(db)

	lessons := api.Group("/lessons")
	lessons.Get("/", ctl.ListLessons)
	lessons.Post("/", ctl.CreateLesson)
	lessons.Put("/:id", ctl.UpdateLesson)
	lessons.Delete("/:id", ctl.DeleteLesson)
}
