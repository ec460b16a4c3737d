// file: internals/features/notes/route/note_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noteController "teep_backend/internals/features/notes/controller"
)

func NoteRoutes(api fiber.Router, db *gorm.DB) {
	ctl := noteController.NewNoteController(db)

	notes := api.Group("/notes")
	notes.Get("/", ctl.ListNotes)
	notes.Post("/", ctl.CreateNote)
	notes.Put("/:id", ctl.UpdateNote)
	notes.Delete("/:id", ctl.DeleteNote)
}
