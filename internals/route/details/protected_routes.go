// file: internals/route/details/protected_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "teep_backend/internals/features/classes/route"
	dashboardRoute "teep_backend/internals/features/dashboard/route"
	invoiceRoute "teep_backend/internals/features/finance/invoices/route"
	lessonRoute "teep_backend/internals/features/lessons/route"
	materialRoute "teep_backend/internals/features/materials/route"
	noteRoute "teep_backend/internals/features/notes/route"
	studentRoute "teep_backend/internals/features/students/route"
	authRoute "teep_backend/internals/features/users/auth/route"
	profileRoute "teep_backend/internals/features/users/profile/route"
)

// ProtectedRoutes wires every authenticated feature group. The router
// passed in already carries the auth middleware.
func ProtectedRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthPrivateRoutes(api, db)
	profileRoute.ProfileRoutes(api, db)

	dashboardRoute.DashboardRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	lessonRoute.PrivateLessonRoutes(api, db)
	materialRoute.MaterialRoutes(api, db)
	noteRoute.NoteRoutes(api, db)
	invoiceRoute.InvoiceRoutes(api, db)
}
