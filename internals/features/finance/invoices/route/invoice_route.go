// file: internals/features/finance/invoices/route/invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceController "teep_backend/internals/features/finance/invoices/controller"
)

func InvoiceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := invoiceController.NewInvoiceController(db)

	invoices := api.Group("/invoices")
	invoices.Get("/", ctl.ListInvoices)
	invoices.Post("/generate", ctl.GenerateInvoices)
	invoices.Patch("/:id/status", ctl.UpdateInvoiceStatus)
	invoices.Get("/:id/whatsapp-link", ctl.GetWhatsAppLink)
	invoices.Delete("/", ctl.DeleteInvoicesByMonth)
	invoices.Delete("/:id", ctl.DeleteInvoice)

	// invoice history lives under the student resource
	api.Get("/students/:id/invoices", ctl.ListStudentInvoices)
}
