// file: internals/features/finance/invoices/controller/invoice_controller.go
package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"teep_backend/internals/features/finance/invoices/dto"
	invoiceModel "teep_backend/internals/features/finance/invoices/model"
	invoiceService "teep_backend/internals/features/finance/invoices/service"
	studentModel "teep_backend/internals/features/students/model"
	helper "teep_backend/internals/helpers"
)

var validate = validator.New()

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

/* =========================================================
   LIST - GET /api/u/invoices?month=YYYY-MM&status=
   Returns the month's rows plus the summary card.
   ========================================================= */

func (ctl *InvoiceController) ListInvoices(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	ref := c.Query("month")
	if ref == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe o mês (?month=YYYY-MM)")
	}
	if _, _, err := helper.ParseMonthReference(ref); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mês inválido (use YYYY-MM)")
	}

	tx := ctl.DB.Where("user_id = ? AND month_reference = ?", userID, ref)
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}

	var invoices []invoiceModel.Invoice
	if err := tx.
		Order("student_name ASC").
		Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar faturas")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"invoices": dto.ToInvoiceResponses(invoices),
		"summary":  dto.BuildMonthSummary(ref, invoices),
	})
}

/* =========================================================
   GENERATE - POST /api/u/invoices/generate
   ========================================================= */

func (ctl *InvoiceController) GenerateInvoices(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var body dto.GenerateInvoicesDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	year, month, err := helper.ParseMonthReference(body.MonthReference)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mês inválido (use YYYY-MM)")
	}

	outcome, err := invoiceService.GenerateMonthlyInvoices(ctl.DB, userID, year, month)
	if err != nil {
		log.Printf("[ERROR] generate invoices for %s: %v", outcome.MonthReference, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar faturas")
	}

	data := fiber.Map{
		"month_reference": outcome.MonthReference,
		"created":         outcome.Created,
		"skipped":         outcome.Skipped,
		"invoices":        dto.ToInvoiceResponses(outcome.Invoices),
	}

	switch outcome.Result {
	case invoiceService.ResultNoBillableStudents:
		return helper.JsonOK(c, "Nenhum aluno ativo com mensalidade configurada", data)
	case invoiceService.ResultAllCovered:
		return helper.JsonOK(c, "Todas as faturas deste mês já foram geradas", data)
	default:
		msg := fmt.Sprintf("%d fatura(s) gerada(s) para %s/%d!", outcome.Created, helper.MonthNamePtBR(month), year)
		return helper.JsonCreated(c, msg, data)
	}
}

/* =========================================================
   STATUS - PATCH /api/u/invoices/:id/status
   ========================================================= */

func (ctl *InvoiceController) UpdateInvoiceStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var body dto.InvoiceStatusDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var invoice invoiceModel.Invoice
	if err := ctl.DB.First(&invoice, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Fatura não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar fatura")
	}

	if err := ctl.DB.Model(&invoice).Update("status", body.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar status da fatura")
	}

	msg := "Status da fatura atualizado!"
	if body.Status == string(invoiceModel.InvoicePaid) {
		msg = "Pagamento registrado!"
	}
	invoice.Status = invoiceModel.InvoiceStatus(body.Status)
	return helper.JsonUpdated(c, msg, dto.ToInvoiceResponse(invoice))
}

/* =========================================================
   DELETE - DELETE /api/u/invoices/:id
            DELETE /api/u/invoices?month=YYYY-MM (bulk)
   Deleting and regenerating the month only refills the gaps.
   ========================================================= */

func (ctl *InvoiceController) DeleteInvoice(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.Delete(&invoiceModel.Invoice{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir fatura")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fatura não encontrada")
	}

	return helper.JsonDeleted(c, "Fatura excluída com sucesso!", fiber.Map{"id": id})
}

func (ctl *InvoiceController) DeleteInvoicesByMonth(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	ref := c.Query("month")
	if ref == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe o mês (?month=YYYY-MM)")
	}
	if _, _, err := helper.ParseMonthReference(ref); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mês inválido (use YYYY-MM)")
	}

	res := ctl.DB.Delete(&invoiceModel.Invoice{}, "user_id = ? AND month_reference = ?", userID, ref)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir faturas do mês")
	}

	return helper.JsonDeleted(c, fmt.Sprintf("%d fatura(s) excluída(s)", res.RowsAffected), fiber.Map{
		"month_reference": ref,
		"deleted":         res.RowsAffected,
	})
}

/* =========================================================
   WHATSAPP - GET /api/u/invoices/:id/whatsapp-link
   ========================================================= */

func (ctl *InvoiceController) GetWhatsAppLink(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var invoice invoiceModel.Invoice
	if err := ctl.DB.First(&invoice, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Fatura não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar fatura")
	}

	var student studentModel.Student
	if err := ctl.DB.First(&student, "id = ? AND user_id = ?", invoice.StudentID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno desta fatura não existe mais")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}
	if student.Phone == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Aluno não tem telefone cadastrado")
	}

	year, month, err := helper.ParseMonthReference(invoice.MonthReference)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fatura com mês de referência inválido")
	}

	message := invoiceService.BuildCollectionMessage(invoice.StudentName, invoice.Amount, month, year, invoice.DueDate)
	link := invoiceService.BuildWhatsAppLink(student.Phone, message)
	if link == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Telefone do aluno inválido")
	}

	return helper.JsonOK(c, "OK", dto.WhatsAppLinkResponse{
		InvoiceID: invoice.ID,
		Phone:     student.Phone,
		Link:      link,
		Message:   message,
	})
}

/* =========================================================
   HISTORY - GET /api/u/students/:id/invoices
   ========================================================= */

func (ctl *InvoiceController) ListStudentInvoices(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var invoices []invoiceModel.Invoice
	if err := ctl.DB.
		Where("user_id = ? AND student_id = ?", userID, studentID).
		Order("month_reference DESC").
		Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar faturas do aluno")
	}

	return helper.JsonOK(c, "OK", dto.ToInvoiceResponses(invoices))
}
