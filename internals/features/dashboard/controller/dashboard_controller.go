// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "teep_backend/internals/features/classes/model"
	"teep_backend/internals/features/dashboard/dto"
	invoiceModel "teep_backend/internals/features/finance/invoices/model"
	lessonModel "teep_backend/internals/features/lessons/model"
	materialModel "teep_backend/internals/features/materials/model"
	studentModel "teep_backend/internals/features/students/model"
	helper "teep_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

/* =========================================================
   STATS - GET /api/u/dashboard
   One round of owner-scoped counts plus the current month's
   invoice totals. Pending sums every unpaid invoice, not just
   this month's, so overdue balances stay visible.
   ========================================================= */

func (ctl *DashboardController) GetStats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	ref := helper.MonthReference(now.Year(), now.Month())

	stats := dto.DashboardResponse{MonthReference: ref}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&studentModel.Student{}, &stats.TotalStudents},
		{&classModel.Class{}, &stats.TotalClasses},
		{&lessonModel.PrivateLesson{}, &stats.TotalLessons},
		{&materialModel.Material{}, &stats.TotalMaterials},
	}
	for _, cnt := range counts {
		if err := ctl.DB.Model(cnt.model).
			Where("user_id = ?", userID).
			Count(cnt.dest).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar estatísticas")
		}
	}

	if err := ctl.sumInvoices(&stats.MonthlyRevenue,
		"user_id = ? AND status = ? AND month_reference = ?",
		userID, invoiceModel.InvoicePaid, ref); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar estatísticas")
	}
	if err := ctl.sumInvoices(&stats.PendingAmount,
		"user_id = ? AND status <> ?",
		userID, invoiceModel.InvoicePaid); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar estatísticas")
	}

	return helper.JsonOK(c, "OK", stats)
}

func (ctl *DashboardController) sumInvoices(dest *float64, cond string, args ...interface{}) error {
	return ctl.DB.Model(&invoiceModel.Invoice{}).
		Where(cond, args...).
		Select("COALESCE(SUM(amount), 0)").
		Scan(dest).Error
}
