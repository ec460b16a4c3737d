// file: internals/features/students/controller/student_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	invoiceService "teep_backend/internals/features/finance/invoices/service"
	"teep_backend/internals/features/students/dto"
	studentModel "teep_backend/internals/features/students/model"
	helper "teep_backend/internals/helpers"

	"github.com/bytedance/sonic"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* =========================================================
   LIST - GET /api/u/students?status=&q=
   ========================================================= */

func (ctl *StudentController) ListStudents(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.Model(&studentModel.Student{}).Where("user_id = ?", userID)

	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if q := c.Query("q"); q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar alunos")
	}

	var students []studentModel.Student
	if err := tx.
		Order("name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar alunos")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", dto.ToStudentResponses(students), pagination)
}

/* =========================================================
   DETAIL - GET /api/u/students/:id
   ========================================================= */

func (ctl *StudentController) GetStudent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var student studentModel.Student
	if err := ctl.DB.First(&student, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}

	return helper.JsonOK(c, "OK", dto.ToStudentResponse(student))
}

/* =========================================================
   CREATE - POST /api/u/students
   ========================================================= */

func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var body dto.StudentCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	birthDate, err := dto.ParseDate(body.BirthDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data de nascimento inválida (use YYYY-MM-DD)")
	}
	enrollmentDate, err := dto.ParseDate(body.EnrollmentDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data de matrícula inválida (use YYYY-MM-DD)")
	}

	student := studentModel.Student{
		UserID:             userID,
		Name:               body.Name,
		Email:              body.Email,
		Phone:              body.Phone,
		BadgeColor:         body.BadgeColor,
		BadgeDescription:   body.BadgeDescription,
		BirthDate:          birthDate,
		Address:            body.Address,
		EmergencyContact:   body.EmergencyContact,
		EmergencyPhone:     body.EmergencyPhone,
		MedicalInfo:        body.MedicalInfo,
		MonthlyFeeAmount:   body.MonthlyFeeAmount,
		PaymentDay:         body.PaymentDay,
		DiscountPercentage: body.DiscountPercentage,
		Notes:              body.Notes,
		EnrollmentDate:     enrollmentDate,
	}
	if body.MonthlyFeeType != "" {
		student.MonthlyFeeType = studentModel.FeeType(body.MonthlyFeeType)
	}
	if body.Status != "" {
		student.Status = studentModel.StudentStatus(body.Status)
	} else {
		student.Status = studentModel.StudentStatusActive
	}

	if err := ctl.DB.Create(&student).Error; err != nil {
		log.Printf("[ERROR] create student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cadastrar aluno")
	}

	return helper.JsonCreated(c, "Aluno cadastrado com sucesso!", dto.ToStudentResponse(student))
}

/* =========================================================
   UPDATE - PUT /api/u/students/:id
   Fee changes cascade to the student's pending invoices. When
   that cascade fails the student update still stands and the
   response says so.
   ========================================================= */

func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var student studentModel.Student
	if err := ctl.DB.First(&student, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}

	var body dto.StudentUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	// Updates below writes through &student, so keep a value copy
	// of the old fee instead of aliasing the struct field.
	var prevFee *float64
	if student.MonthlyFeeAmount != nil {
		v := *student.MonthlyFeeAmount
		prevFee = &v
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.BadgeColor != nil {
		updates["badge_color"] = *body.BadgeColor
	}
	if body.BadgeDescription != nil {
		updates["badge_description"] = *body.BadgeDescription
	}
	if body.BirthDate != nil {
		t, err := dto.ParseDate(body.BirthDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data de nascimento inválida (use YYYY-MM-DD)")
		}
		updates["birth_date"] = t
	}
	if body.Address != nil {
		updates["address"] = *body.Address
	}
	if body.EmergencyContact != nil {
		updates["emergency_contact"] = *body.EmergencyContact
	}
	if body.EmergencyPhone != nil {
		updates["emergency_phone"] = *body.EmergencyPhone
	}
	if body.MedicalInfo != nil {
		updates["medical_info"] = *body.MedicalInfo
	}
	if body.MonthlyFeeType != nil {
		updates["monthly_fee_type"] = *body.MonthlyFeeType
	}
	if body.MonthlyFeeAmount != nil {
		updates["monthly_fee_amount"] = *body.MonthlyFeeAmount
	}
	if body.PaymentDay != nil {
		updates["payment_day"] = *body.PaymentDay
	}
	if body.DiscountPercentage != nil {
		updates["discount_percentage"] = *body.DiscountPercentage
	}
	if body.Notes != nil {
		updates["notes"] = *body.Notes
	}
	if body.Documents != nil {
		raw, err := sonic.Marshal(body.Documents)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Documentos inválidos")
		}
		updates["documents"] = datatypes.JSON(raw)
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}
	if body.EnrollmentDate != nil {
		t, err := dto.ParseDate(body.EnrollmentDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data de matrícula inválida (use YYYY-MM-DD)")
		}
		updates["enrollment_date"] = t
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Nada para atualizar", dto.ToStudentResponse(student))
	}

	if err := ctl.DB.Model(&student).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update student %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar aluno")
	}

	msg := "Aluno atualizado com sucesso!"
	if body.MonthlyFeeAmount != nil && invoiceService.ShouldSyncPendingInvoices(prevFee, *body.MonthlyFeeAmount) {
		synced, err := invoiceService.SyncPendingInvoiceAmounts(ctl.DB, userID, student.ID, *body.MonthlyFeeAmount)
		if err != nil {
			log.Printf("⚠️ fee sync failed for student %s: %v", student.ID, err)
			msg = "Aluno atualizado, mas houve um aviso ao sincronizar as faturas pendentes"
		} else if synced > 0 {
			msg = "Aluno e faturas pendentes atualizados!"
		}
	}

	if err := ctl.DB.First(&student, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar aluno")
	}
	return helper.JsonUpdated(c, msg, dto.ToStudentResponse(student))
}

/* =========================================================
   DELETE - DELETE /api/u/students/:id
   ========================================================= */

func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.Delete(&studentModel.Student{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir aluno")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}

	return helper.JsonDeleted(c, "Aluno excluído com sucesso!", fiber.Map{"id": id})
}
