// file: internals/features/lessons/controller/private_lesson_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"teep_backend/internals/features/lessons/dto"
	lessonModel "teep_backend/internals/features/lessons/model"
	studentModel "teep_backend/internals/features/students/model"
	helper "teep_backend/internals/helpers"
)

var validate = validator.New()

type PrivateLessonController struct {
	DB *gorm.DB
}

func NewPrivateLessonController(db *gorm.DB) *PrivateLessonController {
	return &PrivateLessonController{DB: db}
}

/* =========================================================
   LIST - GET /api/u/lessons?from=&to=&student_id=
   ========================================================= */

func (ctl *PrivateLessonController) ListLessons(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.Model(&lessonModel.PrivateLesson{}).Where("user_id = ?", userID)

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parâmetro 'from' inválido (use YYYY-MM-DD)")
		}
		tx = tx.Where("date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parâmetro 'to' inválido (use YYYY-MM-DD)")
		}
		tx = tx.Where("date <= ?", t)
	}
	if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parâmetro 'student_id' inválido")
		}
		tx = tx.Where("student_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar aulas")
	}

	var lessons []lessonModel.PrivateLesson
	if err := tx.
		Order("date ASC, time ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar aulas")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", dto.ToPrivateLessonResponses(lessons), pagination)
}

/* =========================================================
   CREATE - POST /api/u/lessons
   ========================================================= */

func (ctl *PrivateLessonController) CreateLesson(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var body dto.PrivateLessonCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if body.StudentID == nil && body.StudentName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe o aluno ou o nome")
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use YYYY-MM-DD)")
	}

	name := body.StudentName
	if body.StudentID != nil {
		var student studentModel.Student
		if err := ctl.DB.First(&student, "id = ? AND user_id = ?", *body.StudentID, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
		}
		name = student.Name
	}

	lesson := lessonModel.PrivateLesson{
		UserID:      userID,
		StudentID:   body.StudentID,
		StudentName: name,
		Date:        date,
		Time:        body.Time,
		Notes:       body.Notes,
	}
	if body.Type != "" {
		lesson.Type = lessonModel.LessonType(body.Type)
	} else {
		lesson.Type = lessonModel.LessonRegular
	}

	if err := ctl.DB.Create(&lesson).Error; err != nil {
		log.Printf("[ERROR] create lesson: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao agendar aula")
	}

	return helper.JsonCreated(c, "Aula agendada com sucesso!", dto.ToPrivateLessonResponse(lesson))
}

/* =========================================================
   UPDATE - PUT /api/u/lessons/:id
   ========================================================= */

func (ctl *PrivateLessonController) UpdateLesson(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var lesson lessonModel.PrivateLesson
	if err := ctl.DB.First(&lesson, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Aula não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aula")
	}

	var body dto.PrivateLessonUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	updates := map[string]interface{}{}
	if body.StudentID != nil {
		var student studentModel.Student
		if err := ctl.DB.First(&student, "id = ? AND user_id = ?", *body.StudentID, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
		}
		updates["student_id"] = *body.StudentID
		updates["student_name"] = student.Name
	} else if body.StudentName != nil {
		updates["student_name"] = *body.StudentName
	}
	if body.Date != nil {
		t, err := time.Parse("2006-01-02", *body.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use YYYY-MM-DD)")
		}
		updates["date"] = t
	}
	if body.Time != nil {
		updates["time"] = *body.Time
	}
	if body.Type != nil {
		updates["type"] = *body.Type
	}
	if body.Notes != nil {
		updates["notes"] = *body.Notes
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Nada para atualizar", dto.ToPrivateLessonResponse(lesson))
	}

	if err := ctl.DB.Model(&lesson).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update lesson %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar aula")
	}

	if err := ctl.DB.First(&lesson, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar aula")
	}
	return helper.JsonUpdated(c, "Aula atualizada com sucesso!", dto.ToPrivateLessonResponse(lesson))
}

/* =========================================================
   DELETE - DELETE /api/u/lessons/:id
   ========================================================= */

func (ctl *PrivateLessonController) DeleteLesson(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.Delete(&lessonModel.PrivateLesson{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir aula")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aula não encontrada")
	}

	return helper.JsonDeleted(c, "Aula excluída com sucesso!", fiber.Map{"id": id})
}
