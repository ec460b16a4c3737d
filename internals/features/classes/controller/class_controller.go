// file: internals/features/classes/controller/class_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"teep_backend/internals/features/classes/dto"
	classModel "teep_backend/internals/features/classes/model"
	studentModel "teep_backend/internals/features/students/model"
	helper "teep_backend/internals/helpers"
)

var validate = validator.New()

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* =========================================================
   LIST - GET /api/u/classes
   ========================================================= */

func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.Model(&classModel.Class{}).Where("user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar turmas")
	}

	var classes []classModel.Class
	if err := tx.
		Order("start_time ASC, name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar turmas")
	}

	resp := dto.ToClassResponses(classes)

	// one roster query for the whole page
	if len(classes) > 0 {
		ids := make([]uuid.UUID, 0, len(classes))
		for _, cl := range classes {
			ids = append(ids, cl.ID)
		}
		var roster []classModel.ClassStudent
		if err := ctl.DB.
			Where("class_id IN ?", ids).
			Order("student_name ASC").
			Find(&roster).Error; err == nil {
			byClass := map[uuid.UUID][]dto.RosterEntryResponse{}
			for _, r := range roster {
				byClass[r.ClassID] = append(byClass[r.ClassID], dto.ToRosterEntryResponse(r))
			}
			for i := range resp {
				resp[i].Roster = byClass[resp[i].ID]
			}
		}
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", resp, pagination)
}

/* =========================================================
   DETAIL - GET /api/u/classes/:id
   ========================================================= */

func (ctl *ClassController) GetClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var class classModel.Class
	if err := ctl.DB.First(&class, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar turma")
	}

	resp := dto.ToClassResponse(class)

	var roster []classModel.ClassStudent
	if err := ctl.DB.
		Where("class_id = ?", id).
		Order("student_name ASC").
		Find(&roster).Error; err == nil {
		resp.Roster = dto.ToRosterEntryResponses(roster)
	}

	return helper.JsonOK(c, "OK", resp)
}

/* =========================================================
   CREATE - POST /api/u/classes
   ========================================================= */

func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var body dto.ClassCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	class := classModel.Class{
		UserID:      userID,
		Name:        body.Name,
		Description: body.Description,
		Days:        pq.StringArray(body.Days),
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		MaxStudents: body.MaxStudents,
		Level:       body.Level,
		Location:    body.Location,
	}
	if class.MaxStudents == 0 {
		class.MaxStudents = 4
	}

	if err := ctl.DB.Create(&class).Error; err != nil {
		log.Printf("[ERROR] create class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar turma")
	}

	return helper.JsonCreated(c, "Turma criada com sucesso!", dto.ToClassResponse(class))
}

/* =========================================================
   UPDATE - PUT /api/u/classes/:id
   ========================================================= */

func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var class classModel.Class
	if err := ctl.DB.First(&class, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar turma")
	}

	var body dto.ClassUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Days != nil {
		updates["days"] = pq.StringArray(body.Days)
	}
	if body.StartTime != nil {
		updates["start_time"] = *body.StartTime
	}
	if body.EndTime != nil {
		updates["end_time"] = *body.EndTime
	}
	if body.MaxStudents != nil {
		updates["max_students"] = *body.MaxStudents
	}
	if body.Level != nil {
		updates["level"] = *body.Level
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Nada para atualizar", dto.ToClassResponse(class))
	}

	if err := ctl.DB.Model(&class).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update class %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar turma")
	}

	if err := ctl.DB.First(&class, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar turma")
	}
	return helper.JsonUpdated(c, "Turma atualizada com sucesso!", dto.ToClassResponse(class))
}

/* =========================================================
   DELETE - DELETE /api/u/classes/:id
   Roster rows go with the class.
   ========================================================= */

func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&classModel.ClassStudent{}, "class_id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		res := tx.Delete(&classModel.Class{}, "id = ? AND user_id = ?", id, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		log.Printf("[ERROR] delete class %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir turma")
	}

	return helper.JsonDeleted(c, "Turma excluída com sucesso!", fiber.Map{"id": id})
}

/* =========================================================
   ROSTER - POST /api/u/classes/:id/students
            DELETE /api/u/classes/:id/students/:entryId
   ========================================================= */

func (ctl *ClassController) AddStudentToClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var body dto.RosterAddDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if body.StudentID == nil && body.StudentName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe o aluno ou o nome")
	}

	var class classModel.Class
	if err := ctl.DB.First(&class, "id = ? AND user_id = ?", classID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar turma")
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

		var dup int64
		ctl.DB.Model(&classModel.ClassStudent{}).
			Where("class_id = ? AND student_id = ?", classID, *body.StudentID).
			Count(&dup)
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Aluno já está nesta turma")
		}
	}

	var count int64
	if err := ctl.DB.Model(&classModel.ClassStudent{}).
		Where("class_id = ?", classID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar vagas")
	}
	if int(count) >= class.MaxStudents {
		return helper.JsonError(c, fiber.StatusConflict, "Turma lotada")
	}

	entry := classModel.ClassStudent{
		UserID:      userID,
		ClassID:     classID,
		StudentID:   body.StudentID,
		StudentName: name,
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] add student to class %s: %v", classID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao adicionar aluno à turma")
	}

	return helper.JsonCreated(c, "Aluno adicionado à turma!", dto.ToRosterEntryResponse(entry))
}

func (ctl *ClassController) RemoveStudentFromClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	entryID, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.Delete(&classModel.ClassStudent{}, "id = ? AND class_id = ? AND user_id = ?", entryID, classID, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover aluno da turma")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não está nesta turma")
	}

	return helper.JsonDeleted(c, "Aluno removido da turma!", fiber.Map{"id": entryID})
}
