// file: internals/features/notes/controller/note_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"teep_backend/internals/features/notes/dto"
	noteModel "teep_backend/internals/features/notes/model"
	helper "teep_backend/internals/helpers"
)

var validate = validator.New()

type NoteController struct {
	DB *gorm.DB
}

func NewNoteController(db *gorm.DB) *NoteController {
	return &NoteController{DB: db}
}

func (ctl *NoteController) ListNotes(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.Model(&noteModel.Note{}).Where("user_id = ?", userID)
	if cat := c.Query("category"); cat != "" {
		tx = tx.Where("category = ?", cat)
	}
	if q := c.Query("q"); q != "" {
		tx = tx.Where("(title ILIKE ? OR content ILIKE ?)", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar anotações")
	}

	var notes []noteModel.Note
	if err := tx.
		Order("updated_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&notes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar anotações")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", dto.ToNoteResponses(notes), pagination)
}

func (ctl *NoteController) CreateNote(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var body dto.NoteCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	note := noteModel.Note{
		UserID:  userID,
		Title:   body.Title,
		Content: body.Content,
	}
	if body.Category != "" {
		note.Category = body.Category
	} else {
		note.Category = "general"
	}

	if err := ctl.DB.Create(&note).Error; err != nil {
		log.Printf("[ERROR] create note: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar anotação")
	}

	return helper.JsonCreated(c, "Anotação criada com sucesso!", dto.ToNoteResponse(note))
}

func (ctl *NoteController) UpdateNote(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var note noteModel.Note
	if err := ctl.DB.First(&note, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Anotação não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar anotação")
	}

	var body dto.NoteUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	updates := map[string]interface{}{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Content != nil {
		updates["content"] = *body.Content
	}
	if body.Category != nil {
		updates["category"] = *body.Category
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Nada para atualizar", dto.ToNoteResponse(note))
	}

	if err := ctl.DB.Model(&note).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update note %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar anotação")
	}

	if err := ctl.DB.First(&note, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar anotação")
	}
	return helper.JsonUpdated(c, "Anotação atualizada com sucesso!", dto.ToNoteResponse(note))
}

func (ctl *NoteController) DeleteNote(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.Delete(&noteModel.Note{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir anotação")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anotação não encontrada")
	}

	return helper.JsonDeleted(c, "Anotação excluída com sucesso!", fiber.Map{"id": id})
}
