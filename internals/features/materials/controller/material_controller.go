// file: internals/features/materials/controller/material_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"teep_backend/internals/features/materials/dto"
	materialModel "teep_backend/internals/features/materials/model"
	helper "teep_backend/internals/helpers"
)

var validate = validator.New()

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

func (ctl *MaterialController) ListMaterials(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.Model(&materialModel.Material{}).Where("user_id = ?", userID)
	if q := c.Query("q"); q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar materiais")
	}

	var materials []materialModel.Material
	if err := tx.
		Order("name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar materiais")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", dto.ToMaterialResponses(materials), pagination)
}

func (ctl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var body dto.MaterialCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	material := materialModel.Material{
		UserID:   userID,
		Name:     body.Name,
		Quantity: body.Quantity,
		Price:    body.Price,
	}
	if body.PurchaseDate != nil && *body.PurchaseDate != "" {
		t, err := time.Parse("2006-01-02", *body.PurchaseDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data de compra inválida (use YYYY-MM-DD)")
		}
		material.PurchaseDate = &t
	}

	if err := ctl.DB.Create(&material).Error; err != nil {
		log.Printf("[ERROR] create material: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cadastrar material")
	}

	return helper.JsonCreated(c, "Material cadastrado com sucesso!", dto.ToMaterialResponse(material))
}

func (ctl *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var material materialModel.Material
	if err := ctl.DB.First(&material, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Material não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar material")
	}

	var body dto.MaterialUpdateDTO
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
	if body.Quantity != nil {
		updates["quantity"] = *body.Quantity
	}
	if body.Price != nil {
		updates["price"] = *body.Price
	}
	if body.PurchaseDate != nil {
		t, err := time.Parse("2006-01-02", *body.PurchaseDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data de compra inválida (use YYYY-MM-DD)")
		}
		updates["purchase_date"] = t
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Nada para atualizar", dto.ToMaterialResponse(material))
	}

	if err := ctl.DB.Model(&material).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update material %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar material")
	}

	if err := ctl.DB.First(&material, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar material")
	}
	return helper.JsonUpdated(c, "Material atualizado com sucesso!", dto.ToMaterialResponse(material))
}

func (ctl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.Delete(&materialModel.Material{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir material")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Material não encontrado")
	}

	return helper.JsonDeleted(c, "Material excluído com sucesso!", fiber.Map{"id": id})
}
