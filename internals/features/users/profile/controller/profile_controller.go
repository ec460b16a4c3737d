// file: internals/features/users/profile/controller/profile_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "teep_backend/internals/features/users/profile/dto"
	profileModel "teep_backend/internals/features/users/profile/model"
	helper "teep_backend/internals/helpers"
	ossHelper "teep_backend/internals/helpers/oss"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

var validate = validator.New()

// =======================================================
// GET /api/u/profile
// =======================================================
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profile profileModel.UserProfile
	if err := pc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// profile rows are created at registration; self-heal older accounts
			profile = profileModel.UserProfile{UserID: userID}
			if err := pc.DB.Create(&profile).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar perfil")
			}
		} else {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar perfil")
		}
	}

	return helper.JsonOK(c, "ok", dto.ToUserProfileResponse(profile))
}

// =======================================================
// PUT /api/u/profile
// =======================================================
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.UserProfileUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var profile profileModel.UserProfile
	if err := pc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Perfil não encontrado")
	}

	updates := map[string]any{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if len(updates) > 0 {
		if err := pc.DB.Model(&profile).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar perfil")
		}
	}

	if err := pc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao recarregar perfil")
	}
	return helper.JsonUpdated(c, "Perfil atualizado com sucesso!", dto.ToUserProfileResponse(profile))
}

// =======================================================
// POST /api/u/profile/avatar  (multipart field: "file")
// =======================================================
func (pc *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum arquivo enviado")
	}

	svc, err := ossHelper.NewOSSServiceFromEnv("avatars")
	if err != nil {
		log.Printf("[OSS] init failed: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Armazenamento de arquivos indisponível")
	}

	url, err := svc.UploadAvatarWebP(c.UserContext(), userID, fh)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[OSS] avatar upload failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao enviar imagem")
	}

	var profile profileModel.UserProfile
	if err := pc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Perfil não encontrado")
	}

	oldURL := profile.AvatarURL
	if err := pc.DB.Model(&profile).Update("avatar_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar avatar")
	}

	// best-effort removal of the previous object
	if oldURL != "" {
		if key, err := ossHelper.ExtractKeyFromPublicURL(oldURL); err == nil {
			if err := svc.DeleteObject(c.UserContext(), key); err != nil {
				log.Printf("[OSS] old avatar delete failed: %v", err)
			}
		}
	}

	return helper.JsonUpdated(c, "Avatar atualizado com sucesso!", fiber.Map{
		"avatar_url": url,
	})
}
