// internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "teep_backend/internals/features/users/auth/model"
	profileModel "teep_backend/internals/features/users/profile/model"
	helper "teep_backend/internals/helpers"
)

var validate = validator.New()

const confirmationTTL = 48 * time.Hour

// ========================== REGISTER ==========================
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.UserName = strings.TrimSpace(input.UserName)

	if err := validate.Struct(input); err != nil {
		fieldErrors := map[string][]string{}
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
			}
		}
		return helper.JsonValidationError(c, fieldErrors)
	}
	if CalculatePasswordStrength(input.Password) < 2 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Senha muito fraca. Use pelo menos 8 caracteres ou adicione números e maiúsculas.")
	}

	var count int64
	if err := db.Model(&authModel.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao verificar email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Este email já está cadastrado")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da senha")
	}

	user := authModel.User{
		UserName: input.UserName,
		Email:    input.Email,
		Password: hash,
		IsActive: true,
	}

	confirmToken := randToken(32)

	// user + empty profile + confirmation token in one transaction
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := tx.Create(&profileModel.UserProfile{
			UserID:   user.ID,
			FullName: input.UserName,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&authModel.EmailConfirmation{
			UserID:    user.ID,
			Token:     confirmToken,
			ExpiresAt: time.Now().Add(confirmationTTL),
		}).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar conta")
	}

	if err := SendConfirmationEmail(user.Email, user.UserName, confirmToken); err != nil {
		// account exists; the user can request a resend later
		log.Printf("[MAIL] confirmation email failed for %s: %v", user.Email, err)
	}

	return helper.JsonCreated(c, "Conta criada com sucesso! Verifique seu email para confirmar sua conta.", fiber.Map{
		"user_id": user.ID,
	})
}

// ========================== CONFIRM EMAIL ==========================
// GET /api/auth/confirm?token=
func ConfirmEmail(db *gorm.DB, c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token ausente")
	}

	var conf authModel.EmailConfirmation
	if err := db.Where("token = ?", token).First(&conf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Token de confirmação inválido")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao verificar token")
	}
	if conf.ConfirmedAt != nil {
		return helper.JsonOK(c, "Email já confirmado", nil)
	}
	if time.Now().After(conf.ExpiresAt) {
		return helper.JsonError(c, fiber.StatusGone, "Token de confirmação expirado")
	}

	now := time.Now()
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&authModel.EmailConfirmation{}).
			Where("id = ?", conf.ID).
			Update("confirmed_at", now).Error; err != nil {
			return err
		}
		return tx.Model(&authModel.User{}).
			Where("id = ?", conf.UserID).
			Update("email_confirmed_at", now).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao confirmar email")
	}

	return helper.JsonOK(c, "Email confirmado com sucesso! Você já pode fazer login.", nil)
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	var user authModel.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao fazer login")
	}

	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Sua conta está desativada")
	}
	if user.EmailConfirmedAt == nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Por favor, confirme seu email antes de fazer login. Verifique sua caixa de entrada.")
	}

	access, err := IssueAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir token")
	}
	refresh, err := IssueRefreshToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir token")
	}

	setAccessCookie(c, access)
	setRefreshCookie(c, refresh)

	return helper.JsonOK(c, "Login realizado com sucesso!", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	token := ""
	if fields := strings.Fields(auth); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		token = fields[1]
	}
	if token == "" {
		token = c.Cookies("access_token")
	}

	if token != "" {
		entry := authModel.TokenBlacklist{
			Token:     token,
			ExpiredAt: time.Now().Add(accessTokenTTL),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("[AUTH] blacklist insert failed: %v", err)
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.JsonOK(c, "Logout realizado com sucesso", nil)
}

// ========================== STRENGTH (signup form) ==========================
// GET /api/auth/password-strength?password=
func PasswordStrength(c *fiber.Ctx) error {
	password := c.Query("password")
	score := CalculatePasswordStrength(password)
	return helper.JsonOK(c, "ok", fiber.Map{
		"score": score,
		"label": PasswordStrengthLabel(score),
	})
}

func randToken(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
