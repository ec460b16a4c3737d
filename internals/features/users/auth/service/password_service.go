package service

import (
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "teep_backend/internals/features/users/auth/model"
	helper "teep_backend/internals/helpers"
)

// ========================== HASHING ==========================

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// ========================== STRENGTH ==========================

// CalculatePasswordStrength scores 0..5, one point per rule:
// len>=6, len>=8, has uppercase, has digit, has symbol.
func CalculatePasswordStrength(password string) int {
	strength := 0
	if len(password) >= 6 {
		strength++
	}
	if len(password) >= 8 {
		strength++
	}
	hasUpper, hasDigit, hasSymbol := false, false, false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}
	if hasUpper {
		strength++
	}
	if hasDigit {
		strength++
	}
	if hasSymbol {
		strength++
	}
	return strength
}

// PasswordStrengthLabel mirrors the signup form wording.
func PasswordStrengthLabel(strength int) string {
	switch strength {
	case 0, 1:
		return "Muito fraca"
	case 2:
		return "Fraca"
	case 3:
		return "Média"
	case 4:
		return "Forte"
	case 5:
		return "Muito forte"
	default:
		return ""
	}
}

// ========================== CHANGE PASSWORD ==========================
// POST /api/u/auth/change-password
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}

	v := c.Locals("user_id")
	userIDStr, ok := v.(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	if len(input.NewPassword) < 6 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "A senha deve ter pelo menos 6 caracteres")
	}

	var user authModel.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}

	if err := CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Senha atual incorreta")
	}

	newHash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da senha")
	}

	if err := db.Model(&authModel.User{}).Where("id = ?", userID).Update("password", newHash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar a senha")
	}

	return helper.JsonUpdated(c, "Senha alterada com sucesso", nil)
}
