package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"inflou_backend/internal/logger"
	"inflou_backend/internal/models"
)

// Форма адреса: что-то@что-то.что-то, без пробелов. Строже не проверяем.
var basicEmailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// registerCustomRules регистрирует кастомные правила в валидаторе.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			logger.Fatal("failed to register custom validation tag", "tag", tag, "error", err)
		}
	}

	mustRegister("basic-email", func(fl validator.FieldLevel) bool {
		return basicEmailRE.MatchString(fl.Field().String())
	})

	mustRegister("user-type", func(fl validator.FieldLevel) bool {
		return models.UserType(fl.Field().String()).Valid()
	})
}
