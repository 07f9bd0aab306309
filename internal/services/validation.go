package services

import (
	"errors"

	"inflou_backend/internal/validator"
	"inflou_backend/pkg/apperrors"
)

// ruleError - ошибка домена для нарушенного правила валидации
type ruleError struct {
	tag string
	err *apperrors.AppError
}

// violation возвращает ошибку первого по приоритету нарушенного правила.
// Порядок rules задает порядок сообщений, а не порядок полей в структуре.
func violation(err error, rules ...ruleError) error {
	var vErr *validator.ValidationError
	if !errors.As(err, &vErr) {
		return apperrors.InternalError(err)
	}
	for _, r := range rules {
		if vErr.HasTag(r.tag) {
			return r.err.WithDetails(vErr.Errors)
		}
	}
	return apperrors.ValidationError(vErr.Errors)
}
