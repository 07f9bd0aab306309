package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError содержит карту ошибок "поле" -> "сообщение".
// Tags хранит нарушенное правило каждого поля.
type ValidationError struct {
	Errors map[string]string
	Tags   map[string]string
}

// HasTag - нарушено ли правило tag хотя бы в одном поле
func (e *ValidationError) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator - обертка над go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New создает Validator с зарегистрированными правилами из rules.go.
func New() *Validator {
	v := validator.New()

	// Имена полей в ошибках берем из form/json тегов DTO
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate валидирует структуру. Ошибки правил возвращаются как *ValidationError.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string)
	tags := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = v.getErrorMessage(fe)
		tags[fe.Field()] = fe.Tag()
	}

	return &ValidationError{Errors: customErrors, Tags: tags}
}

// Var проверяет одно значение по тегу, например "basic-email"
func (v *Validator) Var(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// IsEmail - короткая проверка формы адреса
func (v *Validator) IsEmail(s string) bool {
	return v.Var(s, "required,basic-email") == nil
}

// IsUserType - brand или influencer
func (v *Validator) IsUserType(s string) bool {
	return v.Var(s, "required,user-type") == nil
}

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "basic-email", "email":
		return "Must be a valid email address"
	case "user-type":
		return "Must be one of: brand, influencer"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
