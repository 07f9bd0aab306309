package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Системные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"

	// Регистрация
	CodeMissingFields    ErrorCode = "MISSING_FIELDS"
	CodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	CodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserType  ErrorCode = "INVALID_USER_TYPE"
	CodeInvalidFollowers ErrorCode = "INVALID_FOLLOWER_COUNT"

	// Аутентификация
	CodeAccountNotFound    ErrorCode = "ACCOUNT_NOT_FOUND"
	CodeIncorrectPassword  ErrorCode = "INCORRECT_PASSWORD"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	// Почта
	CodeMailNotConfigured ErrorCode = "MAIL_NOT_CONFIGURED"
	CodeMailAuthFailed    ErrorCode = "MAIL_AUTH_FAILED"
	CodeMailDelivery      ErrorCode = "MAIL_DELIVERY_FAILED"
)
