package apperrors

import (
	"inflou_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - ответ об ошибке в JSON-эндпоинтах
type ErrorResponse struct {
	Success bool        `json:"success"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError пишет ошибку клиенту. Неизвестные ошибки становятся 500,
// текст исходной ошибки попадает только в лог.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	ctx := c.Request.Context()
	if appErr.HTTPCode >= 500 {
		if cause := appErr.Unwrap(); cause != nil {
			logger.CtxWithError(ctx, "request failed", cause, "code", appErr.Code, "path", c.FullPath())
		} else {
			logger.CtxError(ctx, "request failed", "code", appErr.Code, "path", c.FullPath())
		}
	} else {
		logger.CtxDebug(ctx, "request rejected", "code", appErr.Code, "message", appErr.Message)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// HandleValidationError - ошибки биндинга запроса
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, NewBadRequestError("Invalid request body").WithError(err))
}
