package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"inflou_backend/internal/logger"
	"inflou_backend/internal/middleware"
	"inflou_backend/internal/validator"
	"inflou_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindJSON читает JSON тело. При ошибке ответ уже отправлен.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleValidationError(c, err)
		return false
	}
	return true
}

// BindForm читает urlencoded или multipart форму.
// Ошибка возвращается вызывающему: формы отвечают редиректом, а не JSON.
func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindWith(obj, binding.Form); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind form", err, "path", c.Request.URL.Path)
		if middleware.IsBodyTooLarge(err) {
			return apperrors.ErrFileTooLarge.WithError(err)
		}
		return apperrors.NewBadRequestError("Invalid form submission.").WithError(err)
	}
	return nil
}

// HandleServiceError пишет JSON ответ для ошибки сервиса
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, publicError(c, err))
}

// publicError приводит ошибку к AppError и логирует внутренние детали
func publicError(c *gin.Context, err error) *apperrors.AppError {
	ctx := c.Request.Context()

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		if cause := appErr.Unwrap(); cause != nil {
			logger.CtxWithError(ctx, "Service error", cause, "code", appErr.Code, "path", c.Request.URL.Path)
		}
	} else {
		logger.CtxWarn(ctx, "Service error", "code", appErr.Code, "error", appErr.Message, "path", c.Request.URL.Path)
	}
	return appErr
}
