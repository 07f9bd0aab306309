package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inflou_backend/internal/logger"
	"inflou_backend/internal/models"
	"inflou_backend/internal/services"
	"inflou_backend/internal/services/dto"
)

const contactSuccessMessage = "Message sent successfully!"

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(rg gin.IRouter) {
	rg.POST("/contact", h.Submit)
}

// Submit godoc
// @Summary Отправка формы обратной связи
// @Description Отправляет письмо владельцу сайта и сохраняет сообщение
// @Tags contact
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Имя"
// @Param email formData string true "Email"
// @Param subject formData string true "Тема"
// @Param message formData string true "Сообщение, от 2 символов"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := h.BindForm(c, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	ctx := c.Request.Context()
	meta := models.ContactMeta{
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: logger.GetRequestID(ctx),
	}

	if err := h.contactService.Submit(ctx, &req, meta); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: contactSuccessMessage})
}

