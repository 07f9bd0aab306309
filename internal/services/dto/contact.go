package dto

// ContactRequest - форма обратной связи
type ContactRequest struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,basic-email"`
	Subject string `form:"subject" validate:"required"`
	Message string `form:"message" validate:"required,min=2"`
}

// MessageResponse - {success, message} для JSON эндпоинтов
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
