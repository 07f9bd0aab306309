package services

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"inflou_backend/internal/email"
	"inflou_backend/internal/logger"
	"inflou_backend/internal/models"
	"inflou_backend/internal/repositories"
	"inflou_backend/internal/services/dto"
	"inflou_backend/internal/utils"
	"inflou_backend/internal/validator"
	"inflou_backend/pkg/apperrors"
)

const contactSubjectPrefix = "Contact Form Submission: "

type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest, meta models.ContactMeta) error
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
	provider    email.Provider
	templates   email.TemplateRenderer
	validator   *validator.Validator
	recipient   string
	baseURL     string
}

func NewContactService(
	contactRepo repositories.ContactRepository,
	provider email.Provider,
	templates email.TemplateRenderer,
	v *validator.Validator,
	recipient string,
	baseURL string,
) ContactService {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		provider:    provider,
		templates:   templates,
		validator:   v,
		recipient:   recipient,
		baseURL:     baseURL,
	}
}

// Submit отправляет письмо владельцу сайта и сохраняет копию.
// Если письмо ушло, а запись не сохранилась, пользователь все равно получает успех.
func (s *ContactServiceImpl) Submit(ctx context.Context, req *dto.ContactRequest, meta models.ContactMeta) error {
	cleaned := dto.ContactRequest{
		Name:    utils.CleanLine(req.Name),
		Email:   utils.CleanLine(req.Email),
		Subject: utils.CleanLine(req.Subject),
		Message: utils.CleanText(req.Message),
	}
	if err := s.validator.Validate(&cleaned); err != nil {
		return violation(err,
			ruleError{"required", apperrors.ErrContactFieldsRequired},
			ruleError{"basic-email", apperrors.ErrInvalidEmail},
			ruleError{"min", apperrors.ErrMessageTooShort},
		)
	}
	name, addr, subject, message := cleaned.Name, cleaned.Email, cleaned.Subject, cleaned.Message

	if err := s.provider.Validate(); err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			return apperrors.ErrMailNotConfigured
		}
		return apperrors.ErrMailNotConfigured.WithError(err)
	}

	data := email.TemplateData{
		"Name":    name,
		"Email":   addr,
		"Subject": subject,
		"Message": message,
		"BaseURL": s.baseURL,
	}

	htmlBody, err := s.templates.Render(email.TemplateContactForm, data)
	if err != nil {
		return apperrors.InternalError(err)
	}
	textBody, err := s.templates.RenderText(email.TemplateContactForm, data)
	if err != nil {
		return apperrors.InternalError(err)
	}

	err = s.provider.Send(ctx, &email.Email{
		To:       []string{s.recipient},
		ReplyTo:  addr,
		Subject:  contactSubjectPrefix + subject,
		Body:     textBody,
		HTMLBody: htmlBody,
	})
	if err != nil {
		logger.CtxWithError(ctx, "contact mail not sent", err)
		switch {
		case errors.Is(err, email.ErrAuth):
			return apperrors.ErrMailAuthFailed.WithError(err)
		case errors.Is(err, email.ErrNotConfigured):
			return apperrors.ErrMailNotConfigured
		default:
			return apperrors.ErrMailDelivery.WithError(err)
		}
	}

	record := &models.ContactMessage{
		Name:    name,
		Email:   addr,
		Subject: subject,
		Message: message,
	}
	if raw, err := json.Marshal(meta); err == nil {
		record.Meta = datatypes.JSON(raw)
	}

	if err := s.contactRepo.Create(context.WithoutCancel(ctx), record); err != nil {
		logger.CtxWithError(ctx, "contact message sent but not stored", err, "email", addr)
		return nil
	}

	logger.CtxInfo(ctx, "contact message stored", "contact_id", record.ID)
	return nil
}
