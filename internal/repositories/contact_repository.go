package repositories

import (
	"context"

	"gorm.io/gorm"

	"inflou_backend/internal/models"
)

// ContactRepository - журнал сообщений с формы обратной связи, только запись
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
