package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContactMessage - запись об отправленной форме обратной связи
type ContactMessage struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"not null" json:"email"`
	Subject   string         `gorm:"not null" json:"subject"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Meta      datatypes.JSON `gorm:"type:jsonb" json:"meta,omitempty" swaggerignore:"true"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// ContactMeta - служебные данные запроса, сохраняемые в Meta
type ContactMeta struct {
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
