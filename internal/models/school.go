package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type School struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string  `gorm:"size:120;not null" json:"name"`
	Slug         string  `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	ContactEmail *string `gorm:"size:120" json:"contact_email"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *School) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
