package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Coach struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SchoolID string `gorm:"type:uuid;index;not null" json:"school_id"`
	School   School `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Email *string `gorm:"size:120" json:"email"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Coach) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
