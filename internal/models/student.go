package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student has no login; identity is the email, namespaced by school.
type Student struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SchoolID string `gorm:"type:uuid;not null;uniqueIndex:uq_students_school_email" json:"school_id"`
	School   School `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:120;not null;uniqueIndex:uq_students_school_email" json:"email"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
