package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking rows are never hard-deleted; cancelling keeps the history.
// The unique (lesson_id, student_id) pair is what prevents duplicate
// active bookings under concurrent requests.
type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	LessonID string `gorm:"type:uuid;not null;uniqueIndex:uq_bookings_lesson_student" json:"lesson_id"`
	Lesson   Lesson `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StudentID string  `gorm:"type:uuid;not null;uniqueIndex:uq_bookings_lesson_student" json:"student_id"`
	Student   Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Status      string     `gorm:"size:20;not null;default:'booked'" json:"status"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
