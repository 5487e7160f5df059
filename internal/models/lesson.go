package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lesson struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SchoolID string `gorm:"type:uuid;index;not null" json:"school_id"`
	School   School `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Stored in UTC; compared in UTC everywhere.
	StartAt     time.Time `gorm:"index;not null" json:"start_at"`
	DurationMin int       `gorm:"not null;default:90" json:"duration_min"`
	Difficulty  string    `gorm:"size:20;not null" json:"difficulty"`
	Place       string    `gorm:"size:255;not null" json:"place"`
	Capacity    *int      `json:"capacity"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// EndAt is the exclusive end of the lesson interval.
func (l *Lesson) EndAt() time.Time {
	return l.StartAt.Add(time.Duration(l.DurationMin) * time.Minute)
}

// LessonCoach links a lesson to a coach. Rows have no independent
// lifecycle: assignments are replaced wholesale.
type LessonCoach struct {
	LessonID string `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	CoachID  string `gorm:"type:uuid;primaryKey" json:"coach_id"`

	CreatedAt time.Time `json:"created_at"`
}
