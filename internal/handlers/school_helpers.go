package handlers

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/surfbook/surf-scheduler/internal/models"
)

// findSchoolByRef resolves a school by slug (preferred) or uuid.
// Soft-deleted schools are invisible.
func findSchoolByRef(db *gorm.DB, ref string) (*models.School, error) {
	var school models.School

	if _, err := uuid.Parse(ref); err == nil {
		if err := db.Where("id = ?", ref).First(&school).Error; err == nil {
			return &school, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := db.Where("slug = ?", ref).First(&school).Error; err != nil {
		return nil, err
	}
	return &school, nil
}
