package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/httpresp"
	"github.com/surfbook/surf-scheduler/internal/models"
)

type CoachHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCoachHandler(db *gorm.DB, log *zap.Logger) *CoachHandler {
	return &CoachHandler{db: db, log: log}
}

// --------- Requests ---------

type CreateCoachRequest struct {
	School string  `json:"school" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	Email  *string `json:"email"`
}

// --------- Handlers ---------

func (h *CoachHandler) List(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("school"))
	if ref == "" {
		httperr.BadRequest(c, "missing_school", "Missing school (slug or id).")
		return
	}

	school, err := findSchoolByRef(h.db, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "school_not_found", "School not found.")
			return
		}
		h.log.Error("failed to resolve school", zap.Error(err))
		httperr.Internal(c, "failed_to_resolve_school", "Server error.")
		return
	}

	var coaches []models.Coach
	if err := h.db.
		Where("school_id = ?", school.ID).
		Order("created_at DESC").
		Find(&coaches).Error; err != nil {
		h.log.Error("failed to list coaches", zap.Error(err))
		httperr.Internal(c, "failed_to_list_coaches", "Server error.")
		return
	}

	httpresp.List(c, coaches)
}

func (h *CoachHandler) Create(c *gin.Context) {
	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing school or name.")
		return
	}

	school, err := findSchoolByRef(h.db, strings.TrimSpace(req.School))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "school_not_found", "School not found.")
			return
		}
		h.log.Error("failed to resolve school", zap.Error(err))
		httperr.Internal(c, "failed_to_resolve_school", "Server error.")
		return
	}

	coach := models.Coach{
		SchoolID: school.ID,
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
	}

	if err := h.db.Create(&coach).Error; err != nil {
		h.log.Error("failed to create coach", zap.Error(err))
		httperr.Internal(c, "failed_to_create_coach", "Server error.")
		return
	}

	httpresp.Created(c, coach)
}

func (h *CoachHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Coach{})
	if res.Error != nil {
		h.log.Error("failed to delete coach", zap.Error(res.Error))
		httperr.Internal(c, "failed_to_delete_coach", "Server error.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "coach_not_found", "Coach not found.")
		return
	}

	httpresp.OK(c, gin.H{"id": id, "deleted": true})
}
