package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/surfbook/surf-scheduler/internal/audit"
	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/httpresp"
	infraRepo "github.com/surfbook/surf-scheduler/internal/infra/repository"
	"github.com/surfbook/surf-scheduler/internal/models"
	"github.com/surfbook/surf-scheduler/internal/slugify"
)

// ======================================================
// HANDLER
// ======================================================

type SchoolHandler struct {
	db    *gorm.DB
	log   *zap.Logger
	audit *audit.Dispatcher
}

func NewSchoolHandler(db *gorm.DB, log *zap.Logger, audit *audit.Dispatcher) *SchoolHandler {
	return &SchoolHandler{
		db:    db,
		log:   log,
		audit: audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSchoolRequest struct {
	Name         string  `json:"name" binding:"required"`
	ContactEmail *string `json:"contact_email"`
}

type UpdateSchoolRequest struct {
	Name         *string `json:"name,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *SchoolHandler) List(c *gin.Context) {
	var schools []models.School
	if err := h.db.
		Order("created_at DESC").
		Limit(100).
		Find(&schools).Error; err != nil {
		h.log.Error("failed to list schools", zap.Error(err))
		httperr.Internal(c, "failed_to_list_schools", "Server error.")
		return
	}

	httpresp.List(c, schools)
}

func (h *SchoolHandler) Create(c *gin.Context) {
	var req CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name is required.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "Name is required.")
		return
	}

	school := models.School{
		Name:         name,
		Slug:         slugify.Make(name),
		ContactEmail: req.ContactEmail,
	}

	if err := h.db.Create(&school).Error; err != nil {
		if infraRepo.IsUniqueViolation(err) {
			httperr.Conflict(c, "slug_exists", "Slug already exists.")
			return
		}
		h.log.Error("failed to create school", zap.Error(err))
		httperr.Internal(c, "failed_to_create_school", "Server error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SchoolID: school.ID,
		Action:   "school_created",
		Entity:   "school",
		EntityID: &school.ID,
	})

	httpresp.Created(c, school)
}

func (h *SchoolHandler) Get(c *gin.Context) {
	school, err := findSchoolByRef(h.db, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "school_not_found", "School not found.")
			return
		}
		h.log.Error("failed to get school", zap.Error(err))
		httperr.Internal(c, "failed_to_get_school", "Server error.")
		return
	}

	httpresp.OK(c, school)
}

func (h *SchoolHandler) Update(c *gin.Context) {
	school, err := findSchoolByRef(h.db, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "school_not_found", "School not found.")
			return
		}
		h.log.Error("failed to get school", zap.Error(err))
		httperr.Internal(c, "failed_to_get_school", "Server error.")
		return
	}

	var req UpdateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.BadRequest(c, "invalid_name", "Name cannot be empty.")
			return
		}
		updates["name"] = name
		// Explicit slug wins over the one derived from the new name.
		if req.Slug == nil {
			updates["slug"] = slugify.Make(name)
		}
	}
	if req.Slug != nil {
		updates["slug"] = slugify.Make(*req.Slug)
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "no_updates", "No updates provided.")
		return
	}

	if err := h.db.Model(school).Updates(updates).Error; err != nil {
		if infraRepo.IsUniqueViolation(err) {
			httperr.Conflict(c, "slug_exists", "Slug already exists.")
			return
		}
		h.log.Error("failed to update school", zap.Error(err))
		httperr.Internal(c, "failed_to_update_school", "Server error.")
		return
	}

	httpresp.OK(c, school)
}

func (h *SchoolHandler) Delete(c *gin.Context) {
	school, err := findSchoolByRef(h.db, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "school_not_found", "School not found.")
			return
		}
		h.log.Error("failed to get school", zap.Error(err))
		httperr.Internal(c, "failed_to_get_school", "Server error.")
		return
	}

	if err := h.db.Delete(school).Error; err != nil {
		h.log.Error("failed to delete school", zap.Error(err))
		httperr.Internal(c, "failed_to_delete_school", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"id": school.ID, "deleted": true})
}
