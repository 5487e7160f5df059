package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/httpresp"
	ucLesson "github.com/surfbook/surf-scheduler/internal/usecase/lesson"
)

// ======================================================
// HANDLER
// ======================================================

type LessonHandler struct {
	log *zap.Logger

	createUC    *ucLesson.CreateLesson
	listUC      *ucLesson.ListLessons
	deleteUC    *ucLesson.DeleteLesson
	coachesUC   *ucLesson.ReplaceCoaches
	conflictsUC *ucLesson.CheckConflicts
}

func NewLessonHandler(
	log *zap.Logger,
	createUC *ucLesson.CreateLesson,
	listUC *ucLesson.ListLessons,
	deleteUC *ucLesson.DeleteLesson,
	coachesUC *ucLesson.ReplaceCoaches,
	conflictsUC *ucLesson.CheckConflicts,
) *LessonHandler {
	return &LessonHandler{
		log:         log,
		createUC:    createUC,
		listUC:      listUC,
		deleteUC:    deleteUC,
		coachesUC:   coachesUC,
		conflictsUC: conflictsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateLessonRequest struct {
	School      string   `json:"school" binding:"required"`
	StartAt     string   `json:"start_at" binding:"required"`
	DurationMin int      `json:"duration_min"`
	Difficulty  string   `json:"difficulty" binding:"required"`
	Place       string   `json:"place" binding:"required"`
	Capacity    *int     `json:"capacity"`
	CoachIDs    []string `json:"coach_ids"`
}

type ReplaceCoachesRequest struct {
	CoachIDs []string `json:"coach_ids"`
}

// ======================================================
// HANDLERS
// ======================================================

// GET /api/lessons?school=<slug|id>&from=&to=&difficulty=
func (h *LessonHandler) List(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("school"))
	if ref == "" {
		httperr.BadRequest(c, "missing_school", "Missing school (slug or id).")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	out, err := h.listUC.Execute(c.Request.Context(), ucLesson.ListLessonsInput{
		SchoolRef:  ref,
		From:       c.Query("from"),
		To:         c.Query("to"),
		Difficulty: c.Query("difficulty"),
		Limit:      limit,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}

// POST /api/lessons
func (h *LessonHandler) Create(c *gin.Context) {
	var req CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing school, start_at, difficulty or place.")
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), ucLesson.CreateLessonInput{
		SchoolRef:   strings.TrimSpace(req.School),
		StartAt:     req.StartAt,
		DurationMin: req.DurationMin,
		Difficulty:  req.Difficulty,
		Place:       req.Place,
		Capacity:    req.Capacity,
		CoachIDs:    req.CoachIDs,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, out)
}

// DELETE /api/lessons/:id
func (h *LessonHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"id": c.Param("id"), "deleted": true})
}

// PUT /api/lessons/:id/coaches
func (h *LessonHandler) ReplaceCoaches(c *gin.Context) {
	var req ReplaceCoachesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CoachIDs == nil {
		httperr.BadRequest(c, "invalid_request", "coach_ids must be an array.")
		return
	}

	ids, err := h.coachesUC.Execute(c.Request.Context(), c.Param("id"), req.CoachIDs)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"lesson_id": c.Param("id"), "coach_ids": ids})
}

// GET /api/lessons/conflicts?school=&start_at=&duration_min=
func (h *LessonHandler) CheckConflicts(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("school"))
	if ref == "" {
		httperr.BadRequest(c, "missing_school", "Missing school (slug or id).")
		return
	}
	startAt := c.Query("start_at")
	if startAt == "" {
		httperr.BadRequest(c, "missing_start_at", "Missing start_at (ISO timestamp).")
		return
	}

	duration := 0
	if raw := c.Query("duration_min"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_duration", "duration_min must be a number.")
			return
		}
		duration = n
	}

	out, err := h.conflictsUC.Execute(c.Request.Context(), ucLesson.CheckConflictsInput{
		SchoolRef:   ref,
		StartAt:     startAt,
		DurationMin: duration,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}
