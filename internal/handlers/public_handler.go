package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/httpresp"
	ucLesson "github.com/surfbook/surf-scheduler/internal/usecase/lesson"
)

// PublicHandler serves the unauthenticated student-facing listing.
type PublicHandler struct {
	log    *zap.Logger
	listUC *ucLesson.ListLessons
}

func NewPublicHandler(log *zap.Logger, listUC *ucLesson.ListLessons) *PublicHandler {
	return &PublicHandler{log: log, listUC: listUC}
}

// GET /api/public/lessons?school=<slug>&from=&to=&difficulty=
func (h *PublicHandler) ListLessons(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("school"))
	if ref == "" {
		httperr.BadRequest(c, "missing_school", "Missing school (slug).")
		return
	}

	out, err := h.listUC.Execute(c.Request.Context(), ucLesson.ListLessonsInput{
		SchoolRef:  ref,
		From:       c.Query("from"),
		To:         c.Query("to"),
		Difficulty: c.Query("difficulty"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}
