package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/httpresp"
	ucBooking "github.com/surfbook/surf-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	log *zap.Logger

	bookUC      *ucBooking.Book
	unbookUC    *ucBooking.Unbook
	attendeesUC *ucBooking.ListAttendees
}

func NewBookingHandler(
	log *zap.Logger,
	bookUC *ucBooking.Book,
	unbookUC *ucBooking.Unbook,
	attendeesUC *ucBooking.ListAttendees,
) *BookingHandler {
	return &BookingHandler{
		log:         log,
		bookUC:      bookUC,
		unbookUC:    unbookUC,
		attendeesUC: attendeesUC,
	}
}

// --------- Requests ---------

type BookRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required"`
}

type UnbookRequest struct {
	Email string `json:"email" binding:"required"`
}

// --------- Handlers ---------

// POST /api/lessons/:id/book
func (h *BookingHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_email", "Missing email.")
		return
	}

	out, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookInput{
		LessonID: c.Param("id"),
		Email:    req.Email,
		Name:     req.Name,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

// DELETE /api/lessons/:id/book
func (h *BookingHandler) Unbook(c *gin.Context) {
	var req UnbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_email", "Missing email.")
		return
	}

	err := h.unbookUC.Execute(c.Request.Context(), ucBooking.UnbookInput{
		LessonID: c.Param("id"),
		Email:    req.Email,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"lesson_id": c.Param("id"), "cancelled": true})
}

// GET /api/lessons/:id/attendees
func (h *BookingHandler) ListAttendees(c *gin.Context) {
	attendees, err := h.attendeesUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, attendees)
}
