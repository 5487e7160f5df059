package booking

import (
	"context"

	"github.com/surfbook/surf-scheduler/internal/audit"
	domain "github.com/surfbook/surf-scheduler/internal/domain/schedule"
	"github.com/surfbook/surf-scheduler/internal/dto"
	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	LessonID string
	Email    string
	Name     string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		repo:  repo,
		audit: audit,
	}
}

// Execute books a lesson for a student, creating the student record on
// first contact. Booking an already-booked lesson is a silent no-op.
func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*dto.BookingDTO, error) {

	if !validators.IsEmailValid(in.Email) {
		return nil, httperr.ErrValidation("invalid_email", "Missing or malformed email.")
	}

	lesson, err := uc.repo.GetLesson(ctx, in.LessonID)
	if err != nil {
		return nil, err
	}

	student, err := uc.repo.UpsertStudent(ctx, lesson.SchoolID, in.Email, in.Name)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpsertBooking(ctx, lesson.ID, student.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SchoolID: lesson.SchoolID,
		Action:   "booking_created",
		Entity:   "lesson",
		EntityID: &lesson.ID,
		Metadata: map[string]any{"student_id": student.ID},
	})

	return uc.bookingState(ctx, lesson.ID, lesson.Capacity)
}

func (uc *Book) bookingState(
	ctx context.Context,
	lessonID string,
	capacity *int,
) (*dto.BookingDTO, error) {

	counts, err := uc.repo.ActiveBookingCounts(ctx, []string{lessonID})
	if err != nil {
		return nil, err
	}

	out := &dto.BookingDTO{
		LessonID:    lessonID,
		Status:      string(domain.StatusBooked),
		BookedCount: counts[lessonID],
	}

	if capacity != nil {
		left := *capacity - out.BookedCount
		if left < 0 {
			left = 0
		}
		out.SpotsLeft = &left
	}

	return out, nil
}
