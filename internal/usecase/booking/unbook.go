package booking

import (
	"context"
	"time"

	"github.com/surfbook/surf-scheduler/internal/audit"
	domain "github.com/surfbook/surf-scheduler/internal/domain/schedule"
	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/validators"
)

type UnbookInput struct {
	LessonID string
	Email    string
}

type Unbook struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUnbook(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Unbook {
	return &Unbook{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels the student's active booking. "Not booked" is an
// expected outcome surfaced as not-found, never a server fault.
func (uc *Unbook) Execute(ctx context.Context, in UnbookInput) error {
	if !validators.IsEmailValid(in.Email) {
		return httperr.ErrValidation("invalid_email", "Missing or malformed email.")
	}

	lesson, err := uc.repo.GetLesson(ctx, in.LessonID)
	if err != nil {
		return err
	}

	student, err := uc.repo.FindStudent(ctx, lesson.SchoolID, in.Email)
	if err != nil {
		return err
	}

	if err := uc.repo.CancelBooking(ctx, lesson.ID, student.ID, time.Now().UTC()); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SchoolID: lesson.SchoolID,
		Action:   "booking_cancelled",
		Entity:   "lesson",
		EntityID: &lesson.ID,
		Metadata: map[string]any{"student_id": student.ID},
	})

	return nil
}
