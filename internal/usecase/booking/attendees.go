package booking

import (
	"context"

	domain "github.com/surfbook/surf-scheduler/internal/domain/schedule"
)

type ListAttendees struct {
	repo domain.Repository
}

func NewListAttendees(repo domain.Repository) *ListAttendees {
	return &ListAttendees{repo: repo}
}

// Execute returns the active attendee list for a lesson; cancelled
// bookings are excluded.
func (uc *ListAttendees) Execute(
	ctx context.Context,
	lessonID string,
) ([]domain.Attendee, error) {

	lesson, err := uc.repo.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	attendees, err := uc.repo.ListAttendees(ctx, lesson.ID)
	if err != nil {
		return nil, err
	}
	if attendees == nil {
		attendees = []domain.Attendee{}
	}
	return attendees, nil
}
