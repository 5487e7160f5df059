package lesson

import (
	"context"

	"github.com/surfbook/surf-scheduler/internal/audit"
	domain "github.com/surfbook/surf-scheduler/internal/domain/schedule"
)

type DeleteLesson struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteLesson(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteLesson {
	return &DeleteLesson{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-deletes the lesson. Bookings and coach links stay in
// place for history; listings hide them through the deleted_at filter.
func (uc *DeleteLesson) Execute(ctx context.Context, lessonID string) error {
	lesson, err := uc.repo.GetLesson(ctx, lessonID)
	if err != nil {
		return err
	}

	if err := uc.repo.SoftDeleteLesson(ctx, lesson.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SchoolID: lesson.SchoolID,
		Action:   "lesson_deleted",
		Entity:   "lesson",
		EntityID: &lesson.ID,
	})

	return nil
}
