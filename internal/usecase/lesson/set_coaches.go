package lesson

import (
	"context"

	"github.com/surfbook/surf-scheduler/internal/audit"
	domain "github.com/surfbook/surf-scheduler/internal/domain/schedule"
	"github.com/surfbook/surf-scheduler/internal/httperr"
)

type ReplaceCoaches struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReplaceCoaches(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReplaceCoaches {
	return &ReplaceCoaches{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces a lesson's coach assignment wholesale. All coaches
// must belong to the lesson's school.
func (uc *ReplaceCoaches) Execute(
	ctx context.Context,
	lessonID string,
	coachIDs []string,
) ([]string, error) {

	lesson, err := uc.repo.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	ids := uniq(coachIDs)
	if len(ids) > 0 {
		count, err := uc.repo.CountSchoolCoaches(ctx, lesson.SchoolID, ids)
		if err != nil {
			return nil, err
		}
		if count != int64(len(ids)) {
			return nil, httperr.ErrValidation("invalid_coach", "Invalid coach for this school.")
		}
	}

	if err := uc.repo.ReplaceLessonCoaches(ctx, lesson.ID, ids); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SchoolID: lesson.SchoolID,
		Action:   "coaches_replaced",
		Entity:   "lesson",
		EntityID: &lesson.ID,
		Metadata: map[string]any{"coach_ids": ids},
	})

	return ids, nil
}
