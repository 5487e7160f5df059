package lesson

import (
	"context"
	"time"

	domain "github.com/surfbook/surf-scheduler/internal/domain/schedule"
	"github.com/surfbook/surf-scheduler/internal/dto"
	"github.com/surfbook/surf-scheduler/internal/httperr"
)

type CheckConflictsInput struct {
	SchoolRef   string
	StartAt     string
	DurationMin int
}

// CheckConflicts backs the pre-submit warning in the coach UI.
type CheckConflicts struct {
	repo domain.Repository
}

func NewCheckConflicts(repo domain.Repository) *CheckConflicts {
	return &CheckConflicts{repo: repo}
}

func (uc *CheckConflicts) Execute(
	ctx context.Context,
	in CheckConflictsInput,
) (*dto.ConflictCheckDTO, error) {

	school, err := uc.repo.GetSchoolByRef(ctx, in.SchoolRef)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, in.StartAt)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_start_at", "Invalid start_at (must be an ISO timestamp).")
	}
	start = start.UTC()

	duration := in.DurationMin
	if duration == 0 {
		duration = domain.DefaultDurationMin
	}
	if duration < 0 {
		return nil, httperr.ErrValidation("invalid_duration", "Duration must be positive.")
	}

	ids, err := findConflicts(ctx, uc.repo, school.ID, start, duration)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}

	return &dto.ConflictCheckDTO{
		Conflict:       len(ids) > 0,
		ConflictingIDs: ids,
	}, nil
}
