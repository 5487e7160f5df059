package lesson

import (
	"context"
	"time"

	"github.com/surfbook/surf-scheduler/internal/audit"
	domain "github.com/surfbook/surf-scheduler/internal/domain/schedule"
	"github.com/surfbook/surf-scheduler/internal/dto"
	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateLessonInput struct {
	SchoolRef   string
	StartAt     string // RFC 3339
	DurationMin int    // 0 means default
	Difficulty  string
	Place       string
	Capacity    *int
	CoachIDs    []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateLesson struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateLesson(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateLesson {
	return &CreateLesson{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateLesson) Execute(
	ctx context.Context,
	in CreateLessonInput,
) (*dto.LessonCreatedDTO, error) {

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

	if !domain.IsValidDifficulty(in.Difficulty) {
		return nil, httperr.ErrValidation("invalid_difficulty", "Unknown difficulty.")
	}
	if in.Place == "" {
		return nil, httperr.ErrValidation("missing_place", "Missing place.")
	}

	coachIDs := uniq(in.CoachIDs)
	if len(coachIDs) > 0 {
		count, err := uc.repo.CountSchoolCoaches(ctx, school.ID, coachIDs)
		if err != nil {
			return nil, err
		}
		if count != int64(len(coachIDs)) {
			return nil, httperr.ErrValidation("invalid_coach", "Invalid coach for this school.")
		}
	}

	conflicts, err := findConflicts(ctx, uc.repo, school.ID, start, duration)
	if err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		SchoolID:    school.ID,
		StartAt:     start,
		DurationMin: duration,
		Difficulty:  in.Difficulty,
		Place:       in.Place,
		Capacity:    in.Capacity,
	}

	if err := uc.repo.CreateLesson(ctx, lesson, coachIDs); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SchoolID: school.ID,
		Action:   "lesson_created",
		Entity:   "lesson",
		EntityID: &lesson.ID,
	})

	if conflicts == nil {
		conflicts = []string{}
	}

	return &dto.LessonCreatedDTO{
		ID:          lesson.ID,
		SchoolID:    lesson.SchoolID,
		StartAt:     lesson.StartAt,
		DurationMin: lesson.DurationMin,
		Difficulty:  lesson.Difficulty,
		Place:       lesson.Place,
		Capacity:    lesson.Capacity,
		CoachIDs:    coachIDs,
		Conflicts:   conflicts,
	}, nil
}

// findConflicts runs the advisory interval test against every
// same-school lesson starting before the candidate ends. A lesson
// starting at or after the candidate's end cannot overlap a half-open
// interval, so start_at is the only bound; durations on the query side
// would miss long lessons that began earlier.
func findConflicts(
	ctx context.Context,
	repo domain.Repository,
	schoolID string,
	start time.Time,
	durationMin int,
) ([]string, error) {

	end := start.Add(time.Duration(durationMin) * time.Minute)

	existing, err := repo.ListLessonsStartingBefore(ctx, schoolID, end)
	if err != nil {
		return nil, err
	}

	return domain.FindConflicts(start, durationMin, existing), nil
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
