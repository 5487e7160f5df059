package lesson

import (
	"context"
	"time"

	domain "github.com/surfbook/surf-scheduler/internal/domain/schedule"
	"github.com/surfbook/surf-scheduler/internal/dto"
	"github.com/surfbook/surf-scheduler/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type ListLessonsInput struct {
	SchoolRef  string // slug preferred, uuid accepted
	From       string // YYYY-MM-DD, inclusive
	To         string // YYYY-MM-DD, inclusive
	Difficulty string
	Limit      int
}

// ======================================================
// USE CASE
// ======================================================

type ListLessons struct {
	repo domain.Repository
}

func NewListLessons(repo domain.Repository) *ListLessons {
	return &ListLessons{repo: repo}
}

func (uc *ListLessons) Execute(
	ctx context.Context,
	in ListLessonsInput,
) ([]dto.LessonListDTO, error) {

	school, err := uc.repo.GetSchoolByRef(ctx, in.SchoolRef)
	if err != nil {
		return nil, err
	}

	filter := domain.LessonFilter{
		SchoolID: school.ID,
		Limit:    in.Limit,
	}

	if in.From != "" {
		d, err := time.Parse("2006-01-02", in.From)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_from", "Invalid 'from' date. Use YYYY-MM-DD.")
		}
		from := domain.DayStartUTC(d)
		filter.From = &from
	}

	if in.To != "" {
		d, err := time.Parse("2006-01-02", in.To)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_to", "Invalid 'to' date. Use YYYY-MM-DD.")
		}
		to := domain.DayEndUTC(d)
		filter.To = &to
	}

	if in.Difficulty != "" {
		if !domain.IsValidDifficulty(in.Difficulty) {
			return nil, httperr.ErrValidation("invalid_difficulty", "Unknown difficulty.")
		}
		d := domain.Difficulty(in.Difficulty)
		filter.Difficulty = &d
	}

	lessons, err := uc.repo.ListLessons(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(lessons))
	for _, l := range lessons {
		ids = append(ids, l.ID)
	}

	coachNames, err := uc.repo.CoachNamesByLesson(ctx, ids)
	if err != nil {
		return nil, err
	}

	counts, err := uc.repo.ActiveBookingCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LessonListDTO, 0, len(lessons))
	for _, l := range lessons {
		coaches := coachNames[l.ID]
		if coaches == nil {
			coaches = []string{}
		}

		row := dto.LessonListDTO{
			ID:          l.ID,
			SchoolID:    l.SchoolID,
			StartAt:     l.StartAt.UTC(),
			DurationMin: l.DurationMin,
			Difficulty:  l.Difficulty,
			Place:       l.Place,
			Capacity:    l.Capacity,
			Coaches:     coaches,
			BookedCount: counts[l.ID],
			CreatedAt:   l.CreatedAt,
			UpdatedAt:   l.UpdatedAt,
		}

		if l.Capacity != nil {
			left := *l.Capacity - row.BookedCount
			if left < 0 {
				left = 0
			}
			row.SpotsLeft = &left
		}

		out = append(out, row)
	}

	return out, nil
}
