package lesson

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/surfbook/surf-scheduler/internal/audit"
	dbpkg "github.com/surfbook/surf-scheduler/internal/db"
	"github.com/surfbook/surf-scheduler/internal/httperr"
	infraRepo "github.com/surfbook/surf-scheduler/internal/infra/repository"
	"github.com/surfbook/surf-scheduler/internal/models"
)

type fixture struct {
	db *gorm.DB

	create    *CreateLesson
	list      *ListLessons
	remove    *DeleteLesson
	coaches   *ReplaceCoaches
	conflicts *CheckConflicts

	school *models.School
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	repo := infraRepo.NewScheduleGormRepository(gdb)
	dispatcher := audit.NewDispatcher(audit.New(gdb), zap.NewNop())

	school := &models.School{Name: "Angels Surf", Slug: "angels-surf"}
	require.NoError(t, gdb.Create(school).Error)

	return &fixture{
		db:        gdb,
		create:    NewCreateLesson(repo, dispatcher),
		list:      NewListLessons(repo),
		remove:    NewDeleteLesson(repo, dispatcher),
		coaches:   NewReplaceCoaches(repo, dispatcher),
		conflicts: NewCheckConflicts(repo),
		school:    school,
	}
}

func (f *fixture) addCoach(t *testing.T, name string) *models.Coach {
	t.Helper()
	coach := &models.Coach{SchoolID: f.school.ID, Name: name}
	require.NoError(t, f.db.Create(coach).Error)
	return coach
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func TestCreateLesson(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	kai := f.addCoach(t, "Kai")

	out, err := f.create.Execute(ctx, CreateLessonInput{
		SchoolRef:  "angels-surf",
		StartAt:    "2025-03-01T09:00:00Z",
		Difficulty: "Beginner",
		Place:      "North beach",
		CoachIDs:   []string{kai.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, f.school.ID, out.SchoolID)
	assert.Equal(t, 90, out.DurationMin) // default applied
	assert.Equal(t, []string{kai.ID}, out.CoachIDs)
	assert.Empty(t, out.Conflicts)
}

func TestCreateLessonValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateLessonInput
	}{
		{
			name: "bad timestamp",
			in: CreateLessonInput{
				SchoolRef: "angels-surf", StartAt: "yesterday",
				Difficulty: "Beginner", Place: "North beach",
			},
		},
		{
			name: "unknown difficulty",
			in: CreateLessonInput{
				SchoolRef: "angels-surf", StartAt: "2025-03-01T09:00:00Z",
				Difficulty: "Pro", Place: "North beach",
			},
		},
		{
			name: "missing place",
			in: CreateLessonInput{
				SchoolRef: "angels-surf", StartAt: "2025-03-01T09:00:00Z",
				Difficulty: "Beginner",
			},
		},
		{
			name: "negative duration",
			in: CreateLessonInput{
				SchoolRef: "angels-surf", StartAt: "2025-03-01T09:00:00Z",
				DurationMin: -30, Difficulty: "Beginner", Place: "North beach",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(ctx, tt.in)
			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))
		})
	}

	t.Run("unknown school", func(t *testing.T) {
		_, err := f.create.Execute(ctx, CreateLessonInput{
			SchoolRef: "nope", StartAt: "2025-03-01T09:00:00Z",
			Difficulty: "Beginner", Place: "North beach",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})

	t.Run("coach from another school", func(t *testing.T) {
		other := &models.School{Name: "Rival Surf", Slug: "rival-surf"}
		require.NoError(t, f.db.Create(other).Error)
		stray := &models.Coach{SchoolID: other.ID, Name: "Stray"}
		require.NoError(t, f.db.Create(stray).Error)

		_, err := f.create.Execute(ctx, CreateLessonInput{
			SchoolRef: "angels-surf", StartAt: "2025-03-01T09:00:00Z",
			Difficulty: "Beginner", Place: "North beach",
			CoachIDs: []string{stray.ID},
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})
}

// Overlap is advisory: the second lesson is created anyway, with the
// first one reported in conflicts. Each subtest gets its own fixture
// since every create persists, advisory or not.
func TestCreateLessonReportsConflicts(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, f *fixture, startAt string, durationMin int) string {
		t.Helper()
		out, err := f.create.Execute(ctx, CreateLessonInput{
			SchoolRef: "angels-surf", StartAt: startAt,
			DurationMin: durationMin,
			Difficulty:  "Beginner", Place: "North beach",
		})
		require.NoError(t, err)
		return out.ID
	}

	t.Run("half hour in conflicts", func(t *testing.T) {
		f := newFixture(t)
		first := seed(t, f, "2025-03-01T09:00:00Z", 0)

		out, err := f.create.Execute(ctx, CreateLessonInput{
			SchoolRef: "angels-surf", StartAt: "2025-03-01T09:30:00Z",
			Difficulty: "Beginner", Place: "North beach",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{first}, out.Conflicts)
	})

	t.Run("back to back is clean", func(t *testing.T) {
		f := newFixture(t)
		seed(t, f, "2025-03-01T09:00:00Z", 0)

		out, err := f.create.Execute(ctx, CreateLessonInput{
			SchoolRef: "angels-surf", StartAt: "2025-03-01T10:30:00Z",
			Difficulty: "Beginner", Place: "North beach",
		})
		require.NoError(t, err)
		assert.Empty(t, out.Conflicts)
	})

	t.Run("candidate inside an earlier multi-day lesson", func(t *testing.T) {
		f := newFixture(t)
		camp := seed(t, f, "2025-03-01T09:00:00Z", 48*60)

		out, err := f.create.Execute(ctx, CreateLessonInput{
			SchoolRef: "angels-surf", StartAt: "2025-03-02T12:00:00Z",
			Difficulty: "Beginner", Place: "North beach",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{camp}, out.Conflicts)
	})
}

func TestCheckConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.create.Execute(ctx, CreateLessonInput{
		SchoolRef: "angels-surf", StartAt: "2025-03-01T09:00:00Z",
		Difficulty: "Beginner", Place: "North beach",
	})
	require.NoError(t, err)

	out, err := f.conflicts.Execute(ctx, CheckConflictsInput{
		SchoolRef: "angels-surf",
		StartAt:   "2025-03-01T09:30:00Z",
	})
	require.NoError(t, err)
	assert.True(t, out.Conflict)
	assert.Equal(t, []string{first.ID}, out.ConflictingIDs)

	out, err = f.conflicts.Execute(ctx, CheckConflictsInput{
		SchoolRef: "angels-surf",
		StartAt:   "2025-03-01T10:30:00Z",
	})
	require.NoError(t, err)
	assert.False(t, out.Conflict)
	assert.Empty(t, out.ConflictingIDs)
}

// A lesson longer than a day still conflicts with a candidate that
// starts well after it did.
func TestCheckConflictsLongLesson(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	camp, err := f.create.Execute(ctx, CreateLessonInput{
		SchoolRef: "angels-surf", StartAt: "2025-03-01T09:00:00Z",
		DurationMin: 48 * 60,
		Difficulty:  "Beginner", Place: "North beach",
	})
	require.NoError(t, err)

	out, err := f.conflicts.Execute(ctx, CheckConflictsInput{
		SchoolRef: "angels-surf",
		StartAt:   "2025-03-02T12:00:00Z",
	})
	require.NoError(t, err)
	assert.True(t, out.Conflict)
	assert.Equal(t, []string{camp.ID}, out.ConflictingIDs)

	out, err = f.conflicts.Execute(ctx, CheckConflictsInput{
		SchoolRef: "angels-surf",
		StartAt:   "2025-03-03T09:00:00Z",
	})
	require.NoError(t, err)
	assert.False(t, out.Conflict)
}

// --------------------------------------------------
// List
// --------------------------------------------------

func TestListLessonsEnrichment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	kai := f.addCoach(t, "Kai")
	capacity := 8

	created, err := f.create.Execute(ctx, CreateLessonInput{
		SchoolRef: "angels-surf", StartAt: "2025-03-01T09:00:00Z",
		Difficulty: "Beginner", Place: "North beach",
		Capacity: &capacity,
		CoachIDs: []string{kai.ID},
	})
	require.NoError(t, err)

	student := &models.Student{SchoolID: f.school.ID, Email: "a@x.com", Name: "Alice"}
	require.NoError(t, f.db.Create(student).Error)
	require.NoError(t, f.db.Create(&models.Booking{
		LessonID: created.ID, StudentID: student.ID, Status: "booked",
	}).Error)

	out, err := f.list.Execute(ctx, ListLessonsInput{SchoolRef: "angels-surf"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	row := out[0]
	assert.Equal(t, []string{"Kai"}, row.Coaches)
	assert.Equal(t, 1, row.BookedCount)
	require.NotNil(t, row.SpotsLeft)
	assert.Equal(t, 7, *row.SpotsLeft)
}

func TestListLessonsFilterParsing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mk := func(startAt, difficulty string) {
		_, err := f.create.Execute(ctx, CreateLessonInput{
			SchoolRef: "angels-surf", StartAt: startAt,
			Difficulty: difficulty, Place: "North beach",
		})
		require.NoError(t, err)
	}

	mk("2025-01-09T09:00:00Z", "Intermediate")
	mk("2025-01-10T09:00:00Z", "Beginner")
	mk("2025-01-10T11:00:00Z", "Intermediate")

	t.Run("conjunctive from plus difficulty", func(t *testing.T) {
		out, err := f.list.Execute(ctx, ListLessonsInput{
			SchoolRef:  "angels-surf",
			From:       "2025-01-10",
			Difficulty: "Intermediate",
		})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Intermediate", out[0].Difficulty)
	})

	t.Run("to is inclusive of the whole day", func(t *testing.T) {
		out, err := f.list.Execute(ctx, ListLessonsInput{
			SchoolRef: "angels-surf",
			To:        "2025-01-10",
		})
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})

	t.Run("bad dates are validation errors", func(t *testing.T) {
		_, err := f.list.Execute(ctx, ListLessonsInput{
			SchoolRef: "angels-surf",
			From:      "last tuesday",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))

		_, err = f.list.Execute(ctx, ListLessonsInput{
			SchoolRef:  "angels-surf",
			Difficulty: "Expert",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})
}

// --------------------------------------------------
// Delete / coaches
// --------------------------------------------------

func TestDeleteLesson(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.create.Execute(ctx, CreateLessonInput{
		SchoolRef: "angels-surf", StartAt: "2025-03-01T09:00:00Z",
		Difficulty: "Beginner", Place: "North beach",
	})
	require.NoError(t, err)

	require.NoError(t, f.remove.Execute(ctx, created.ID))

	out, err := f.list.Execute(ctx, ListLessonsInput{SchoolRef: "angels-surf"})
	require.NoError(t, err)
	assert.Empty(t, out)

	err = f.remove.Execute(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestReplaceCoaches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	kai := f.addCoach(t, "Kai")
	moana := f.addCoach(t, "Moana")

	created, err := f.create.Execute(ctx, CreateLessonInput{
		SchoolRef: "angels-surf", StartAt: "2025-03-01T09:00:00Z",
		Difficulty: "Beginner", Place: "North beach",
		CoachIDs: []string{kai.ID},
	})
	require.NoError(t, err)

	ids, err := f.coaches.Execute(ctx, created.ID, []string{moana.ID, moana.ID, ""})
	require.NoError(t, err)
	assert.Equal(t, []string{moana.ID}, ids)

	out, err := f.list.Execute(ctx, ListLessonsInput{SchoolRef: "angels-surf"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"Moana"}, out[0].Coaches)

	t.Run("empty replacement clears the assignment", func(t *testing.T) {
		ids, err := f.coaches.Execute(ctx, created.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("foreign coach is rejected", func(t *testing.T) {
		other := &models.School{Name: "Rival Surf", Slug: "rival-surf"}
		require.NoError(t, f.db.Create(other).Error)
		stray := &models.Coach{SchoolID: other.ID, Name: "Stray"}
		require.NoError(t, f.db.Create(stray).Error)

		_, err := f.coaches.Execute(ctx, created.ID, []string{stray.ID})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})
}
