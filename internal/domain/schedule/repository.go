package schedule

import (
	"context"
	"time"

	"github.com/surfbook/surf-scheduler/internal/models"
)

// Attendee is the booking view exposed to listings.
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Repository interface {
	// -------- School --------
	GetSchoolByRef(
		ctx context.Context,
		slugOrID string,
	) (*models.School, error)

	// -------- Lesson --------
	GetLesson(
		ctx context.Context,
		id string,
	) (*models.Lesson, error)

	ListLessons(
		ctx context.Context,
		f LessonFilter,
	) ([]models.Lesson, error)

	// ListLessonsStartingBefore feeds the overlap check. Unlike
	// ListLessons it is unbounded: truncating the candidate set would
	// drop conflicts.
	ListLessonsStartingBefore(
		ctx context.Context,
		schoolID string,
		before time.Time,
	) ([]models.Lesson, error)

	CreateLesson(
		ctx context.Context,
		lesson *models.Lesson,
		coachIDs []string,
	) error

	SoftDeleteLesson(
		ctx context.Context,
		id string,
	) error

	// -------- Coaches --------
	CountSchoolCoaches(
		ctx context.Context,
		schoolID string,
		coachIDs []string,
	) (int64, error)

	ReplaceLessonCoaches(
		ctx context.Context,
		lessonID string,
		coachIDs []string,
	) error

	CoachNamesByLesson(
		ctx context.Context,
		lessonIDs []string,
	) (map[string][]string, error)

	// -------- Students / Bookings --------
	UpsertStudent(
		ctx context.Context,
		schoolID string,
		email string,
		name string,
	) (*models.Student, error)

	FindStudent(
		ctx context.Context,
		schoolID string,
		email string,
	) (*models.Student, error)

	UpsertBooking(
		ctx context.Context,
		lessonID string,
		studentID string,
	) error

	CancelBooking(
		ctx context.Context,
		lessonID string,
		studentID string,
		now time.Time,
	) error

	ListAttendees(
		ctx context.Context,
		lessonID string,
	) ([]Attendee, error)

	ActiveBookingCounts(
		ctx context.Context,
		lessonIDs []string,
	) (map[string]int, error)
}
