package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/surfbook/surf-scheduler/internal/domain/schedule"
	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Error mapping
// --------------------------------------------------

const uniqueViolation = "23505"

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func mapErr(err error, notFoundCode, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return httperr.ErrNotFound(notFoundCode, notFoundMsg)
	case IsUniqueViolation(err):
		return httperr.ErrConflict("duplicate", "Already exists.")
	default:
		return httperr.ErrDependency("storage_error", err)
	}
}

// --------------------------------------------------
// School
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSchoolByRef(
	ctx context.Context,
	slugOrID string,
) (*models.School, error) {

	q := r.db.WithContext(ctx)

	var school models.School
	if _, err := uuid.Parse(slugOrID); err == nil {
		err := q.Where("id = ?", slugOrID).First(&school).Error
		if err == nil {
			return &school, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mapErr(err, "school_not_found", "School not found.")
		}
	}

	if err := q.Where("slug = ?", slugOrID).First(&school).Error; err != nil {
		return nil, mapErr(err, "school_not_found", "School not found.")
	}
	return &school, nil
}

// --------------------------------------------------
// Lesson
// --------------------------------------------------

func (r *ScheduleGormRepository) GetLesson(
	ctx context.Context,
	id string,
) (*models.Lesson, error) {

	var lesson models.Lesson
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&lesson).Error; err != nil {
		return nil, mapErr(err, "lesson_not_found", "Lesson not found.")
	}
	return &lesson, nil
}

func (r *ScheduleGormRepository) ListLessons(
	ctx context.Context,
	f domain.LessonFilter,
) ([]models.Lesson, error) {

	q := r.db.WithContext(ctx).
		Where("school_id = ?", f.SchoolID)

	if f.From != nil {
		q = q.Where("start_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("start_at < ?", f.To.UTC())
	}
	if f.Difficulty != nil {
		q = q.Where("difficulty = ?", string(*f.Difficulty))
	}

	var lessons []models.Lesson
	if err := q.
		Order("start_at ASC, created_at ASC").
		Limit(f.EffectiveLimit()).
		Find(&lessons).Error; err != nil {
		return nil, mapErr(err, "", "")
	}
	return lessons, nil
}

func (r *ScheduleGormRepository) ListLessonsStartingBefore(
	ctx context.Context,
	schoolID string,
	before time.Time,
) ([]models.Lesson, error) {

	var lessons []models.Lesson
	if err := r.db.WithContext(ctx).
		Where("school_id = ? AND start_at < ?", schoolID, before.UTC()).
		Order("start_at ASC, created_at ASC").
		Find(&lessons).Error; err != nil {
		return nil, mapErr(err, "", "")
	}
	return lessons, nil
}

func (r *ScheduleGormRepository) CreateLesson(
	ctx context.Context,
	lesson *models.Lesson,
	coachIDs []string,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(lesson).Error; err != nil {
			return err
		}

		for _, coachID := range coachIDs {
			link := models.LessonCoach{
				LessonID: lesson.ID,
				CoachID:  coachID,
			}
			if err := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return mapErr(err, "", "")
}

func (r *ScheduleGormRepository) SoftDeleteLesson(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Lesson{})
	if res.Error != nil {
		return mapErr(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("lesson_not_found", "Lesson not found.")
	}
	return nil
}

// --------------------------------------------------
// Coaches
// --------------------------------------------------

func (r *ScheduleGormRepository) CountSchoolCoaches(
	ctx context.Context,
	schoolID string,
	coachIDs []string,
) (int64, error) {

	if len(coachIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Coach{}).
		Where("school_id = ? AND id IN ?", schoolID, coachIDs).
		Count(&count).Error; err != nil {
		return 0, mapErr(err, "", "")
	}
	return count, nil
}

func (r *ScheduleGormRepository) ReplaceLessonCoaches(
	ctx context.Context,
	lessonID string,
	coachIDs []string,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("lesson_id = ?", lessonID).
			Delete(&models.LessonCoach{}).Error; err != nil {
			return err
		}

		for _, coachID := range coachIDs {
			link := models.LessonCoach{
				LessonID: lessonID,
				CoachID:  coachID,
			}
			if err := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return mapErr(err, "", "")
}

func (r *ScheduleGormRepository) CoachNamesByLesson(
	ctx context.Context,
	lessonIDs []string,
) (map[string][]string, error) {

	out := make(map[string][]string, len(lessonIDs))
	if len(lessonIDs) == 0 {
		return out, nil
	}

	type row struct {
		LessonID string
		Name     string
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Table("lesson_coaches").
		Select("lesson_coaches.lesson_id, coaches.name").
		Joins("JOIN coaches ON coaches.id = lesson_coaches.coach_id AND coaches.deleted_at IS NULL").
		Where("lesson_coaches.lesson_id IN ?", lessonIDs).
		Order("coaches.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, mapErr(err, "", "")
	}

	for _, rw := range rows {
		out[rw.LessonID] = append(out[rw.LessonID], rw.Name)
	}
	return out, nil
}

// --------------------------------------------------
// Students
// --------------------------------------------------

func (r *ScheduleGormRepository) UpsertStudent(
	ctx context.Context,
	schoolID string,
	email string,
	name string,
) (*models.Student, error) {

	q := r.db.WithContext(ctx)

	var student models.Student
	err := q.
		Where("school_id = ? AND email = ?", schoolID, email).
		First(&student).Error

	if err == nil {
		if student.Name == "" && name != "" {
			student.Name = name
			if err := q.Model(&student).Update("name", name).Error; err != nil {
				return nil, mapErr(err, "", "")
			}
		}
		return &student, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, mapErr(err, "", "")
	}

	student = models.Student{
		SchoolID: schoolID,
		Email:    email,
		Name:     name,
	}
	if err := q.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "school_id"}, {Name: "email"}},
			DoNothing: true,
		}).
		Create(&student).Error; err != nil {
		return nil, mapErr(err, "", "")
	}

	// A concurrent insert may have won the conflict; re-read to get
	// the surviving row.
	if err := q.
		Where("school_id = ? AND email = ?", schoolID, email).
		First(&student).Error; err != nil {
		return nil, mapErr(err, "student_not_found", "Student not found.")
	}
	return &student, nil
}

func (r *ScheduleGormRepository) FindStudent(
	ctx context.Context,
	schoolID string,
	email string,
) (*models.Student, error) {

	var student models.Student
	if err := r.db.WithContext(ctx).
		Where("school_id = ? AND email = ?", schoolID, email).
		First(&student).Error; err != nil {
		return nil, mapErr(err, "not_booked", "Not booked.")
	}
	return &student, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

// UpsertBooking is a single atomic statement: insert an active
// booking, or on (lesson_id, student_id) conflict revive the existing
// row. Booking an already-booked lesson rewrites the same values,
// which keeps the operation idempotent without a prior SELECT.
func (r *ScheduleGormRepository) UpsertBooking(
	ctx context.Context,
	lessonID string,
	studentID string,
) error {

	booking := models.Booking{
		LessonID:  lessonID,
		StudentID: studentID,
		Status:    string(domain.InitialStatus()),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "lesson_id"}, {Name: "student_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":       string(domain.StatusBooked),
				"cancelled_at": nil,
				"updated_at":   time.Now().UTC(),
			}),
		}).
		Create(&booking).Error

	return mapErr(err, "", "")
}

func (r *ScheduleGormRepository) CancelBooking(
	ctx context.Context,
	lessonID string,
	studentID string,
	now time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Where("lesson_id = ? AND student_id = ?", lessonID, studentID).
			First(&booking).Error; err != nil {
			return mapErr(err, "not_booked", "Not booked.")
		}

		if err := domain.Cancel(&booking, now); err != nil {
			return err
		}

		if err := tx.Save(&booking).Error; err != nil {
			return mapErr(err, "", "")
		}
		return nil
	})
}

func (r *ScheduleGormRepository) ListAttendees(
	ctx context.Context,
	lessonID string,
) ([]domain.Attendee, error) {

	var attendees []domain.Attendee
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select("students.name, students.email").
		Joins("JOIN students ON students.id = bookings.student_id AND students.deleted_at IS NULL").
		Where("bookings.lesson_id = ? AND bookings.status = ?", lessonID, string(domain.StatusBooked)).
		Order("students.email ASC").
		Scan(&attendees).Error; err != nil {
		return nil, mapErr(err, "", "")
	}
	return attendees, nil
}

func (r *ScheduleGormRepository) ActiveBookingCounts(
	ctx context.Context,
	lessonIDs []string,
) (map[string]int, error) {

	out := make(map[string]int, len(lessonIDs))
	if len(lessonIDs) == 0 {
		return out, nil
	}

	type row struct {
		LessonID string
		N        int
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("lesson_id, COUNT(*) AS n").
		Where("lesson_id IN ? AND status = ?", lessonIDs, string(domain.StatusBooked)).
		Group("lesson_id").
		Scan(&rows).Error; err != nil {
		return nil, mapErr(err, "", "")
	}

	for _, rw := range rows {
		out[rw.LessonID] = rw.N
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
