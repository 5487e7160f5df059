package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/surfbook/surf-scheduler/internal/audit"
	"github.com/surfbook/surf-scheduler/internal/handlers"
	infraRepo "github.com/surfbook/surf-scheduler/internal/infra/repository"
	ucBooking "github.com/surfbook/surf-scheduler/internal/usecase/booking"
	ucLesson "github.com/surfbook/surf-scheduler/internal/usecase/lesson"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {

	// ======================================================
	// INFRA
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createLessonUC := ucLesson.NewCreateLesson(scheduleRepo, auditDispatcher)
	listLessonsUC := ucLesson.NewListLessons(scheduleRepo)
	deleteLessonUC := ucLesson.NewDeleteLesson(scheduleRepo, auditDispatcher)
	replaceCoachesUC := ucLesson.NewReplaceCoaches(scheduleRepo, auditDispatcher)
	checkConflictsUC := ucLesson.NewCheckConflicts(scheduleRepo)

	bookUC := ucBooking.NewBook(scheduleRepo, auditDispatcher)
	unbookUC := ucBooking.NewUnbook(scheduleRepo, auditDispatcher)
	attendeesUC := ucBooking.NewListAttendees(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	schoolHandler := handlers.NewSchoolHandler(db, log, auditDispatcher)
	coachHandler := handlers.NewCoachHandler(db, log)

	lessonHandler := handlers.NewLessonHandler(
		log,
		createLessonUC,
		listLessonsUC,
		deleteLessonUC,
		replaceCoachesUC,
		checkConflictsUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		log,
		bookUC,
		unbookUC,
		attendeesUC,
	)

	publicHandler := handlers.NewPublicHandler(log, listLessonsUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// SCHOOLS
		// ------------------------------
		api.GET("/schools", schoolHandler.List)
		api.POST("/schools", schoolHandler.Create)
		api.GET("/schools/:id", schoolHandler.Get)
		api.PATCH("/schools/:id", schoolHandler.Update)
		api.DELETE("/schools/:id", schoolHandler.Delete)

		// ------------------------------
		// COACHES
		// ------------------------------
		api.GET("/coaches", coachHandler.List)
		api.POST("/coaches", coachHandler.Create)
		api.DELETE("/coaches/:id", coachHandler.Delete)

		// ------------------------------
		// LESSONS
		// ------------------------------
		api.GET("/lessons", lessonHandler.List)
		api.POST("/lessons", lessonHandler.Create)
		api.GET("/lessons/conflicts", lessonHandler.CheckConflicts)
		api.DELETE("/lessons/:id", lessonHandler.Delete)
		api.PUT("/lessons/:id/coaches", lessonHandler.ReplaceCoaches)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/lessons/:id/book", bookingHandler.Book)
		api.DELETE("/lessons/:id/book", bookingHandler.Unbook)
		api.GET("/lessons/:id/attendees", bookingHandler.ListAttendees)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/lessons", publicHandler.ListLessons)
		}
	}
}
