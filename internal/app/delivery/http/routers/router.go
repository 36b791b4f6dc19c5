package routers

import (
	"edunexus-service/internal/app/config"
	"edunexus-service/internal/app/delivery/http/middlewares"
	"edunexus-service/internal/app/services/core/reports"
	"edunexus-service/internal/app/services/core/students"
	"edunexus-service/internal/app/services/core/subjects"
	"edunexus-service/internal/app/services/core/substitutions"
	"edunexus-service/internal/app/services/core/teachers"
	"edunexus-service/internal/app/services/core/timetable"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewareInstance *middlewares.Middlewares,
	studentController *students.StudentController,
	teacherController *teachers.TeacherController,
	subjectController *subjects.SubjectController,
	timetableController *timetable.TimetableController,
	substitutionController *substitutions.SubstitutionController,
	reportController *reports.ReportController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Use(middlewareInstance.Logging(middlewareInstance.Log))
	router.Use(middlewareInstance.ErrorHandler)

	// Scheduler-backed routes carry their own tighter per-IP budget on top of
	// the global limit.
	schedulerLimiter := middlewares.NewRateLimiter(middlewareInstance.Log, 3, time.Minute, 2*time.Minute)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/students", func(r chi.Router) {
				attachStudentRoutes(r, middlewareInstance, studentController)
			})

			r.Route("/teachers", func(r chi.Router) {
				attachTeacherRoutes(r, middlewareInstance, teacherController)
			})

			r.Route("/subjects", func(r chi.Router) {
				attachSubjectRoutes(r, middlewareInstance, subjectController)
			})

			r.Route("/timetable", func(r chi.Router) {
				attachTimetableRoutes(r, middlewareInstance, schedulerLimiter, timetableController)
			})

			r.Route("/substitutions", func(r chi.Router) {
				attachSubstitutionRoutes(r, middlewareInstance, schedulerLimiter, substitutionController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewareInstance, reportController)
			})
		})
	})
}
