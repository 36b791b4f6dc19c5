package routers

import (
	"edunexus-service/internal/app/delivery/http/middlewares"
	"edunexus-service/internal/app/services/core/timetable"

	"github.com/go-chi/chi/v5"
)

func attachTimetableRoutes(router chi.Router, middlewares *middlewares.Middlewares, schedulerLimiter *middlewares.RateLimiter, timetableController *timetable.TimetableController) {
	router.Get("/entries", timetableController.FindAllEntries)
	router.Put("/entries", timetableController.SaveEntry)
	router.Delete("/entries", timetableController.ClearEntry)
	router.Get("/class/{classID}", timetableController.ClassWeek)
	router.Get("/master/{day}", timetableController.MasterDay)
	router.Get("/validate", timetableController.Validate)
	router.Get("/settings", timetableController.GetSettings)
	router.Put("/settings", timetableController.UpdateSettings)
	router.With(schedulerLimiter.Limit).Post("/generate", timetableController.Generate)
}
