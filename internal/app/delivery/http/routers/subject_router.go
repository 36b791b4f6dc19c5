package routers

import (
	"edunexus-service/internal/app/delivery/http/middlewares"
	"edunexus-service/internal/app/services/core/subjects"

	"github.com/go-chi/chi/v5"
)

func attachSubjectRoutes(router chi.Router, middlewares *middlewares.Middlewares, subjectController *subjects.SubjectController) {
	router.Get("/", subjectController.FindAll)
	router.Post("/", subjectController.Create)
	router.Get("/{subjectID}", subjectController.FindByID)
	router.Put("/{subjectID}", subjectController.Update)
	router.Delete("/{subjectID}", subjectController.Delete)
}
