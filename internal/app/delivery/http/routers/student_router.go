package routers

import (
	"edunexus-service/internal/app/delivery/http/middlewares"
	"edunexus-service/internal/app/services/core/students"

	"github.com/go-chi/chi/v5"
)

func attachStudentRoutes(router chi.Router, middlewares *middlewares.Middlewares, studentController *students.StudentController) {
	router.Get("/", studentController.FindAll)
	router.Post("/", studentController.Create)
	router.Get("/{studentID}", studentController.FindByID)
	router.Put("/{studentID}", studentController.Update)
	router.Delete("/{studentID}", studentController.Delete)
}
