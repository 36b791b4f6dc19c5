package routers

import (
	"edunexus-service/internal/app/delivery/http/middlewares"
	"edunexus-service/internal/app/services/core/teachers"

	"github.com/go-chi/chi/v5"
)

func attachTeacherRoutes(router chi.Router, middlewares *middlewares.Middlewares, teacherController *teachers.TeacherController) {
	router.Get("/", teacherController.FindAll)
	router.Post("/", teacherController.Create)
	router.Get("/{teacherID}", teacherController.FindByID)
	router.Put("/{teacherID}", teacherController.Update)
	router.Patch("/{teacherID}/leave", teacherController.SetLeave)
	router.Delete("/{teacherID}", teacherController.Delete)
}
