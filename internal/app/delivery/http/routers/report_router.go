package routers

import (
	"edunexus-service/internal/app/delivery/http/middlewares"
	"edunexus-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.Get("/summary", reportController.Summary)
}
