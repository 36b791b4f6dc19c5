package routers

import (
	"edunexus-service/internal/app/delivery/http/middlewares"
	"edunexus-service/internal/app/services/core/substitutions"

	"github.com/go-chi/chi/v5"
)

func attachSubstitutionRoutes(router chi.Router, middlewares *middlewares.Middlewares, schedulerLimiter *middlewares.RateLimiter, substitutionController *substitutions.SubstitutionController) {
	router.With(schedulerLimiter.Limit).Post("/suggest", substitutionController.Suggest)
}
