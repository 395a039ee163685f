package routers

import (
	"github.com/go-chi/chi/v5"

	"valoredash-service/internal/app/delivery/http/middlewares"
	"valoredash-service/internal/app/services/core/availability"
)

func attachAvailabilityRoutes(router chi.Router, _ *middlewares.Middlewares, availabilityController *availability.AvailabilityController) {
	router.Get("/{agendaID}/availability", availabilityController.GetDayAvailability)
}
