package routers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"valoredash-service/internal/app/config"
	"valoredash-service/internal/app/delivery/http/middlewares"
	"valoredash-service/internal/app/services/core/agendas"
	"valoredash-service/internal/app/services/core/availability"
	"valoredash-service/internal/app/services/core/bookings"
	"valoredash-service/internal/app/services/core/calendars"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	agendaController *agendas.AgendaController,
	calendarController *calendars.CalendarController,
	availabilityController *availability.AvailabilityController,
	bookingController *bookings.BookingController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/agendas", func(r chi.Router) {
			attachAgendaRoutes(r, middlewares, agendaController)
			attachCalendarRoutes(r, middlewares, calendarController)
			attachAvailabilityRoutes(r, middlewares, availabilityController)
		})

		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, bookingController)
		})
	})
}
