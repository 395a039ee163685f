package routers

import (
	"github.com/go-chi/chi/v5"

	"valoredash-service/internal/app/delivery/http/middlewares"
	"valoredash-service/internal/app/services/core/bookings"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.BearerAuth).Post("/", bookingController.CreateBooking)
	router.With(middlewares.BearerAuth).Delete("/{bookingID}", bookingController.CancelBooking)
}
