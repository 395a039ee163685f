package routers

import (
	"github.com/go-chi/chi/v5"

	"valoredash-service/internal/app/delivery/http/middlewares"
	"valoredash-service/internal/app/services/core/calendars"
)

func attachCalendarRoutes(router chi.Router, middlewares *middlewares.Middlewares, calendarController *calendars.CalendarController) {
	router.Get("/{agendaID}/operating-hours", calendarController.ListOperatingHours)
	router.With(middlewares.BearerAuth).Post("/{agendaID}/operating-hours", calendarController.CreateOperatingHour)
	router.With(middlewares.BearerAuth).Put("/{agendaID}/operating-hours/{ruleID}", calendarController.UpdateOperatingHour)
	router.With(middlewares.BearerAuth).Delete("/{agendaID}/operating-hours/{ruleID}", calendarController.DeleteOperatingHour)

	router.Get("/{agendaID}/date-exceptions", calendarController.ListDateExceptions)
	router.With(middlewares.BearerAuth).Post("/{agendaID}/date-exceptions", calendarController.CreateDateException)
	router.With(middlewares.BearerAuth).Put("/{agendaID}/date-exceptions/{exceptionID}", calendarController.UpdateDateException)
	router.With(middlewares.BearerAuth).Delete("/{agendaID}/date-exceptions/{exceptionID}", calendarController.DeleteDateException)
}
