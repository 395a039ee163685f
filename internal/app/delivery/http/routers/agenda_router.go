package routers

import (
	"github.com/go-chi/chi/v5"

	"valoredash-service/internal/app/delivery/http/middlewares"
	"valoredash-service/internal/app/services/core/agendas"
)

func attachAgendaRoutes(router chi.Router, middlewares *middlewares.Middlewares, agendaController *agendas.AgendaController) {
	router.Get("/", agendaController.ListAgendas)
	router.Get("/{agendaID}", agendaController.GetAgendaByID)
	router.With(middlewares.BearerAuth).Post("/", agendaController.CreateAgenda)
	router.With(middlewares.BearerAuth).Put("/{agendaID}", agendaController.UpdateAgenda)
	router.With(middlewares.BearerAuth).Delete("/{agendaID}", agendaController.DeleteAgenda)
}
