package contracts

import (
	"context"

	"valoredash-service/internal/app/models"
)

type AgendaRepository interface {
	FindAll(ctx context.Context) ([]models.Agenda, error)
	FindByID(ctx context.Context, agendaID string) (*models.Agenda, error)
	Create(ctx context.Context, agenda *models.Agenda) (string, error)
	Update(ctx context.Context, agenda *models.Agenda) error
	Delete(ctx context.Context, agendaID string) error
}

type AgendaUsecase interface {
	ListAgendas(ctx context.Context) ([]models.Agenda, error)
	GetAgendaByID(ctx context.Context, agendaID string) (*models.Agenda, error)
	CreateAgenda(ctx context.Context, agenda *models.Agenda) (string, error)
	UpdateAgenda(ctx context.Context, agenda *models.Agenda) error
	DeleteAgenda(ctx context.Context, agendaID string) error
}
