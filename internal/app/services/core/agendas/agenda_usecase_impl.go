package agendas

import (
	"context"

	"go.uber.org/zap"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/exceptions"
)

type agendaUsecase struct {
	agendaRepo contracts.AgendaRepository
	log        *zap.Logger
}

func NewAgendaUsecase(agendaRepo contracts.AgendaRepository, log *zap.Logger) contracts.AgendaUsecase {
	return &agendaUsecase{
		agendaRepo: agendaRepo,
		log:        log,
	}
}

func (uc *agendaUsecase) ListAgendas(ctx context.Context) ([]models.Agenda, error) {
	agendas, err := uc.agendaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if agendas == nil {
		agendas = []models.Agenda{}
	}
	return agendas, nil
}

func (uc *agendaUsecase) GetAgendaByID(ctx context.Context, agendaID string) (*models.Agenda, error) {
	agenda, err := uc.agendaRepo.FindByID(ctx, agendaID)
	if err != nil {
		return nil, err
	}
	if agenda == nil {
		return nil, exceptions.ErrAgendaNotFound(nil)
	}
	return agenda, nil
}

func (uc *agendaUsecase) CreateAgenda(ctx context.Context, agenda *models.Agenda) (string, error) {
	if err := agenda.Validate(); err != nil {
		return "", err
	}
	agendaID, err := uc.agendaRepo.Create(ctx, agenda)
	if err != nil {
		return "", err
	}
	uc.log.Info("agenda created", zap.String(constvars.LoggingAgendaIDKey, agendaID))
	return agendaID, nil
}

func (uc *agendaUsecase) UpdateAgenda(ctx context.Context, agenda *models.Agenda) error {
	if err := agenda.Validate(); err != nil {
		return err
	}
	existing, err := uc.agendaRepo.FindByID(ctx, agenda.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrAgendaNotFound(nil)
	}
	return uc.agendaRepo.Update(ctx, agenda)
}

func (uc *agendaUsecase) DeleteAgenda(ctx context.Context, agendaID string) error {
	existing, err := uc.agendaRepo.FindByID(ctx, agendaID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrAgendaNotFound(nil)
	}
	return uc.agendaRepo.Delete(ctx, agendaID)
}
