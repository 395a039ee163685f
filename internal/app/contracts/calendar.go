package contracts

import (
	"context"

	"valoredash-service/internal/app/models"
)

type OperatingHourRepository interface {
	FindByAgendaID(ctx context.Context, agendaID string) ([]models.OperatingHourRule, error)
	Create(ctx context.Context, rule *models.OperatingHourRule) (string, error)
	Update(ctx context.Context, rule *models.OperatingHourRule) error
	Delete(ctx context.Context, ruleID string) error
}

type DateExceptionRepository interface {
	FindByAgendaID(ctx context.Context, agendaID string) ([]models.DateException, error)
	FindByAgendaIDAndDate(ctx context.Context, agendaID, date string) (*models.DateException, error)
	Create(ctx context.Context, exception *models.DateException) (string, error)
	Update(ctx context.Context, exception *models.DateException) error
	Delete(ctx context.Context, exceptionID string) error
}

type CalendarUsecase interface {
	ListOperatingHours(ctx context.Context, agendaID string) ([]models.OperatingHourRule, error)
	CreateOperatingHour(ctx context.Context, rule *models.OperatingHourRule) (string, error)
	UpdateOperatingHour(ctx context.Context, rule *models.OperatingHourRule) error
	DeleteOperatingHour(ctx context.Context, agendaID, ruleID string) error

	ListDateExceptions(ctx context.Context, agendaID string) ([]models.DateException, error)
	CreateDateException(ctx context.Context, exception *models.DateException) (string, error)
	UpdateDateException(ctx context.Context, exception *models.DateException) error
	DeleteDateException(ctx context.Context, agendaID, exceptionID string) error
}
