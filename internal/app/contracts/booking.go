package contracts

import (
	"context"

	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/dto/requests"
)

type BookingRepository interface {
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindActiveByAgendaIDAndDate(ctx context.Context, agendaID, date string) ([]models.Booking, error)
	FindActiveByAgendaIDAndDateRange(ctx context.Context, agendaID, startDate, endDate string) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) (string, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
}
