package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/dto/requests"
	"valoredash-service/internal/pkg/exceptions"
	"valoredash-service/internal/pkg/utils"
)

type bookingUsecase struct {
	agendaRepo          contracts.AgendaRepository
	bookingRepo         contracts.BookingRepository
	availabilityUsecase contracts.AvailabilityUsecase
	locker              contracts.LockerService
	publisher           contracts.BookingEventPublisher
	log                 *zap.Logger
	lockTTL             time.Duration
}

func NewBookingUsecase(
	agendaRepo contracts.AgendaRepository,
	bookingRepo contracts.BookingRepository,
	availabilityUsecase contracts.AvailabilityUsecase,
	locker contracts.LockerService,
	publisher contracts.BookingEventPublisher,
	log *zap.Logger,
	lockTTL time.Duration,
) contracts.BookingUsecase {
	return &bookingUsecase{
		agendaRepo:          agendaRepo,
		bookingRepo:         bookingRepo,
		availabilityUsecase: availabilityUsecase,
		locker:              locker,
		publisher:           publisher,
		log:                 log,
		lockTTL:             lockTTL,
	}
}

// CreateBooking takes a per-(agenda, date) lock, recomputes the day's slots
// from fresh data, verifies the requested start is an available slot, and
// only then writes the booking. The lock closes the check-then-insert race
// between concurrent requests for the same day.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.Booking, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	startClock, err := utils.ParseClock(request.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseClock(err)
	}

	agenda, err := uc.agendaRepo.FindByID(ctx, request.AgendaID)
	if err != nil {
		return nil, err
	}
	if agenda == nil {
		return nil, exceptions.ErrAgendaNotFound(nil)
	}

	lockKey := fmt.Sprintf(constvars.BookingDayLockKey, request.AgendaID, request.Date)
	acquired, lockValue, err := uc.locker.TryLock(ctx, lockKey, uc.lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAgendaDayLocked(nil)
	}
	defer uc.locker.Unlock(ctx, lockKey, lockValue)

	// Drop the cached day first so the verdict below is computed from the
	// store, not from a stale cache entry.
	uc.availabilityUsecase.InvalidateDay(ctx, request.AgendaID, request.Date)
	day, err := uc.availabilityUsecase.GetDayAvailability(ctx, request.AgendaID, request.Date)
	if err != nil {
		return nil, err
	}
	if !day.Open {
		return nil, exceptions.ErrSlotNotBookable(nil, day.Reason)
	}

	slot := findSlot(day.Slots, startClock.String())
	if slot == nil {
		return nil, exceptions.ErrSlotOutsideOperatingHours(nil)
	}
	if !slot.Available {
		return nil, exceptions.ErrSlotNotBookable(nil, slot.Reason)
	}

	booking := &models.Booking{
		AgendaID:    request.AgendaID,
		Date:        request.Date,
		StartTime:   startClock.String(),
		EndTime:     utils.MinutesToClock(startClock.Minutes() + agenda.DurationMinutes).String(),
		CustomerRef: request.CustomerRef,
		Status:      models.BookingStatusScheduled,
	}
	bookingID, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = bookingID

	uc.availabilityUsecase.InvalidateDay(ctx, request.AgendaID, request.Date)
	uc.publishEvent(ctx, constvars.BookingEventCreated, booking)

	uc.log.Info("booking created",
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingAgendaIDKey, request.AgendaID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)
	return booking, nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := uc.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return exceptions.ErrBookingNotFound(nil)
	}
	if !booking.IsActive() {
		return exceptions.BuildNewCustomError(errors.New("booking already released"), constvars.StatusConflict, constvars.ErrClientCannotProcessRequest, "booking is already cancelled or no-show")
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}
	booking.Status = models.BookingStatusCancelled

	uc.availabilityUsecase.InvalidateDay(ctx, booking.AgendaID, booking.Date)
	uc.publishEvent(ctx, constvars.BookingEventCancelled, booking)

	uc.log.Info("booking cancelled",
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingAgendaIDKey, booking.AgendaID),
		zap.String(constvars.LoggingDateKey, booking.Date),
	)
	return nil
}

// publishEvent is best effort; a broker outage must not fail the booking
// write that already happened.
func (uc *bookingUsecase) publishEvent(ctx context.Context, event string, booking *models.Booking) {
	message := contracts.BookingEventMessage{
		Event:      event,
		BookingID:  booking.ID,
		AgendaID:   booking.AgendaID,
		Date:       booking.Date,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		OccurredAt: time.Now(),
	}
	if err := uc.publisher.Publish(ctx, message); err != nil {
		uc.log.Warn("booking event publish failed",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

func findSlot(slots []contracts.Slot, start string) *contracts.Slot {
	for i := range slots {
		if slots[i].Time == start {
			return &slots[i]
		}
	}
	return nil
}
