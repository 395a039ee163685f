package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/exceptions"
	"valoredash-service/internal/pkg/utils"
)

const (
	ReasonAgendaInactive = "agenda is inactive"
	// ReasonLoadFailed marks a degraded answer caused by a store failure, so
	// consumers can tell "closed" apart from "could not load".
	ReasonLoadFailed = "failed to load availability"
)

type availabilityUsecase struct {
	agendaRepo        contracts.AgendaRepository
	operatingHourRepo contracts.OperatingHourRepository
	dateExceptionRepo contracts.DateExceptionRepository
	bookingRepo       contracts.BookingRepository
	cache             contracts.CacheService
	log               *zap.Logger
	cacheTTL          time.Duration
}

func NewAvailabilityUsecase(
	agendaRepo contracts.AgendaRepository,
	operatingHourRepo contracts.OperatingHourRepository,
	dateExceptionRepo contracts.DateExceptionRepository,
	bookingRepo contracts.BookingRepository,
	cache contracts.CacheService,
	log *zap.Logger,
	cacheTTL time.Duration,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		agendaRepo:        agendaRepo,
		operatingHourRepo: operatingHourRepo,
		dateExceptionRepo: dateExceptionRepo,
		bookingRepo:       bookingRepo,
		cache:             cache,
		log:               log,
		cacheTTL:          cacheTTL,
	}
}

func (uc *availabilityUsecase) GetDayAvailability(ctx context.Context, agendaID, date string) (*contracts.DayAvailability, error) {
	if _, err := utils.ParseDateOnly(date); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	agenda, err := uc.agendaRepo.FindByID(ctx, agendaID)
	if err != nil {
		return nil, err
	}
	if agenda == nil {
		return nil, exceptions.ErrAgendaNotFound(nil)
	}
	if err := agenda.Validate(); err != nil {
		return nil, err
	}
	if !agenda.Active {
		return &contracts.DayAvailability{
			AgendaID: agendaID,
			Date:     date,
			Open:     false,
			Reason:   ReasonAgendaInactive,
			Slots:    []contracts.Slot{},
		}, nil
	}

	cacheKey := fmt.Sprintf(constvars.CacheKeyDayAvailability, agendaID, date)
	var cached contracts.DayAvailability
	hit, err := uc.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		uc.log.Warn("availability cache lookup failed",
			zap.String(constvars.LoggingAgendaIDKey, agendaID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
	}
	if hit {
		return &cached, nil
	}

	rules, exception, bookings, fetchErr := uc.fetchDayInputs(ctx, agendaID, date)
	if fetchErr != nil {
		// Store failures degrade to a closed day instead of crashing the
		// query. The degraded answer is never cached.
		uc.log.Warn("availability inputs fetch failed, degrading to closed day",
			zap.String(constvars.LoggingAgendaIDKey, agendaID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(fetchErr),
		)
		return &contracts.DayAvailability{
			AgendaID: agendaID,
			Date:     date,
			Open:     false,
			Reason:   ReasonLoadFailed,
			Slots:    []contracts.Slot{},
		}, nil
	}

	result := computeDay(agenda, agendaID, date, rules, exception, bookings)

	if err := uc.cache.Set(ctx, cacheKey, result, uc.cacheTTL); err != nil {
		uc.log.Warn("availability cache store failed",
			zap.String(constvars.LoggingAgendaIDKey, agendaID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
	}
	return result, nil
}

func (uc *availabilityUsecase) InvalidateDay(ctx context.Context, agendaID, date string) {
	cacheKey := fmt.Sprintf(constvars.CacheKeyDayAvailability, agendaID, date)
	if err := uc.cache.Invalidate(ctx, cacheKey); err != nil {
		uc.log.Warn("availability cache invalidation failed",
			zap.String(constvars.LoggingAgendaIDKey, agendaID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
	}
}

func (uc *availabilityUsecase) WarmAgendaWindow(ctx context.Context, agendaID string, days int) error {
	today := time.Now()
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		date := utils.FormatDateOnly(today.AddDate(0, 0, i))
		if _, err := uc.GetDayAvailability(ctx, agendaID, date); err != nil {
			return err
		}
	}
	return nil
}

// fetchDayInputs issues the three independent store reads concurrently and
// joins them. The first error wins.
func (uc *availabilityUsecase) fetchDayInputs(ctx context.Context, agendaID, date string) ([]models.OperatingHourRule, *models.DateException, []models.Booking, error) {
	var (
		wg        sync.WaitGroup
		rules     []models.OperatingHourRule
		exception *models.DateException
		bookings  []models.Booking

		rulesErr     error
		exceptionErr error
		bookingsErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		rules, rulesErr = uc.operatingHourRepo.FindByAgendaID(ctx, agendaID)
	}()
	go func() {
		defer wg.Done()
		exception, exceptionErr = uc.dateExceptionRepo.FindByAgendaIDAndDate(ctx, agendaID, date)
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = uc.bookingRepo.FindActiveByAgendaIDAndDate(ctx, agendaID, date)
	}()
	wg.Wait()

	for _, err := range []error{rulesErr, exceptionErr, bookingsErr} {
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return rules, exception, bookings, nil
}

func computeDay(agenda *models.Agenda, agendaID, date string, rules []models.OperatingHourRule, exception *models.DateException, bookings []models.Booking) *contracts.DayAvailability {
	window, closedReason := ResolveWindow(date, rules, exception)
	if window == nil {
		return &contracts.DayAvailability{
			AgendaID: agendaID,
			Date:     date,
			Open:     false,
			Reason:   closedReason,
			Slots:    []contracts.Slot{},
		}
	}

	slots := GenerateSlots(agenda, window, bookings, exception)
	if slots == nil {
		slots = []contracts.Slot{}
	}
	return &contracts.DayAvailability{
		AgendaID: agendaID,
		Date:     date,
		Open:     true,
		Slots:    slots,
	}
}
