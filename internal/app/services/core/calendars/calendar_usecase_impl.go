package calendars

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/exceptions"
	"valoredash-service/internal/pkg/utils"
)

type calendarUsecase struct {
	agendaRepo          contracts.AgendaRepository
	operatingHourRepo   contracts.OperatingHourRepository
	dateExceptionRepo   contracts.DateExceptionRepository
	availabilityUsecase contracts.AvailabilityUsecase
	log                 *zap.Logger
	windowDays          int
}

func NewCalendarUsecase(
	agendaRepo contracts.AgendaRepository,
	operatingHourRepo contracts.OperatingHourRepository,
	dateExceptionRepo contracts.DateExceptionRepository,
	availabilityUsecase contracts.AvailabilityUsecase,
	log *zap.Logger,
	windowDays int,
) contracts.CalendarUsecase {
	return &calendarUsecase{
		agendaRepo:          agendaRepo,
		operatingHourRepo:   operatingHourRepo,
		dateExceptionRepo:   dateExceptionRepo,
		availabilityUsecase: availabilityUsecase,
		log:                 log,
		windowDays:          windowDays,
	}
}

func (uc *calendarUsecase) ListOperatingHours(ctx context.Context, agendaID string) ([]models.OperatingHourRule, error) {
	if err := uc.ensureAgendaExists(ctx, agendaID); err != nil {
		return nil, err
	}
	rules, err := uc.operatingHourRepo.FindByAgendaID(ctx, agendaID)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []models.OperatingHourRule{}
	}
	return rules, nil
}

func (uc *calendarUsecase) CreateOperatingHour(ctx context.Context, rule *models.OperatingHourRule) (string, error) {
	if err := uc.ensureAgendaExists(ctx, rule.AgendaID); err != nil {
		return "", err
	}
	if err := validateWindowStrings(rule.StartTime, rule.EndTime); err != nil {
		return "", err
	}
	if rule.Active {
		if err := uc.ensureWeekdayFree(ctx, rule.AgendaID, rule.DayOfWeek, ""); err != nil {
			return "", err
		}
	}

	ruleID, err := uc.operatingHourRepo.Create(ctx, rule)
	if err != nil {
		return "", err
	}
	uc.invalidateWeekday(ctx, rule.AgendaID, rule.DayOfWeek)
	return ruleID, nil
}

func (uc *calendarUsecase) UpdateOperatingHour(ctx context.Context, rule *models.OperatingHourRule) error {
	if err := uc.ensureAgendaExists(ctx, rule.AgendaID); err != nil {
		return err
	}
	if err := validateWindowStrings(rule.StartTime, rule.EndTime); err != nil {
		return err
	}
	if rule.Active {
		if err := uc.ensureWeekdayFree(ctx, rule.AgendaID, rule.DayOfWeek, rule.ID); err != nil {
			return err
		}
	}

	if err := uc.operatingHourRepo.Update(ctx, rule); err != nil {
		return err
	}
	uc.invalidateWeekday(ctx, rule.AgendaID, rule.DayOfWeek)
	return nil
}

func (uc *calendarUsecase) DeleteOperatingHour(ctx context.Context, agendaID, ruleID string) error {
	if err := uc.ensureAgendaExists(ctx, agendaID); err != nil {
		return err
	}
	rules, err := uc.operatingHourRepo.FindByAgendaID(ctx, agendaID)
	if err != nil {
		return err
	}
	for _, rule := range rules {
		if rule.ID != ruleID {
			continue
		}
		if err := uc.operatingHourRepo.Delete(ctx, ruleID); err != nil {
			return err
		}
		uc.invalidateWeekday(ctx, agendaID, rule.DayOfWeek)
		return nil
	}
	return exceptions.BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, "operating-hour rule does not exist for agenda")
}

func (uc *calendarUsecase) ListDateExceptions(ctx context.Context, agendaID string) ([]models.DateException, error) {
	if err := uc.ensureAgendaExists(ctx, agendaID); err != nil {
		return nil, err
	}
	exceptionList, err := uc.dateExceptionRepo.FindByAgendaID(ctx, agendaID)
	if err != nil {
		return nil, err
	}
	if exceptionList == nil {
		exceptionList = []models.DateException{}
	}
	return exceptionList, nil
}

func (uc *calendarUsecase) CreateDateException(ctx context.Context, exception *models.DateException) (string, error) {
	if err := uc.ensureAgendaExists(ctx, exception.AgendaID); err != nil {
		return "", err
	}
	if err := validateDateException(exception); err != nil {
		return "", err
	}

	existing, err := uc.dateExceptionRepo.FindByAgendaIDAndDate(ctx, exception.AgendaID, exception.Date)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", exceptions.ErrDuplicateDateException(nil)
	}

	exceptionID, err := uc.dateExceptionRepo.Create(ctx, exception)
	if err != nil {
		return "", err
	}
	uc.availabilityUsecase.InvalidateDay(ctx, exception.AgendaID, exception.Date)
	return exceptionID, nil
}

func (uc *calendarUsecase) UpdateDateException(ctx context.Context, exception *models.DateException) error {
	if err := uc.ensureAgendaExists(ctx, exception.AgendaID); err != nil {
		return err
	}
	if err := validateDateException(exception); err != nil {
		return err
	}

	existing, err := uc.dateExceptionRepo.FindByAgendaIDAndDate(ctx, exception.AgendaID, exception.Date)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != exception.ID {
		return exceptions.ErrDuplicateDateException(nil)
	}

	if err := uc.dateExceptionRepo.Update(ctx, exception); err != nil {
		return err
	}
	uc.availabilityUsecase.InvalidateDay(ctx, exception.AgendaID, exception.Date)
	return nil
}

func (uc *calendarUsecase) DeleteDateException(ctx context.Context, agendaID, exceptionID string) error {
	if err := uc.ensureAgendaExists(ctx, agendaID); err != nil {
		return err
	}
	exceptionList, err := uc.dateExceptionRepo.FindByAgendaID(ctx, agendaID)
	if err != nil {
		return err
	}
	for _, exception := range exceptionList {
		if exception.ID != exceptionID {
			continue
		}
		if err := uc.dateExceptionRepo.Delete(ctx, exceptionID); err != nil {
			return err
		}
		uc.availabilityUsecase.InvalidateDay(ctx, agendaID, exception.Date)
		return nil
	}
	return exceptions.BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, "date exception does not exist for agenda")
}

func (uc *calendarUsecase) ensureAgendaExists(ctx context.Context, agendaID string) error {
	agenda, err := uc.agendaRepo.FindByID(ctx, agendaID)
	if err != nil {
		return err
	}
	if agenda == nil {
		return exceptions.ErrAgendaNotFound(nil)
	}
	return nil
}

// ensureWeekdayFree enforces at most one active rule per weekday at write
// time, so slot resolution never has to pick between competing rules.
func (uc *calendarUsecase) ensureWeekdayFree(ctx context.Context, agendaID string, dayOfWeek int, excludeRuleID string) error {
	rules, err := uc.operatingHourRepo.FindByAgendaID(ctx, agendaID)
	if err != nil {
		return err
	}
	for _, rule := range rules {
		if rule.ID == excludeRuleID || !rule.Active {
			continue
		}
		if rule.DayOfWeek == dayOfWeek {
			return exceptions.ErrDuplicateWeekdayRule(nil)
		}
	}
	return nil
}

// invalidateWeekday drops cached availability for upcoming dates that fall on
// the changed weekday.
func (uc *calendarUsecase) invalidateWeekday(ctx context.Context, agendaID string, dayOfWeek int) {
	today := time.Now()
	for i := 0; i < uc.windowDays; i++ {
		day := today.AddDate(0, 0, i)
		if int(day.Weekday()) != dayOfWeek {
			continue
		}
		uc.availabilityUsecase.InvalidateDay(ctx, agendaID, utils.FormatDateOnly(day))
	}
}

func validateWindowStrings(startTime, endTime string) error {
	start, err := utils.ParseClock(startTime)
	if err != nil {
		return exceptions.ErrInvalidTimeWindow(err)
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return exceptions.ErrInvalidTimeWindow(err)
	}
	if !start.Before(end) {
		return exceptions.ErrInvalidTimeWindow(errors.New("start must be before end"))
	}
	return nil
}

func validateDateException(exception *models.DateException) error {
	if _, err := utils.ParseDateOnly(exception.Date); err != nil {
		return exceptions.ErrCannotParseDate(err)
	}
	hasStart := exception.StartTime != ""
	hasEnd := exception.EndTime != ""
	if hasStart != hasEnd {
		return exceptions.ErrInvalidTimeWindow(errors.New("custom hours need both start and end"))
	}
	if hasStart {
		if err := validateWindowStrings(exception.StartTime, exception.EndTime); err != nil {
			return err
		}
	}
	if exception.MaxBookingsForDay != nil && *exception.MaxBookingsForDay < 0 {
		return exceptions.BuildNewCustomError(errors.New("negative day cap"), constvars.StatusUnprocessableEntity, constvars.ErrClientCannotProcessRequest, "maxBookingsForDay must not be negative")
	}
	return nil
}
