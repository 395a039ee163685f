package calendars

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/dto/requests"
	"valoredash-service/internal/pkg/exceptions"
	"valoredash-service/internal/pkg/utils"
)

type CalendarController struct {
	Log             *zap.Logger
	CalendarUsecase contracts.CalendarUsecase
}

func NewCalendarController(logger *zap.Logger, calendarUsecase contracts.CalendarUsecase) *CalendarController {
	return &CalendarController{
		Log:             logger,
		CalendarUsecase: calendarUsecase,
	}
}

func (ctrl *CalendarController) ListOperatingHours(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CalendarUsecase.ListOperatingHours(ctx, agendaID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOperatingHoursSuccessMessage, result)
}

func (ctrl *CalendarController) CreateOperatingHour(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")

	request := new(requests.CreateOperatingHour)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}
	rule := &models.OperatingHourRule{
		AgendaID:  agendaID,
		DayOfWeek: *request.DayOfWeek,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Active:    active,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	ruleID, err := ctrl.CalendarUsecase.CreateOperatingHour(ctx, rule)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateOperatingHourSuccessMessage, map[string]string{"id": ruleID})
}

func (ctrl *CalendarController) UpdateOperatingHour(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")
	ruleID := chi.URLParam(r, "ruleID")

	request := new(requests.UpdateOperatingHour)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	rule := &models.OperatingHourRule{
		ID:        ruleID,
		AgendaID:  agendaID,
		DayOfWeek: *request.DayOfWeek,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Active:    request.Active,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.CalendarUsecase.UpdateOperatingHour(ctx, rule); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateOperatingHourSuccessMessage, nil)
}

func (ctrl *CalendarController) DeleteOperatingHour(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")
	ruleID := chi.URLParam(r, "ruleID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.CalendarUsecase.DeleteOperatingHour(ctx, agendaID, ruleID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteOperatingHourSuccessMessage, nil)
}

func (ctrl *CalendarController) ListDateExceptions(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CalendarUsecase.ListDateExceptions(ctx, agendaID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDateExceptionsSuccessMessage, result)
}

func (ctrl *CalendarController) CreateDateException(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")

	request := new(requests.CreateDateException)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	exception := &models.DateException{
		AgendaID:          agendaID,
		Date:              request.Date,
		IsAvailable:       request.IsAvailable,
		StartTime:         request.StartTime,
		EndTime:           request.EndTime,
		MaxBookingsForDay: request.MaxBookingsForDay,
		Reason:            request.Reason,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	exceptionID, err := ctrl.CalendarUsecase.CreateDateException(ctx, exception)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDateExceptionSuccessMessage, map[string]string{"id": exceptionID})
}

func (ctrl *CalendarController) UpdateDateException(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")
	exceptionID := chi.URLParam(r, "exceptionID")

	request := new(requests.UpdateDateException)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	exception := &models.DateException{
		ID:                exceptionID,
		AgendaID:          agendaID,
		Date:              request.Date,
		IsAvailable:       request.IsAvailable,
		StartTime:         request.StartTime,
		EndTime:           request.EndTime,
		MaxBookingsForDay: request.MaxBookingsForDay,
		Reason:            request.Reason,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.CalendarUsecase.UpdateDateException(ctx, exception); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDateExceptionSuccessMessage, nil)
}

func (ctrl *CalendarController) DeleteDateException(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")
	exceptionID := chi.URLParam(r, "exceptionID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.CalendarUsecase.DeleteDateException(ctx, agendaID, exceptionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDateExceptionSuccessMessage, nil)
}
