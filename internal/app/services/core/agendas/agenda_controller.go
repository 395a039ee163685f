package agendas

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

type AgendaController struct {
	Log           *zap.Logger
	AgendaUsecase contracts.AgendaUsecase
}

func NewAgendaController(logger *zap.Logger, agendaUsecase contracts.AgendaUsecase) *AgendaController {
	return &AgendaController{
		Log:           logger,
		AgendaUsecase: agendaUsecase,
	}
}

func (ctrl *AgendaController) ListAgendas(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AgendaUsecase.ListAgendas(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAgendasSuccessMessage, result)
}

func (ctrl *AgendaController) GetAgendaByID(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AgendaUsecase.GetAgendaByID(ctx, agendaID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAgendaSuccessMessage, result)
}

func (ctrl *AgendaController) CreateAgenda(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAgenda)
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
	agenda := &models.Agenda{
		Name:            request.Name,
		DurationMinutes: request.DurationMinutes,
		BufferMinutes:   request.BufferMinutes,
		MaxParticipants: request.MaxParticipants,
		Active:          active,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	agendaID, err := ctrl.AgendaUsecase.CreateAgenda(ctx, agenda)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAgendaSuccessMessage, map[string]string{"id": agendaID})
}

func (ctrl *AgendaController) UpdateAgenda(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")

	request := new(requests.UpdateAgenda)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	agenda := &models.Agenda{
		ID:              agendaID,
		Name:            request.Name,
		DurationMinutes: request.DurationMinutes,
		BufferMinutes:   request.BufferMinutes,
		MaxParticipants: request.MaxParticipants,
		Active:          request.Active,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AgendaUsecase.UpdateAgenda(ctx, agenda); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAgendaSuccessMessage, nil)
}

func (ctrl *AgendaController) DeleteAgenda(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AgendaUsecase.DeleteAgenda(ctx, agendaID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAgendaSuccessMessage, nil)
}
