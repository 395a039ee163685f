package availability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/exceptions"
	"valoredash-service/internal/pkg/utils"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

// GetDayAvailability answers GET /agendas/{agendaID}/availability?date=YYYY-MM-DD.
func (ctrl *AvailabilityController) GetDayAvailability(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, "agendaID")
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(errors.New("date query parameter is required")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.GetDayAvailability(ctx, agendaID, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, result)
}
