package contracts

import (
	"context"

	"valoredash-service/internal/pkg/utils"
)

// TimeWindow is the effective bookable interval of one day, half-open.
type TimeWindow struct {
	Start utils.Clock
	End   utils.Clock
}

// Slot is a candidate booking start time with its availability verdict.
// It is derived, never persisted.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// DayAvailability is the full computed answer for one (agenda, date) pair.
type DayAvailability struct {
	AgendaID string `json:"agenda_id"`
	Date     string `json:"date"`
	Open     bool   `json:"open"`
	Reason   string `json:"reason,omitempty"`
	Slots    []Slot `json:"slots"`
}

type AvailabilityUsecase interface {
	GetDayAvailability(ctx context.Context, agendaID, date string) (*DayAvailability, error)
	InvalidateDay(ctx context.Context, agendaID, date string)
	WarmAgendaWindow(ctx context.Context, agendaID string, days int) error
}
