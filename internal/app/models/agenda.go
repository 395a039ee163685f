package models

import (
	"errors"

	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/exceptions"
)

// Agenda is a bookable resource such as a professional's calendar or a
// meeting room. Slot geometry lives here so every consumer computes the
// same grid for the same agenda.
type Agenda struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	Name            string `json:"name" bson:"name"`
	DurationMinutes int    `json:"duration_minutes" bson:"durationMinutes"`
	BufferMinutes   int    `json:"buffer_minutes" bson:"bufferMinutes"`
	MaxParticipants int    `json:"max_participants" bson:"maxParticipants"`
	Active          bool   `json:"active" bson:"active"`
	TimeModel       `bson:",inline"`
}

// SlotStepMinutes is the distance between consecutive slot starts.
func (a *Agenda) SlotStepMinutes() int {
	return a.DurationMinutes + a.BufferMinutes
}

func (a *Agenda) Validate() error {
	switch {
	case a.Name == "":
		return exceptions.BuildNewCustomError(errors.New("agenda name is empty"), constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidAgendaConfig, "agenda name must not be empty")
	case a.DurationMinutes <= 0:
		return exceptions.BuildNewCustomError(errors.New("duration must be positive"), constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidAgendaConfig, "agenda durationMinutes must be greater than zero")
	case a.BufferMinutes < 0:
		return exceptions.BuildNewCustomError(errors.New("buffer must not be negative"), constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidAgendaConfig, "agenda bufferMinutes must not be negative")
	case a.MaxParticipants <= 0:
		return exceptions.BuildNewCustomError(errors.New("max participants must be positive"), constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidAgendaConfig, "agenda maxParticipants must be greater than zero")
	}
	return nil
}
