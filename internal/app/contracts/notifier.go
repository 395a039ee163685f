package contracts

import (
	"context"
	"time"
)

// BookingEventMessage is the payload published to the booking events queue
// whenever a booking is created or cancelled.
type BookingEventMessage struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	AgendaID   string    `json:"agenda_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

type BookingEventPublisher interface {
	Publish(ctx context.Context, message BookingEventMessage) error
}
