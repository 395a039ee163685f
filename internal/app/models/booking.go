package models

type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

type Booking struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	AgendaID    string        `json:"agenda_id" bson:"agendaId"`
	Date        string        `json:"date" bson:"date"`
	StartTime   string        `json:"start_time" bson:"startTime"`
	EndTime     string        `json:"end_time" bson:"endTime"`
	CustomerRef string        `json:"customer_ref,omitempty" bson:"customerRef,omitempty"`
	Status      BookingStatus `json:"status" bson:"status"`
	TimeModel   `bson:",inline"`
}

// IsActive reports whether the booking still occupies its slot.
// Cancelled and no-show bookings release capacity.
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusNoShow
}
