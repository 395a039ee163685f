package models

// OperatingHourRule opens a weekly recurring window for an agenda.
// DayOfWeek follows time.Weekday numbering, 0 = Sunday.
type OperatingHourRule struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	AgendaID  string `json:"agenda_id" bson:"agendaId"`
	DayOfWeek int    `json:"day_of_week" bson:"dayOfWeek"`
	StartTime string `json:"start_time" bson:"startTime"`
	EndTime   string `json:"end_time" bson:"endTime"`
	Active    bool   `json:"active" bson:"active"`
	TimeModel `bson:",inline"`
}

// DateException overrides the weekly rule for one calendar date. An
// unavailable exception closes the day outright. An available exception
// with StartTime/EndTime overrides the hours; with both empty it keeps
// the weekly hours and only applies MaxBookingsForDay.
type DateException struct {
	ID                string `json:"id" bson:"_id,omitempty"`
	AgendaID          string `json:"agenda_id" bson:"agendaId"`
	Date              string `json:"date" bson:"date"`
	IsAvailable       bool   `json:"is_available" bson:"isAvailable"`
	StartTime         string `json:"start_time,omitempty" bson:"startTime,omitempty"`
	EndTime           string `json:"end_time,omitempty" bson:"endTime,omitempty"`
	MaxBookingsForDay *int   `json:"max_bookings_for_day,omitempty" bson:"maxBookingsForDay,omitempty"`
	Reason            string `json:"reason,omitempty" bson:"reason,omitempty"`
	TimeModel         `bson:",inline"`
}

// HasCustomHours reports whether the exception carries its own window
// instead of inheriting the weekly rule hours.
func (e *DateException) HasCustomHours() bool {
	return e.StartTime != "" && e.EndTime != ""
}
