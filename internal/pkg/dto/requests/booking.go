package requests

type CreateBooking struct {
	AgendaID    string `json:"agenda_id" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required"`
	CustomerRef string `json:"customer_ref"`
}
