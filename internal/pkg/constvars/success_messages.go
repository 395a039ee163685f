package constvars

const (
	GetAvailabilitySuccessMessage = "Successfully computed availability"

	GetAgendasSuccessMessage   = "Successfully fetched agendas"
	GetAgendaSuccessMessage    = "Successfully fetched agenda"
	CreateAgendaSuccessMessage = "Successfully created agenda"
	UpdateAgendaSuccessMessage = "Successfully updated agenda"
	DeleteAgendaSuccessMessage = "Successfully deleted agenda"

	GetOperatingHoursSuccessMessage   = "Successfully fetched operating hours"
	CreateOperatingHourSuccessMessage = "Successfully created operating-hour rule"
	UpdateOperatingHourSuccessMessage = "Successfully updated operating-hour rule"
	DeleteOperatingHourSuccessMessage = "Successfully deleted operating-hour rule"

	GetDateExceptionsSuccessMessage   = "Successfully fetched date exceptions"
	CreateDateExceptionSuccessMessage = "Successfully created date exception"
	UpdateDateExceptionSuccessMessage = "Successfully updated date exception"
	DeleteDateExceptionSuccessMessage = "Successfully deleted date exception"

	CreateBookingSuccessMessage = "Successfully created booking"
	CancelBookingSuccessMessage = "Successfully cancelled booking"
)
