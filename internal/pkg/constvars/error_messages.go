package constvars

// Client messages are safe to return to the dashboard as-is.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Your session is invalid or has expired, please login again"
	ErrClientAgendaNotFound                = "Agenda not found"
	ErrClientBookingNotFound               = "Booking not found"
	ErrClientInvalidAgendaConfig           = "Agenda configuration is invalid"
	ErrClientSlotNotBookable               = "The requested time is not available"
	ErrClientSlotOutsideHours              = "The requested time is outside the operating hours"
	ErrClientDuplicateWeekdayRule          = "An active operating-hour rule already exists for this weekday"
	ErrClientDuplicateDateException        = "A date exception already exists for this date"
	ErrClientInvalidTimeWindow             = "Start time must be a valid HH:MM earlier than end time"
	ErrClientAgendaBusy                    = "The agenda is being updated by another request, please retry"
)

// Dev messages end up in logs only.
const (
	ErrDevInvalidRequestPayload    = "invalid request payload"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "failed to parse JSON body"
	ErrDevCannotParseDate          = "failed to parse date, expected YYYY-MM-DD"
	ErrDevCannotParseClock         = "failed to parse time of day, expected HH:MM"
	ErrDevCannotMarshalJSON        = "failed to marshal value to JSON"
	ErrDevDBFailedToFindDocument   = "failed to find document on database"
	ErrDevDBFailedToInsertDocument = "failed to insert document to database"
	ErrDevDBFailedToUpdateDocument = "failed to update document on database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document on database"
	ErrDevDBFailedToIterateCursor  = "failed to iterate database cursor"
	ErrDevDBStringNotObjectID      = "supplied string is not a valid ObjectID"
	ErrDevRedisGetData             = "failed to get data from redis"
	ErrDevRedisSetData             = "failed to set data to redis"
	ErrDevRedisDeleteData          = "failed to delete data from redis"
	ErrDevRedisUnlock              = "failed to release redis lock"
	ErrDevRabbitMQPublish          = "failed to publish message to queue: %s"
	ErrDevAuthTokenMissing         = "authorization token is missing"
	ErrDevAuthTokenInvalid         = "authorization token is invalid or expired"
	ErrDevAgendaNotFound           = "agenda does not exist"
	ErrDevBookingNotFound          = "booking does not exist"
)
