package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           = contextKey("requestID")
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY = contextKey("isClientRequestID")
	CONTEXT_UID                      = contextKey("uid")
)

const (
	MongoCollectionAgendas        = "agendas"
	MongoCollectionOperatingHours = "operating_hours"
	MongoCollectionDateExceptions = "date_exceptions"
	MongoCollectionBookings       = "bookings"
)

const (
	// CacheKeyDayAvailability is formatted with (agendaID, date).
	CacheKeyDayAvailability = "availability:day:%s:%s"
	// BookingDayLockKey is formatted with (agendaID, date).
	BookingDayLockKey = "booking:lock:day:%s:%s"
	// AvailabilityWarmLeaderKey elects a single cache-warm worker across instances.
	AvailabilityWarmLeaderKey = "availability:warm:leader"
)

const (
	DateLayout = "2006-01-02"
)

const (
	BookingEventCreated   = "booking.created"
	BookingEventCancelled = "booking.cancelled"
)
