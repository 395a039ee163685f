package exceptions

import (
	"fmt"
	"net/http"

	"valoredash-service/internal/pkg/constvars"
)

var (
	ErrDBFailedToFindDocument = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrDBFailedToInsertDocument = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrDBFailedToUpdateDocument = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrDBFailedToDeleteDocument = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrDBFailedToIterateCursor = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateCursor)
	}
	ErrDBStringNotObjectID = func(err error) error {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	ErrRedisGetData = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSetData = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDeleteData = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	ErrCannotParseJSON = func(err error) error {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error) error {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrCannotParseClock = func(err error) error {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseClock)
	}
	ErrCannotMarshalJSON = func(err error) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	ErrInputValidation = func(err error, clientMessage string) error {
		return BuildNewCustomError(err, http.StatusUnprocessableEntity, clientMessage, constvars.ErrDevValidationFailed)
	}

	ErrRabbitMQPublishMessage = func(err error, queue string) error {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queue))
	}

	ErrTokenMissing = func(err error) error {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) error {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}

	ErrAgendaNotFound = func(err error) error {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientAgendaNotFound, constvars.ErrDevAgendaNotFound)
	}
	ErrBookingNotFound = func(err error) error {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientBookingNotFound, constvars.ErrDevBookingNotFound)
	}
	ErrSlotNotBookable = func(err error, reason string) error {
		msg := constvars.ErrClientSlotNotBookable
		if reason != "" {
			msg = fmt.Sprintf("%s: %s", constvars.ErrClientSlotNotBookable, reason)
		}
		return BuildNewCustomError(err, http.StatusConflict, msg, "requested slot failed availability verdict")
	}
	ErrSlotOutsideOperatingHours = func(err error) error {
		return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientSlotOutsideHours, "requested slot is outside the resolved day window")
	}
	ErrDuplicateWeekdayRule = func(err error) error {
		return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientDuplicateWeekdayRule, "active operating-hour rule already exists for weekday")
	}
	ErrDuplicateDateException = func(err error) error {
		return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientDuplicateDateException, "date exception already exists for date")
	}
	ErrInvalidTimeWindow = func(err error) error {
		return BuildNewCustomError(err, http.StatusUnprocessableEntity, constvars.ErrClientInvalidTimeWindow, "time window is invalid")
	}
	ErrAgendaDayLocked = func(err error) error {
		return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientAgendaBusy, "failed to acquire booking day lock")
	}
)
