package availability

import (
	"fmt"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/utils"
)

const (
	ReasonTimeOccupied      = "time occupied"
	ReasonDailyLimitReached = "daily limit reached"
)

type bookingInterval struct {
	start int
	end   int
}

// GenerateSlots walks the window in duration+buffer steps and attaches an
// availability verdict to every candidate start. Candidates are emitted
// while their start lies inside the window; the last slot may run past the
// window end, matching how back-to-back sessions are booked in practice.
//
// Verdict priority when several reasons apply: conflict, then per-slot
// capacity, then the per-day cap. Only the first matching reason is
// reported. Bookings that share the candidate's exact start time are
// co-participants, so they count against per-slot capacity rather than as
// conflicts whenever the agenda admits more than one participant.
func GenerateSlots(agenda *models.Agenda, window *contracts.TimeWindow, bookings []models.Booking, exception *models.DateException) []contracts.Slot {
	if window == nil {
		return nil
	}
	if agenda == nil || agenda.DurationMinutes <= 0 {
		return nil
	}

	startMin := window.Start.Minutes()
	endMin := window.End.Minutes()
	if endMin-startMin < agenda.DurationMinutes {
		return nil
	}

	step := agenda.SlotStepMinutes()
	occupied, startCounts := indexBookings(bookings)

	dayLimit := -1
	if exception != nil && exception.MaxBookingsForDay != nil {
		dayLimit = *exception.MaxBookingsForDay
	}
	totalActive := len(occupied)

	var slots []contracts.Slot
	for candidate := startMin; candidate < endMin; candidate += step {
		slot := contracts.Slot{
			Time:      utils.MinutesToClock(candidate).String(),
			Available: true,
		}
		candidateEnd := candidate + agenda.DurationMinutes + agenda.BufferMinutes

		switch {
		case conflicts(candidate, candidateEnd, occupied, agenda.MaxParticipants):
			slot.Available = false
			slot.Reason = ReasonTimeOccupied
		case startCounts[candidate] >= agenda.MaxParticipants:
			slot.Available = false
			slot.Reason = fmt.Sprintf("fully booked (%d/%d)", startCounts[candidate], agenda.MaxParticipants)
		case dayLimit >= 0 && totalActive >= dayLimit:
			slot.Available = false
			slot.Reason = ReasonDailyLimitReached
		}

		slots = append(slots, slot)
	}
	return slots
}

// indexBookings collects active bookings as minute intervals and counts how
// many share each start minute. Rows with malformed times are skipped.
func indexBookings(bookings []models.Booking) ([]bookingInterval, map[int]int) {
	intervals := make([]bookingInterval, 0, len(bookings))
	startCounts := make(map[int]int)
	for i := range bookings {
		booking := &bookings[i]
		if !booking.IsActive() {
			continue
		}
		start, err := utils.ParseClock(booking.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseClock(booking.EndTime)
		if err != nil {
			continue
		}
		if !start.Before(end) {
			continue
		}
		intervals = append(intervals, bookingInterval{start: start.Minutes(), end: end.Minutes()})
		startCounts[start.Minutes()]++
	}
	return intervals, startCounts
}

// conflicts reports whether the candidate interval [candidate, candidateEnd)
// overlaps any booking interval [start, end). Same-start bookings are left
// to the capacity check when the agenda allows co-participants.
func conflicts(candidate, candidateEnd int, occupied []bookingInterval, maxParticipants int) bool {
	for _, interval := range occupied {
		if interval.start == candidate && maxParticipants > 1 {
			continue
		}
		if candidate < interval.end && interval.start < candidateEnd {
			return true
		}
	}
	return false
}
