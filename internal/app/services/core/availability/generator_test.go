package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/utils"
)

func testAgenda(duration, buffer, maxParticipants int) *models.Agenda {
	return &models.Agenda{
		ID:              "agenda-1",
		Name:            "Consultation",
		DurationMinutes: duration,
		BufferMinutes:   buffer,
		MaxParticipants: maxParticipants,
		Active:          true,
	}
}

func window(start, end string) *contracts.TimeWindow {
	s, _ := utils.ParseClock(start)
	e, _ := utils.ParseClock(end)
	return &contracts.TimeWindow{Start: s, End: e}
}

func slotTimes(slots []contracts.Slot) []string {
	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}
	return times
}

func TestGenerateSlotsSpacing(t *testing.T) {
	t.Run("steps are duration plus buffer", func(t *testing.T) {
		slots := GenerateSlots(testAgenda(30, 10, 1), window("09:00", "10:00"), nil, nil)

		assert.Equal(t, []string{"09:00", "09:40"}, slotTimes(slots))
		for _, slot := range slots {
			assert.True(t, slot.Available, "slot %s should be free with no bookings", slot.Time)
			assert.Empty(t, slot.Reason)
		}
	})

	t.Run("window shorter than one duration yields no slots", func(t *testing.T) {
		slots := GenerateSlots(testAgenda(30, 0, 1), window("09:00", "09:20"), nil, nil)
		assert.Empty(t, slots)
	})

	t.Run("zero duration yields no slots", func(t *testing.T) {
		slots := GenerateSlots(testAgenda(0, 10, 1), window("09:00", "17:00"), nil, nil)
		assert.Empty(t, slots)
	})

	t.Run("nil window yields no slots", func(t *testing.T) {
		slots := GenerateSlots(testAgenda(30, 0, 1), nil, nil, nil)
		assert.Empty(t, slots)
	})
}

func TestGenerateSlotsConflicts(t *testing.T) {
	agenda := testAgenda(60, 0, 1)
	bookings := []models.Booking{
		{AgendaID: "agenda-1", Date: "2026-08-31", StartTime: "10:00", EndTime: "11:00", Status: models.BookingStatusScheduled},
	}

	slots := GenerateSlots(agenda, window("09:00", "13:00"), bookings, nil)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00"}, slotTimes(slots))

	t.Run("occupied slot is blocked", func(t *testing.T) {
		assert.False(t, slots[1].Available)
		assert.Equal(t, ReasonTimeOccupied, slots[1].Reason)
	})

	t.Run("slot starting at booking end is free", func(t *testing.T) {
		assert.True(t, slots[2].Available, "11:00 starts exactly when the booking ends")
	})

	t.Run("surrounding slots stay free", func(t *testing.T) {
		assert.True(t, slots[0].Available)
		assert.True(t, slots[3].Available)
	})

	t.Run("cancelled bookings release the slot", func(t *testing.T) {
		cancelled := []models.Booking{
			{StartTime: "10:00", EndTime: "11:00", Status: models.BookingStatusCancelled},
		}
		free := GenerateSlots(agenda, window("09:00", "13:00"), cancelled, nil)
		for _, slot := range free {
			assert.True(t, slot.Available, "slot %s should ignore cancelled bookings", slot.Time)
		}
	})
}

func TestGenerateSlotsBufferConflicts(t *testing.T) {
	// The candidate occupies [start, start+duration+buffer), so a buffer
	// running into an existing booking blocks the candidate.
	agenda := testAgenda(30, 30, 1)
	bookings := []models.Booking{
		{StartTime: "10:00", EndTime: "10:30", Status: models.BookingStatusScheduled},
	}

	slots := GenerateSlots(agenda, window("09:00", "12:00"), bookings, nil)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotTimes(slots))

	assert.True(t, slots[0].Available, "09:00 buffer ends exactly at the booking start")
	assert.False(t, slots[1].Available)
	assert.Equal(t, ReasonTimeOccupied, slots[1].Reason)
	assert.True(t, slots[2].Available)
}

func TestGenerateSlotsPerSlotCapacity(t *testing.T) {
	agenda := testAgenda(60, 0, 2)
	bookings := []models.Booking{
		{StartTime: "14:00", EndTime: "15:00", Status: models.BookingStatusScheduled},
		{StartTime: "14:00", EndTime: "15:00", Status: models.BookingStatusConfirmed},
	}

	slots := GenerateSlots(agenda, window("14:00", "17:00"), bookings, nil)
	assert.Equal(t, []string{"14:00", "15:00", "16:00"}, slotTimes(slots))

	t.Run("full slot reports the count", func(t *testing.T) {
		assert.False(t, slots[0].Available)
		assert.Equal(t, "fully booked (2/2)", slots[0].Reason)
	})

	t.Run("half-full slot stays open", func(t *testing.T) {
		half := []models.Booking{
			{StartTime: "14:00", EndTime: "15:00", Status: models.BookingStatusScheduled},
		}
		open := GenerateSlots(agenda, window("14:00", "17:00"), half, nil)
		assert.True(t, open[0].Available, "one of two seats is still free")
	})

	t.Run("later slots unaffected", func(t *testing.T) {
		assert.True(t, slots[1].Available)
		assert.True(t, slots[2].Available)
	})
}

func TestGenerateSlotsDayLimit(t *testing.T) {
	agenda := testAgenda(60, 0, 1)
	limit := 1
	exception := &models.DateException{
		AgendaID:          "agenda-1",
		Date:              "2026-08-31",
		IsAvailable:       true,
		MaxBookingsForDay: &limit,
	}
	bookings := []models.Booking{
		{StartTime: "10:00", EndTime: "11:00", Status: models.BookingStatusScheduled},
	}

	slots := GenerateSlots(agenda, window("09:00", "12:00"), bookings, exception)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotTimes(slots))

	t.Run("conflict reason wins on the occupied slot", func(t *testing.T) {
		assert.False(t, slots[1].Available)
		assert.Equal(t, ReasonTimeOccupied, slots[1].Reason)
	})

	t.Run("every other slot reports the day limit", func(t *testing.T) {
		assert.False(t, slots[0].Available)
		assert.Equal(t, ReasonDailyLimitReached, slots[0].Reason)
		assert.False(t, slots[2].Available)
		assert.Equal(t, ReasonDailyLimitReached, slots[2].Reason)
	})
}

func TestGenerateSlotsIdempotent(t *testing.T) {
	agenda := testAgenda(45, 15, 2)
	bookings := []models.Booking{
		{StartTime: "09:00", EndTime: "09:45", Status: models.BookingStatusScheduled},
		{StartTime: "11:00", EndTime: "11:45", Status: models.BookingStatusScheduled},
	}

	first := GenerateSlots(agenda, window("09:00", "13:00"), bookings, nil)
	second := GenerateSlots(agenda, window("09:00", "13:00"), bookings, nil)
	assert.Equal(t, first, second, "same inputs must produce the same verdicts")
}
