package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	t.Run("accepts HH:MM", func(t *testing.T) {
		clock, err := ParseClock("09:30")
		assert.NoError(t, err)
		assert.Equal(t, Clock{Hour: 9, Minute: 30}, clock)
	})

	t.Run("accepts single digit hour", func(t *testing.T) {
		clock, err := ParseClock("9:05")
		assert.NoError(t, err)
		assert.Equal(t, "09:05", clock.String())
	})

	t.Run("ignores seconds", func(t *testing.T) {
		clock, err := ParseClock("17:45:30")
		assert.NoError(t, err)
		assert.Equal(t, Clock{Hour: 17, Minute: 45}, clock)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, input := range []string{"", "nine", "12", "24:00", "12:60", "-1:00", "1:2:3:4"} {
			_, err := ParseClock(input)
			assert.Error(t, err, "input %q should not parse", input)
		}
	})
}

func TestClockArithmetic(t *testing.T) {
	assert.Equal(t, 570, Clock{Hour: 9, Minute: 30}.Minutes())
	assert.True(t, Clock{Hour: 9}.Before(Clock{Hour: 9, Minute: 1}))
	assert.False(t, Clock{Hour: 9}.Before(Clock{Hour: 9}))
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "09:40", MinutesToClock(580).String())
	assert.Equal(t, "00:00", MinutesToClock(-5).String(), "negative values clamp to midnight")
	assert.Equal(t, "23:59", MinutesToClock(25*60).String(), "overflow clamps to end of day")
}

func TestWeekdayOf(t *testing.T) {
	day, err := WeekdayOf("2026-08-31")
	assert.NoError(t, err)
	assert.Equal(t, 1, day, "2026-08-31 is a Monday")

	day, err = WeekdayOf("2026-08-30")
	assert.NoError(t, err)
	assert.Equal(t, 0, day, "2026-08-30 is a Sunday")

	_, err = WeekdayOf("31/08/2026")
	assert.Error(t, err)
}
