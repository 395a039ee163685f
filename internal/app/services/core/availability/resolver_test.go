package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"valoredash-service/internal/app/models"
)

// 2026-08-31 is a Monday.
const mondayDate = "2026-08-31"

func mondayRule(start, end string, active bool) models.OperatingHourRule {
	return models.OperatingHourRule{
		ID:        "rule-mon",
		AgendaID:  "agenda-1",
		DayOfWeek: 1,
		StartTime: start,
		EndTime:   end,
		Active:    active,
	}
}

func TestResolveWindowWeeklyRule(t *testing.T) {
	t.Run("active rule for the weekday opens the day", func(t *testing.T) {
		rules := []models.OperatingHourRule{mondayRule("09:00", "17:00", true)}

		window, reason := ResolveWindow(mondayDate, rules, nil)

		assert.NotNil(t, window)
		assert.Empty(t, reason)
		assert.Equal(t, "09:00", window.Start.String())
		assert.Equal(t, "17:00", window.End.String())
	})

	t.Run("inactive rule closes the day", func(t *testing.T) {
		rules := []models.OperatingHourRule{mondayRule("09:00", "17:00", false)}

		window, reason := ResolveWindow(mondayDate, rules, nil)

		assert.Nil(t, window)
		assert.Equal(t, ReasonNoWeeklyRule, reason)
	})

	t.Run("rule for another weekday does not apply", func(t *testing.T) {
		rules := []models.OperatingHourRule{
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00", Active: true},
		}

		window, reason := ResolveWindow(mondayDate, rules, nil)

		assert.Nil(t, window)
		assert.Equal(t, ReasonNoWeeklyRule, reason)
	})

	t.Run("malformed rule hours close the day instead of failing", func(t *testing.T) {
		rules := []models.OperatingHourRule{mondayRule("nine", "17:00", true)}

		window, reason := ResolveWindow(mondayDate, rules, nil)

		assert.Nil(t, window)
		assert.Equal(t, ReasonMalformedWindow, reason)
	})

	t.Run("inverted rule hours close the day", func(t *testing.T) {
		rules := []models.OperatingHourRule{mondayRule("17:00", "09:00", true)}

		window, _ := ResolveWindow(mondayDate, rules, nil)
		assert.Nil(t, window)
	})
}

func TestResolveWindowDateException(t *testing.T) {
	rules := []models.OperatingHourRule{mondayRule("09:00", "17:00", true)}

	t.Run("unavailable exception closes the day regardless of the rule", func(t *testing.T) {
		exception := &models.DateException{
			Date:        mondayDate,
			IsAvailable: false,
			Reason:      "public holiday",
		}

		window, reason := ResolveWindow(mondayDate, rules, exception)

		assert.Nil(t, window)
		assert.Equal(t, "public holiday", reason)
	})

	t.Run("unavailable exception without reason uses the default", func(t *testing.T) {
		exception := &models.DateException{Date: mondayDate, IsAvailable: false}

		window, reason := ResolveWindow(mondayDate, rules, exception)

		assert.Nil(t, window)
		assert.Equal(t, ReasonDayClosed, reason)
	})

	t.Run("available exception with custom hours overrides the rule", func(t *testing.T) {
		exception := &models.DateException{
			Date:        mondayDate,
			IsAvailable: true,
			StartTime:   "13:00",
			EndTime:     "15:00",
		}

		window, reason := ResolveWindow(mondayDate, rules, exception)

		assert.NotNil(t, window)
		assert.Empty(t, reason)
		assert.Equal(t, "13:00", window.Start.String())
		assert.Equal(t, "15:00", window.End.String())
	})

	t.Run("available exception without times keeps the weekly hours", func(t *testing.T) {
		exception := &models.DateException{Date: mondayDate, IsAvailable: true}

		window, _ := ResolveWindow(mondayDate, rules, exception)

		assert.NotNil(t, window)
		assert.Equal(t, "09:00", window.Start.String())
		assert.Equal(t, "17:00", window.End.String())
	})

	t.Run("available exception without times and no rule closes the day", func(t *testing.T) {
		exception := &models.DateException{Date: mondayDate, IsAvailable: true}

		window, reason := ResolveWindow(mondayDate, nil, exception)

		assert.Nil(t, window)
		assert.Equal(t, ReasonNoWeeklyRule, reason)
	})

	t.Run("invalid date closes the day", func(t *testing.T) {
		window, reason := ResolveWindow("31-08-2026", rules, nil)

		assert.Nil(t, window)
		assert.Equal(t, ReasonInvalidDate, reason)
	})
}
