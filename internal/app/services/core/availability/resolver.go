package availability

import (
	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/utils"
)

const (
	ReasonDayClosed       = "not available on this date"
	ReasonNoWeeklyRule    = "no operating hours for this day"
	ReasonInvalidDate     = "invalid date"
	ReasonMalformedWindow = "operating hours are misconfigured"
)

// ResolveWindow determines the effective bookable window for (date, rules,
// exception). A date exception always wins over the weekly rule: an
// unavailable exception closes the date outright, an available exception
// with explicit times overrides the hours, and an available exception
// without times keeps the weekly-rule hours.
//
// A nil window means the day is closed; the returned reason says why.
// Malformed stored clock strings close the day instead of failing, so one
// bad row degrades to "no availability" rather than breaking the query.
func ResolveWindow(date string, rules []models.OperatingHourRule, exception *models.DateException) (*contracts.TimeWindow, string) {
	weekday, err := utils.WeekdayOf(date)
	if err != nil {
		return nil, ReasonInvalidDate
	}

	if exception != nil {
		if !exception.IsAvailable {
			reason := exception.Reason
			if reason == "" {
				reason = ReasonDayClosed
			}
			return nil, reason
		}
		if exception.HasCustomHours() {
			return parseWindow(exception.StartTime, exception.EndTime)
		}
		// Available without explicit times: fall through to the weekly rule.
	}

	for _, rule := range rules {
		if !rule.Active || rule.DayOfWeek != weekday {
			continue
		}
		return parseWindow(rule.StartTime, rule.EndTime)
	}
	return nil, ReasonNoWeeklyRule
}

func parseWindow(startTime, endTime string) (*contracts.TimeWindow, string) {
	start, err := utils.ParseClock(startTime)
	if err != nil {
		return nil, ReasonMalformedWindow
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return nil, ReasonMalformedWindow
	}
	if !start.Before(end) {
		return nil, ReasonMalformedWindow
	}
	return &contracts.TimeWindow{Start: start, End: end}, ""
}
