package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"valoredash-service/internal/pkg/constvars"
)

// Clock is a wall-clock time of day without a date or zone.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock accepts "HH:MM", "H:MM" and "HH:MM:SS" (seconds ignored).
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Clock{}, fmt.Errorf("invalid clock value %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock hour %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock minute %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("clock value %q out of range", s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinutesToClock converts minutes since midnight back to a Clock.
// Values beyond the day are clamped to 23:59.
func MinutesToClock(minutes int) Clock {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > 23*60+59 {
		minutes = 23*60 + 59
	}
	return Clock{Hour: minutes / 60, Minute: minutes % 60}
}

// ParseDateOnly parses a YYYY-MM-DD date in the process location.
func ParseDateOnly(s string) (time.Time, error) {
	parsed, err := time.ParseInLocation(constvars.DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func FormatDateOnly(t time.Time) string {
	return t.Format(constvars.DateLayout)
}

// WeekdayOf returns the weekday of a YYYY-MM-DD date, 0=Sunday.
func WeekdayOf(date string) (int, error) {
	parsed, err := ParseDateOnly(date)
	if err != nil {
		return 0, err
	}
	return int(parsed.Weekday()), nil
}
