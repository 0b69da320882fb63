package dateutil

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the system local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// TodayIn returns today's date string (YYYY-MM-DD) in the specified timezone.
// This ensures that "today" is determined by the user's configured timezone,
// not the system timezone.
func TodayIn(timezone string) (string, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", err
	}
	return time.Now().In(loc).Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// ParseDay parses a date string in the standard format (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", day, err)
	}
	return t, nil
}

// ValidDay reports whether the string is a well-formed YYYY-MM-DD date.
func ValidDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}

// DaysBetween returns the absolute number of calendar days separating two
// date strings. The order of the arguments does not matter.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDay(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDay(b)
	if err != nil {
		return 0, err
	}
	days := int(tb.Sub(ta).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days, nil
}

// AddDays returns the date string n calendar days after day (n may be negative).
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// LastNDays returns the n most recent date strings ending at today, oldest
// first. It returns an error if today is malformed or n is not positive.
func LastNDays(n int, today string) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("day count must be positive, got %d", n)
	}
	end, err := ParseDay(today)
	if err != nil {
		return nil, err
	}
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = end.AddDate(0, 0, i-n+1).Format(constants.DateFormat)
	}
	return days, nil
}

// Weekday returns the short weekday label ("Mon") for a date string.
func Weekday(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.Weekday().String()[:3], nil
}
