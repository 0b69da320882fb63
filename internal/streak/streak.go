// Package streak derives habit statistics from a set of completion dates.
//
// All functions are pure: they take a slice of YYYY-MM-DD date strings plus an
// explicit reference day and return derived values without touching shared
// state. Callers are expected to pass unique dates; duplicates are treated as
// a caller bug. Malformed date strings are dropped before any comparison so a
// bad entry can never poison the arithmetic.
package streak

import (
	"math"
	"sort"

	"github.com/habitflow/habitflow/internal/dateutil"
)

// DayStatus is one day of the trailing-week completion view.
type DayStatus struct {
	Day       string `json:"day"`     // YYYY-MM-DD
	Weekday   string `json:"weekday"` // short label, e.g. "Mon"
	Completed bool   `json:"completed"`
}

// validDays filters out entries that do not parse as YYYY-MM-DD.
func validDays(dates []string) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if dateutil.ValidDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// Calculate returns the current streak: the number of consecutive calendar
// days, ending at the most recent completion, with no gap greater than one
// day. The streak only survives if the most recent completion is today or
// yesterday; otherwise it is broken by absence and the result is 0.
func Calculate(dates []string, today string) int {
	days := validDays(dates)
	if len(days) == 0 || !dateutil.ValidDay(today) {
		return 0
	}

	// Most recent first.
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	gap, err := dateutil.DaysBetween(days[0], today)
	if err != nil || gap > 1 {
		return 0
	}

	count := 1
	for i := 1; i < len(days); i++ {
		step, err := dateutil.DaysBetween(days[i], days[i-1])
		if err != nil || step != 1 {
			break
		}
		count++
	}
	return count
}

// Longest returns the length of the longest run of consecutive calendar days
// anywhere in the history. An empty history returns 0.
func Longest(dates []string) int {
	days := validDays(dates)
	if len(days) == 0 {
		return 0
	}

	sort.Strings(days)

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		step, err := dateutil.DaysBetween(days[i-1], days[i])
		if err == nil && step == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// CompletedOn reports whether day is present in the completion set.
func CompletedOn(dates []string, day string) bool {
	for _, d := range dates {
		if d == day {
			return true
		}
	}
	return false
}

// CompletedToday reports whether today's date is present in the completion set.
func CompletedToday(dates []string) bool {
	return CompletedOn(dates, dateutil.Today())
}

// CompletionRate returns the percentage of totalDays covered by completions,
// rounded to the nearest integer. A zero totalDays yields 0.
func CompletionRate(dates []string, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	return int(math.Round(float64(len(dates)) / float64(totalDays) * 100))
}

// WeeklyCompletion returns one DayStatus per day of the trailing 7-day window
// (today-6 .. today), oldest first. It is a rendering helper; a malformed
// today yields an empty slice.
func WeeklyCompletion(dates []string, today string) []DayStatus {
	window, err := dateutil.LastNDays(7, today)
	if err != nil {
		return nil
	}

	out := make([]DayStatus, 0, len(window))
	for _, day := range window {
		wd, err := dateutil.Weekday(day)
		if err != nil {
			continue
		}
		out = append(out, DayStatus{
			Day:       day,
			Weekday:   wd,
			Completed: CompletedOn(dates, day),
		})
	}
	return out
}
