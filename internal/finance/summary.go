// Package finance computes read-time aggregations over expense records.
// Nothing here is persisted; every summary is derived from the current
// expense collection and a reference day.
package finance

import (
	"time"

	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/models"
)

// CategoryTotal is an amount aggregated under one category key.
type CategoryTotal struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
}

// Summary is the derived spending overview for a collection of expenses.
type Summary struct {
	Total       float64         `json:"total"`
	Count       int             `json:"count"`
	ByCategory  []CategoryTotal `json:"by_category"` // descending by amount
	TopCategory string          `json:"top_category"`

	ThisWeek  float64 `json:"this_week"` // trailing 7 days ending today
	LastWeek  float64 `json:"last_week"` // the 7 days before that
	WeekDelta float64 `json:"week_delta"`

	ThisMonth  float64 `json:"this_month"` // calendar month of today
	LastMonth  float64 `json:"last_month"`
	MonthDelta float64 `json:"month_delta"`
}

// Summarize computes the spending overview as of today (YYYY-MM-DD).
// Expenses with malformed dates count toward the grand total but are excluded
// from the windowed figures.
func Summarize(expenses []models.Expense, today string) Summary {
	s := Summary{Count: len(expenses)}

	byCategory := make(map[string]float64)
	for _, e := range expenses {
		s.Total += e.Amount
		byCategory[e.Category] += e.Amount
	}

	for _, c := range Categories {
		amount, ok := byCategory[c.Key]
		if !ok {
			continue
		}
		s.ByCategory = append(s.ByCategory, CategoryTotal{
			Category: c.Key,
			Label:    c.Label,
			Amount:   amount,
		})
	}
	// Any key outside the fixed table still shows up, labeled by its key.
	for key, amount := range byCategory {
		if !ValidCategory(key) {
			s.ByCategory = append(s.ByCategory, CategoryTotal{Category: key, Label: key, Amount: amount})
		}
	}
	sortCategoryTotals(s.ByCategory)
	if len(s.ByCategory) > 0 {
		s.TopCategory = s.ByCategory[0].Category
	}

	ref, err := dateutil.ParseDay(today)
	if err != nil {
		return s
	}

	weekStart := ref.AddDate(0, 0, -6)
	prevWeekStart := ref.AddDate(0, 0, -13)
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	for _, e := range expenses {
		d, err := dateutil.ParseDay(e.Date)
		if err != nil {
			continue
		}
		if !d.Before(weekStart) && !d.After(ref) {
			s.ThisWeek += e.Amount
		}
		if !d.Before(prevWeekStart) && d.Before(weekStart) {
			s.LastWeek += e.Amount
		}
		if !d.Before(monthStart) && !d.After(ref) {
			s.ThisMonth += e.Amount
		}
		if !d.Before(prevMonthStart) && d.Before(monthStart) {
			s.LastMonth += e.Amount
		}
	}
	s.WeekDelta = s.ThisWeek - s.LastWeek
	s.MonthDelta = s.ThisMonth - s.LastMonth

	return s
}

func sortCategoryTotals(totals []CategoryTotal) {
	// Insertion sort keeps ties in table order; the slice is at most a
	// handful of categories long.
	for i := 1; i < len(totals); i++ {
		for j := i; j > 0 && totals[j].Amount > totals[j-1].Amount; j-- {
			totals[j], totals[j-1] = totals[j-1], totals[j]
		}
	}
}
