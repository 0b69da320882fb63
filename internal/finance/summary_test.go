package finance

import (
	"math"
	"testing"

	"github.com/habitflow/habitflow/internal/models"
)

func expense(amount float64, category, date string) models.Expense {
	return models.Expense{Amount: amount, Category: category, Date: date}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, "2024-06-15")
	if s.Total != 0 || s.Count != 0 || s.TopCategory != "" {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestSummarizeTotalsAndTopCategory(t *testing.T) {
	expenses := []models.Expense{
		expense(10, "food", "2024-06-14"),
		expense(25, "food", "2024-06-15"),
		expense(30, "transport", "2024-06-13"),
	}

	s := Summarize(expenses, "2024-06-15")
	if !approx(s.Total, 65) {
		t.Errorf("total = %v, want 65", s.Total)
	}
	if s.TopCategory != "food" {
		t.Errorf("top category = %q, want food", s.TopCategory)
	}
	if len(s.ByCategory) != 2 {
		t.Fatalf("got %d category totals, want 2", len(s.ByCategory))
	}
	if s.ByCategory[0].Category != "food" || !approx(s.ByCategory[0].Amount, 35) {
		t.Errorf("first category total = %+v", s.ByCategory[0])
	}
	if s.ByCategory[0].Label != "Food & Dining" {
		t.Errorf("label = %q, want Food & Dining", s.ByCategory[0].Label)
	}
}

func TestSummarizeWeeklyWindows(t *testing.T) {
	expenses := []models.Expense{
		expense(10, "food", "2024-06-15"), // today, this week
		expense(20, "food", "2024-06-09"), // 6 days back, this week
		expense(30, "food", "2024-06-08"), // 7 days back, last week
		expense(40, "food", "2024-06-02"), // 13 days back, last week
		expense(50, "food", "2024-06-01"), // 14 days back, outside both
	}

	s := Summarize(expenses, "2024-06-15")
	if !approx(s.ThisWeek, 30) {
		t.Errorf("this week = %v, want 30", s.ThisWeek)
	}
	if !approx(s.LastWeek, 70) {
		t.Errorf("last week = %v, want 70", s.LastWeek)
	}
	if !approx(s.WeekDelta, -40) {
		t.Errorf("week delta = %v, want -40", s.WeekDelta)
	}
}

func TestSummarizeMonthlyWindows(t *testing.T) {
	expenses := []models.Expense{
		expense(100, "housing", "2024-06-01"),
		expense(15, "food", "2024-06-15"),
		expense(200, "housing", "2024-05-31"),
		expense(5, "food", "2024-04-30"), // two months back, excluded
	}

	s := Summarize(expenses, "2024-06-15")
	if !approx(s.ThisMonth, 115) {
		t.Errorf("this month = %v, want 115", s.ThisMonth)
	}
	if !approx(s.LastMonth, 200) {
		t.Errorf("last month = %v, want 200", s.LastMonth)
	}
	if !approx(s.MonthDelta, -85) {
		t.Errorf("month delta = %v, want -85", s.MonthDelta)
	}
}

func TestSummarizeMalformedDates(t *testing.T) {
	expenses := []models.Expense{
		expense(10, "food", "2024-06-15"),
		expense(99, "food", "not-a-date"),
	}

	s := Summarize(expenses, "2024-06-15")
	if !approx(s.Total, 109) {
		t.Errorf("total = %v, want 109 (malformed dates still count toward total)", s.Total)
	}
	if !approx(s.ThisWeek, 10) {
		t.Errorf("this week = %v, want 10 (malformed dates excluded from windows)", s.ThisWeek)
	}
}

func TestSummarizeUnknownCategory(t *testing.T) {
	s := Summarize([]models.Expense{expense(10, "mystery", "2024-06-15")}, "2024-06-15")
	if len(s.ByCategory) != 1 || s.ByCategory[0].Category != "mystery" {
		t.Fatalf("unknown category missing from totals: %+v", s.ByCategory)
	}
	if s.ByCategory[0].Label != "mystery" {
		t.Errorf("unknown category label = %q, want the raw key", s.ByCategory[0].Label)
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory("food") {
		t.Error("food should be a valid category")
	}
	if ValidCategory("mystery") {
		t.Error("mystery should not be a valid category")
	}
}
