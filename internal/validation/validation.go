package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/finance"
	"github.com/habitflow/habitflow/internal/models"
)

// ProblemType classifies a validation failure.
type ProblemType string

const (
	ProblemEmptyTitle      ProblemType = "empty_title"
	ProblemTitleTooLong    ProblemType = "title_too_long"
	ProblemInvalidAmount   ProblemType = "invalid_amount"
	ProblemUnknownCategory ProblemType = "unknown_category"
	ProblemInvalidDate     ProblemType = "invalid_date"
	ProblemInvalidFreq     ProblemType = "invalid_frequency"
)

// Problem is one detected validation failure.
type Problem struct {
	Type        ProblemType
	Field       string
	Description string
}

// Result collects the problems found for a single entity.
type Result struct {
	Problems []Problem
}

// HasProblems returns true if any problem was detected.
func (r *Result) HasProblems() bool {
	return len(r.Problems) > 0
}

// Err returns the result as a single error, or nil if the entity is valid.
func (r *Result) Err() error {
	if !r.HasProblems() {
		return nil
	}
	descs := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		descs[i] = p.Description
	}
	return fmt.Errorf("%s", strings.Join(descs, "; "))
}

// FormatReport returns a human-readable report of all problems.
func (r *Result) FormatReport() string {
	if !r.HasProblems() {
		return "No problems detected."
	}
	report := "Problems detected:\n"
	for _, p := range r.Problems {
		report += fmt.Sprintf("- %s\n", p.Description)
	}
	return report
}

func (r *Result) add(t ProblemType, field, format string, args ...interface{}) {
	r.Problems = append(r.Problems, Problem{
		Type:        t,
		Field:       field,
		Description: fmt.Sprintf(format, args...),
	})
}

// ValidateHabit checks a habit at the boundary before it reaches reducers or
// storage. Completed dates must all be well-formed YYYY-MM-DD strings; the
// streak engine assumes this has been enforced here.
func ValidateHabit(h models.Habit) Result {
	var r Result

	title := strings.TrimSpace(h.Title)
	if title == "" {
		r.add(ProblemEmptyTitle, "title", "habit title must not be empty")
	} else if utf8.RuneCountInString(title) > constants.MaxHabitTitleLength {
		r.add(ProblemTitleTooLong, "title", "habit title exceeds %d characters", constants.MaxHabitTitleLength)
	}

	switch h.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly:
	default:
		r.add(ProblemInvalidFreq, "frequency", "frequency must be %q or %q, got %q",
			models.FrequencyDaily, models.FrequencyWeekly, h.Frequency)
	}

	for _, d := range h.CompletedDates {
		if !dateutil.ValidDay(d) {
			r.add(ProblemInvalidDate, "completed_dates", "invalid completion date %q (expected YYYY-MM-DD)", d)
		}
	}

	return r
}

// ValidateTodo checks a todo at the boundary.
func ValidateTodo(t models.Todo) Result {
	var r Result

	title := strings.TrimSpace(t.Title)
	if title == "" {
		r.add(ProblemEmptyTitle, "title", "todo title must not be empty")
	} else if utf8.RuneCountInString(title) > constants.MaxTodoTitleLength {
		r.add(ProblemTitleTooLong, "title", "todo title exceeds %d characters", constants.MaxTodoTitleLength)
	}

	return r
}

// ValidateExpense checks an expense at the boundary.
func ValidateExpense(e models.Expense) Result {
	var r Result

	if e.Amount <= 0 {
		r.add(ProblemInvalidAmount, "amount", "expense amount must be greater than zero, got %v", e.Amount)
	}
	if !finance.ValidCategory(e.Category) {
		r.add(ProblemUnknownCategory, "category", "unknown expense category %q", e.Category)
	}
	if !dateutil.ValidDay(e.Date) {
		r.add(ProblemInvalidDate, "date", "invalid expense date %q (expected YYYY-MM-DD)", e.Date)
	}

	return r
}

// ValidateDay checks a single date string at the boundary.
func ValidateDay(day string) Result {
	var r Result
	if !dateutil.ValidDay(day) {
		r.add(ProblemInvalidDate, "date", "invalid date %q (expected YYYY-MM-DD)", day)
	}
	return r
}
