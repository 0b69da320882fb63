package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/finance"
)

type HabitFormModel struct {
	Title     string
	Frequency string
	Icon      string
}

type TodoFormModel struct {
	Title string
}

type ExpenseFormModel struct {
	Amount      string
	Category    string
	Description string
	Date        string
}

type OnboardingFormModel struct {
	Mode     string
	Accent   string
	Currency string
	Timezone string
}

// NewHabitForm creates the form for adding a habit
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit title cannot be empty")
					}
					if len(s) > constants.MaxHabitTitleLength {
						return fmt.Errorf("habit title must be at most %d characters", constants.MaxHabitTitleLength)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
				).
				Value(&fm.Frequency),
			huh.NewInput().
				Title("Icon").
				Description("A short marker shown next to the title").
				Value(&fm.Icon),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewTodoForm creates the form for adding a todo
func NewTodoForm(fm *TodoFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Todo Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("todo title cannot be empty")
					}
					if len(s) > constants.MaxTodoTitleLength {
						return fmt.Errorf("todo title must be at most %d characters", constants.MaxTodoTitleLength)
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewExpenseForm creates the form for recording an expense
func NewExpenseForm(fm *ExpenseFormModel) *huh.Form {
	categoryOptions := make([]huh.Option[string], 0, len(finance.Categories))
	for _, c := range finance.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Label, c.Key))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Value(&fm.Amount).
				Validate(func(s string) error {
					f, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("amount must be a number")
					}
					if f <= 0 {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Description (optional)").
				Value(&fm.Description),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Leave empty for today").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !dateutil.ValidDay(s) {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewOnboardingForm creates the first-run preferences form
func NewOnboardingForm(fm *OnboardingFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
				).
				Value(&fm.Mode),
			huh.NewSelect[string]().
				Title("Accent Color").
				Options(
					huh.NewOption("Teal", "teal"),
					huh.NewOption("Violet", "violet"),
					huh.NewOption("Amber", "amber"),
				).
				Value(&fm.Accent),
			huh.NewInput().
				Title("Currency").
				Description("3-letter ISO code, e.g. USD").
				Value(&fm.Currency).
				Validate(func(s string) error {
					if len(s) != 3 {
						return fmt.Errorf("currency must be a 3-letter ISO code")
					}
					return nil
				}),
			huh.NewInput().
				Title("Timezone (IANA name or 'Local')").
				Description("Examples: Local, UTC, America/New_York, Asia/Tokyo").
				Value(&fm.Timezone).
				Validate(func(s string) error {
					if _, err := dateutil.LoadLocation(s); err != nil {
						return fmt.Errorf("invalid timezone name")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
