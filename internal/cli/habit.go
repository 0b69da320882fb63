package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/streak"
	"github.com/habitflow/habitflow/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with their streaks."`
	Done   HabitDoneCmd   `cmd:"" help:"Toggle a habit's completion for a day."`
	Log    HabitLogCmd    `cmd:"" help:"Show completion history (ASCII grid)."`
	Stats  HabitStatsCmd  `cmd:"" help:"Show detailed stats for a habit."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's title or frequency."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
}

type HabitAddCmd struct {
	Title     string `arg:"" help:"Habit title."`
	Frequency string `help:"Frequency: daily or weekly." default:"daily" enum:"daily,weekly"`
	Icon      string `help:"Display icon." default:"✦"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit := models.Habit{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Frequency: models.Frequency(c.Frequency),
		Icon:      c.Icon,
		CreatedAt: time.Now(),
	}

	if result := validation.ValidateHabit(habit); result.HasProblems() {
		return result.Err()
	}

	// Reject duplicate titles up front for a clearer message.
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	if _, err := findHabit(habits, c.Title); err == nil {
		return fmt.Errorf("habit with title %q already exists", c.Title)
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Title)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Today()
	for _, habit := range habits {
		current := streak.Calculate(habit.CompletedDates, today)
		status := "[ ]"
		if streak.CompletedOn(habit.CompletedDates, today) {
			status = "[x]"
		}
		fmt.Printf("%s %s %s  (streak: %d)\n", status, habit.Icon, habit.Title, current)
	}

	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit ID or title."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	habit, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = ctx.Today()
	} else if result := validation.ValidateDay(day); result.HasProblems() {
		return result.Err()
	}

	dates, marked := toggleDay(habit.CompletedDates, day)
	if err := ctx.Store.SetCompletedDates(habit.ID, dates); err != nil {
		return err
	}

	if marked {
		fmt.Printf("Marked %q done for %s\n", habit.Title, day)
	} else {
		fmt.Printf("Unmarked %q for %s\n", habit.Title, day)
	}
	return nil
}

// toggleDay removes day if present, appends it otherwise. The second
// return reports whether the day ended up marked.
func toggleDay(dates []string, day string) ([]string, bool) {
	next := make([]string, 0, len(dates)+1)
	found := false
	for _, d := range dates {
		if d == day {
			found = true
			continue
		}
		next = append(next, d)
	}
	if found {
		return next, false
	}
	return append(next, day), true
}

type HabitLogCmd struct {
	Days int `help:"Number of days to show." default:"14"`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Today()
	days, err := dateutil.LastNDays(c.Days, today)
	if err != nil {
		return err
	}

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const nameWidth = 20
	for _, habit := range habits {
		name := habit.Title
		if len(name) > nameWidth {
			name = name[:nameWidth-3] + "..."
		}
		fmt.Printf("%-*s", nameWidth, name)

		for _, day := range days {
			if streak.CompletedOn(habit.CompletedDates, day) {
				fmt.Print(" x")
			} else {
				fmt.Print(" .")
			}
		}
		fmt.Println()
	}

	return nil
}

type HabitStatsCmd struct {
	Habit string `arg:"" help:"Habit ID or title."`
}

func (c *HabitStatsCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	habit, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	today := ctx.Today()
	created := habit.CreatedAt.Format(constants.DateFormat)
	totalDays, err := dateutil.DaysBetween(created, today)
	if err != nil {
		totalDays = 0
	}
	totalDays++ // inclusive of the creation day

	fmt.Printf("%s %s\n\n", habit.Icon, habit.Title)
	fmt.Printf("Frequency:       %s\n", habit.Frequency)
	fmt.Printf("Current streak:  %d\n", streak.Calculate(habit.CompletedDates, today))
	fmt.Printf("Longest streak:  %d\n", streak.Longest(habit.CompletedDates))
	fmt.Printf("Total completed: %d\n", len(habit.CompletedDates))
	fmt.Printf("Completion rate: %d%%\n", streak.CompletionRate(habit.CompletedDates, totalDays))

	fmt.Println("\nLast 7 days:")
	for _, day := range streak.WeeklyCompletion(habit.CompletedDates, today) {
		mark := "."
		if day.Completed {
			mark = "x"
		}
		fmt.Printf("  %s %s  %s\n", day.Weekday, day.Day, mark)
	}

	return nil
}

type HabitEditCmd struct {
	Habit     string `arg:"" help:"Habit ID or title."`
	Title     string `help:"New title."`
	Frequency string `help:"New frequency: daily or weekly." enum:"daily,weekly,"`
	Icon      string `help:"New icon."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	habit, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	if c.Title != "" {
		habit.Title = c.Title
	}
	if c.Frequency != "" {
		habit.Frequency = models.Frequency(c.Frequency)
	}
	if c.Icon != "" {
		habit.Icon = c.Icon
	}

	if result := validation.ValidateHabit(habit); result.HasProblems() {
		return result.Err()
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Title)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID or title."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	habit, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Title)
	return nil
}
