// Package state holds the pure reducers that fold named actions into
// immutable in-memory collections. Reducers never mutate their input: every
// transition returns a fresh collection value, so a caller can hold an old
// snapshot while a new one is built.
//
// Persistence happens elsewhere. A reducer only describes the local,
// synchronous, optimistic view of state; the surrounding application issues
// the matching store write independently, and a later snapshot from the store
// (delivered as a Set action) supersedes whatever the optimistic view
// guessed. Duplicate adds racing against the snapshot subscription are
// therefore expected and are logged and ignored rather than surfaced.
package state

import (
	"sort"

	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/streak"
)

// HabitAction is a named transition on the habit collection.
type HabitAction interface{ isHabitAction() }

// SetHabits replaces the whole collection with a fresh store snapshot.
type SetHabits struct {
	Habits []models.Habit
}

// AddHabit appends one habit. Habits without an ID, or with an ID already in
// the collection, are ignored.
type AddHabit struct {
	Habit models.Habit
}

// UpdateHabit merges a partial patch into the habit with the given ID.
type UpdateHabit struct {
	ID    string
	Patch models.HabitPatch
}

// DeleteHabit removes the habit with the given ID.
type DeleteHabit struct {
	ID string
}

// ToggleHabit flips membership of Date in the habit's completed dates and
// recomputes the streak cache.
type ToggleHabit struct {
	ID   string
	Date string
}

// RestoreHabit re-inserts a previously deleted habit (undo-after-delete).
type RestoreHabit struct {
	Habit models.Habit
}

func (SetHabits) isHabitAction()    {}
func (AddHabit) isHabitAction()     {}
func (UpdateHabit) isHabitAction()  {}
func (DeleteHabit) isHabitAction()  {}
func (ToggleHabit) isHabitAction()  {}
func (RestoreHabit) isHabitAction() {}

// HabitState is an immutable snapshot of the habit collection.
type HabitState struct {
	Habits  []models.Habit
	Loading bool
}

// NewHabitState returns the initial state, loading until the first snapshot.
func NewHabitState() HabitState {
	return HabitState{Habits: []models.Habit{}, Loading: true}
}

// ReduceHabits applies one action and returns the next state. The reference
// day is passed explicitly so streak recomputation is deterministic.
//
// The Streak field is a derived cache and never authoritative: it is
// recomputed from CompletedDates on every ingest and on every toggle.
func ReduceHabits(s HabitState, action HabitAction, today string) HabitState {
	switch a := action.(type) {
	case SetHabits:
		habits := make([]models.Habit, len(a.Habits))
		copy(habits, a.Habits)
		for i := range habits {
			habits[i].Streak = streak.Calculate(habits[i].CompletedDates, today)
		}
		sortHabits(habits)
		return HabitState{Habits: habits, Loading: false}

	case AddHabit:
		if a.Habit.ID == "" {
			logger.Warn("Ignoring habit without an ID", "title", a.Habit.Title)
			return s
		}
		if indexOfHabit(s.Habits, a.Habit.ID) >= 0 {
			logger.Warn("Ignoring duplicate habit add", "id", a.Habit.ID)
			return s
		}
		habit := a.Habit
		habit.Streak = streak.Calculate(habit.CompletedDates, today)
		habits := make([]models.Habit, 0, len(s.Habits)+1)
		habits = append(habits, s.Habits...)
		habits = append(habits, habit)
		return HabitState{Habits: habits, Loading: s.Loading}

	case UpdateHabit:
		i := indexOfHabit(s.Habits, a.ID)
		if i < 0 {
			return s
		}
		habits := make([]models.Habit, len(s.Habits))
		copy(habits, s.Habits)
		habits[i] = mergeHabit(habits[i], a.Patch)
		habits[i].Streak = streak.Calculate(habits[i].CompletedDates, today)
		return HabitState{Habits: habits, Loading: s.Loading}

	case DeleteHabit:
		i := indexOfHabit(s.Habits, a.ID)
		if i < 0 {
			return s
		}
		habits := make([]models.Habit, 0, len(s.Habits)-1)
		habits = append(habits, s.Habits[:i]...)
		habits = append(habits, s.Habits[i+1:]...)
		return HabitState{Habits: habits, Loading: s.Loading}

	case ToggleHabit:
		i := indexOfHabit(s.Habits, a.ID)
		if i < 0 {
			return s
		}
		habits := make([]models.Habit, len(s.Habits))
		copy(habits, s.Habits)
		habits[i].CompletedDates = toggleDate(habits[i].CompletedDates, a.Date)
		habits[i].Streak = streak.Calculate(habits[i].CompletedDates, today)
		return HabitState{Habits: habits, Loading: s.Loading}

	case RestoreHabit:
		if a.Habit.ID == "" || indexOfHabit(s.Habits, a.Habit.ID) >= 0 {
			logger.Warn("Ignoring habit restore", "id", a.Habit.ID)
			return s
		}
		habit := a.Habit
		habit.Streak = streak.Calculate(habit.CompletedDates, today)
		habits := make([]models.Habit, 0, len(s.Habits)+1)
		habits = append(habits, s.Habits...)
		habits = append(habits, habit)
		sortHabits(habits)
		return HabitState{Habits: habits, Loading: s.Loading}
	}
	return s
}

// sortHabits orders the collection by creation time, newest first.
func sortHabits(habits []models.Habit) {
	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].CreatedAt.After(habits[j].CreatedAt)
	})
}

func indexOfHabit(habits []models.Habit, id string) int {
	for i := range habits {
		if habits[i].ID == id {
			return i
		}
	}
	return -1
}

// toggleDate returns a fresh slice with date added if absent or removed if
// present. The input slice is never modified.
func toggleDate(dates []string, date string) []string {
	out := make([]string, 0, len(dates)+1)
	found := false
	for _, d := range dates {
		if d == date {
			found = true
			continue
		}
		out = append(out, d)
	}
	if !found {
		out = append(out, date)
	}
	return out
}

func mergeHabit(h models.Habit, p models.HabitPatch) models.Habit {
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.Frequency != nil {
		h.Frequency = *p.Frequency
	}
	if p.CompletedDates != nil {
		dates := make([]string, len(*p.CompletedDates))
		copy(dates, *p.CompletedDates)
		h.CompletedDates = dates
	}
	if p.ColorTheme != nil {
		h.ColorTheme = *p.ColorTheme
	}
	if p.Icon != nil {
		h.Icon = *p.Icon
	}
	if p.ReminderTime != nil {
		h.ReminderTime = *p.ReminderTime
	}
	if p.ReminderEnabled != nil {
		h.ReminderEnabled = *p.ReminderEnabled
	}
	if p.Order != nil {
		h.Order = *p.Order
	}
	return h
}
