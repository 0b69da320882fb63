package models

import "time"

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Habit represents a recurring practice and the days it was completed.
type Habit struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Frequency       Frequency `json:"frequency"`
	CompletedDates  []string  `json:"completed_dates"` // YYYY-MM-DD, unique, order not significant
	Streak          int       `json:"streak"`          // derived cache, recomputed from CompletedDates
	ColorTheme      string    `json:"color_theme,omitempty"`
	Icon            string    `json:"icon,omitempty"`
	ReminderTime    string    `json:"reminder_time,omitempty"` // HH:MM format
	ReminderEnabled bool      `json:"reminder_enabled"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
}

// HabitPatch carries a partial update; nil fields are left untouched.
type HabitPatch struct {
	Title           *string    `json:"title,omitempty"`
	Frequency       *Frequency `json:"frequency,omitempty"`
	CompletedDates  *[]string  `json:"completed_dates,omitempty"`
	ColorTheme      *string    `json:"color_theme,omitempty"`
	Icon            *string    `json:"icon,omitempty"`
	ReminderTime    *string    `json:"reminder_time,omitempty"`
	ReminderEnabled *bool      `json:"reminder_enabled,omitempty"`
	Order           *int       `json:"order,omitempty"`
}
