package sqlite

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, title, frequency, color_theme, icon, reminder_time, reminder_enabled, sort_order, created_at
		FROM habits WHERE id = ?`, id)

	h, err := scanHabit(row)
	if err != nil {
		return models.Habit{}, err
	}

	h.CompletedDates, err = s.completedDates(h.ID)
	if err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, title, frequency, color_theme, icon, reminder_time, reminder_enabled, sort_order, created_at
		FROM habits ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		habits[i].CompletedDates, err = s.completedDates(habits[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return habits, nil
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, title, frequency, color_theme, icon, reminder_time, reminder_enabled, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			frequency = excluded.frequency,
			color_theme = excluded.color_theme,
			icon = excluded.icon,
			reminder_time = excluded.reminder_time,
			reminder_enabled = excluded.reminder_enabled,
			sort_order = excluded.sort_order`,
		habit.ID, habit.Title, string(habit.Frequency), habit.ColorTheme, habit.Icon,
		habit.ReminderTime, boolToInt(habit.ReminderEnabled), habit.Order,
		habit.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	if habit.CompletedDates != nil {
		return s.SetCompletedDates(habit.ID, habit.CompletedDates)
	}
	return nil
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found")
	}
	_, err = s.db.Exec(`DELETE FROM habit_dates WHERE habit_id = ?`, id)
	return err
}

// SetCompletedDates replaces the habit's completion ledger inside a single
// transaction so a concurrent reader never observes a half-written set.
func (s *Store) SetCompletedDates(habitID string, dates []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habit_dates WHERE habit_id = ?`, habitID); err != nil {
		return err
	}
	for _, day := range dates {
		if _, err := tx.Exec(`
			INSERT INTO habit_dates (habit_id, day) VALUES (?, ?)
			ON CONFLICT(habit_id, day) DO NOTHING`, habitID, day); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) completedDates(habitID string) ([]string, error) {
	rows, err := s.db.Query(`SELECT day FROM habit_dates WHERE habit_id = ? ORDER BY day`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		dates = append(dates, day)
	}
	return dates, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var frequency, createdAt string
	var reminderEnabled int

	err := row.Scan(&h.ID, &h.Title, &frequency, &h.ColorTheme, &h.Icon,
		&h.ReminderTime, &reminderEnabled, &h.Order, &createdAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Frequency = models.Frequency(frequency)
	h.ReminderEnabled = reminderEnabled != 0
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	return h, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
