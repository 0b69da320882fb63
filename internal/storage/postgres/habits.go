package postgres

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, title, frequency, color_theme, icon, reminder_time, reminder_enabled, sort_order, created_at
		FROM habits WHERE id = $1`, id)

	var h models.Habit
	var frequency string
	err := row.Scan(&h.ID, &h.Title, &frequency, &h.ColorTheme, &h.Icon,
		&h.ReminderTime, &h.ReminderEnabled, &h.Order, &h.CreatedAt)
	if err != nil {
		return models.Habit{}, err
	}
	h.Frequency = models.Frequency(frequency)

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
		var h models.Habit
		var frequency string
		err := rows.Scan(&h.ID, &h.Title, &frequency, &h.ColorTheme, &h.Icon,
			&h.ReminderTime, &h.ReminderEnabled, &h.Order, &h.CreatedAt)
		if err != nil {
			return nil, err
		}
		h.Frequency = models.Frequency(frequency)
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			frequency = EXCLUDED.frequency,
			color_theme = EXCLUDED.color_theme,
			icon = EXCLUDED.icon,
			reminder_time = EXCLUDED.reminder_time,
			reminder_enabled = EXCLUDED.reminder_enabled,
			sort_order = EXCLUDED.sort_order`,
		habit.ID, habit.Title, string(habit.Frequency), habit.ColorTheme, habit.Icon,
		habit.ReminderTime, habit.ReminderEnabled, habit.Order, habit.CreatedAt)
	if err != nil {
		return err
	}

	if habit.CompletedDates != nil {
		return s.SetCompletedDates(habit.ID, habit.CompletedDates)
	}
	return nil
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
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
	_, err = s.db.Exec(`DELETE FROM habit_dates WHERE habit_id = $1`, id)
	return err
}

// SetCompletedDates replaces the habit's completion ledger inside a single
// transaction.
func (s *Store) SetCompletedDates(habitID string, dates []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habit_dates WHERE habit_id = $1`, habitID); err != nil {
		return err
	}
	for _, day := range dates {
		if _, err := tx.Exec(`
			INSERT INTO habit_dates (habit_id, day) VALUES ($1, $2)
			ON CONFLICT (habit_id, day) DO NOTHING`, habitID, day); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) completedDates(habitID string) ([]string, error) {
	rows, err := s.db.Query(`SELECT day FROM habit_dates WHERE habit_id = $1 ORDER BY day`, habitID)
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
