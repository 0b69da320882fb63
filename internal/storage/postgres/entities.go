package postgres

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/models"
)

// Todos

func (s *Store) AddTodo(todo models.Todo) error {
	return s.UpdateTodo(todo)
}

func (s *Store) GetAllTodos() ([]models.Todo, error) {
	rows, err := s.db.Query(`
		SELECT id, title, completed, created_at FROM todos ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (s *Store) UpdateTodo(todo models.Todo) error {
	_, err := s.db.Exec(`
		INSERT INTO todos (id, title, completed, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			completed = EXCLUDED.completed`,
		todo.ID, todo.Title, todo.Completed, todo.CreatedAt)
	return err
}

func (s *Store) DeleteTodo(id string) error {
	result, err := s.db.Exec(`DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("todo not found")
	}
	return nil
}

// Expenses

func (s *Store) AddExpense(expense models.Expense) error {
	return s.UpdateExpense(expense)
}

func (s *Store) GetAllExpenses() ([]models.Expense, error) {
	rows, err := s.db.Query(`
		SELECT id, amount, category, description, day, created_at
		FROM expenses ORDER BY day DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Store) UpdateExpense(expense models.Expense) error {
	_, err := s.db.Exec(`
		INSERT INTO expenses (id, amount, category, description, day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			amount = EXCLUDED.amount,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			day = EXCLUDED.day`,
		expense.ID, expense.Amount, expense.Category, expense.Description,
		expense.Date, expense.CreatedAt)
	return err
}

func (s *Store) DeleteExpense(id string) error {
	result, err := s.db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}

// Preferences

func (s *Store) GetPreferences() (models.Preferences, error) {
	row := s.db.QueryRow(`
		SELECT onboarding_completed, theme_mode, theme_accent, currency, timezone
		FROM preferences WHERE id = 1`)

	var p models.Preferences
	err := row.Scan(&p.OnboardingCompleted, &p.ThemeMode, &p.ThemeAccent, &p.Currency, &p.Timezone)
	if err != nil {
		return models.Preferences{}, err
	}
	return p, nil
}

func (s *Store) SavePreferences(p models.Preferences) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (id, onboarding_completed, theme_mode, theme_accent, currency, timezone)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			onboarding_completed = EXCLUDED.onboarding_completed,
			theme_mode = EXCLUDED.theme_mode,
			theme_accent = EXCLUDED.theme_accent,
			currency = EXCLUDED.currency,
			timezone = EXCLUDED.timezone`,
		p.OnboardingCompleted, p.ThemeMode, p.ThemeAccent, p.Currency, p.Timezone)
	return err
}
