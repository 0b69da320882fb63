package sqlite

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/models"
)

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
		var createdAt string

		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.Date, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for expense %s: %w", e.ID, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Store) UpdateExpense(expense models.Expense) error {
	_, err := s.db.Exec(`
		INSERT INTO expenses (id, amount, category, description, day, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			amount = excluded.amount,
			category = excluded.category,
			description = excluded.description,
			day = excluded.day`,
		expense.ID, expense.Amount, expense.Category, expense.Description,
		expense.Date, expense.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) DeleteExpense(id string) error {
	result, err := s.db.Exec(`DELETE FROM expenses WHERE id = ?`, id)
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
