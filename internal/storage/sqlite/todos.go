package sqlite

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/models"
)

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
		var completed int
		var createdAt string

		if err := rows.Scan(&t.ID, &t.Title, &completed, &createdAt); err != nil {
			return nil, err
		}
		t.Completed = completed != 0
		t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for todo %s: %w", t.ID, err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (s *Store) UpdateTodo(todo models.Todo) error {
	_, err := s.db.Exec(`
		INSERT INTO todos (id, title, completed, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			completed = excluded.completed`,
		todo.ID, todo.Title, boolToInt(todo.Completed), todo.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) DeleteTodo(id string) error {
	result, err := s.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
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
