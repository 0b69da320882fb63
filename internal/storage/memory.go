package storage

import (
	"fmt"
	"sync"

	"github.com/habitflow/habitflow/internal/models"
)

// MemoryStore is an in-process Provider used by tests and by the doctor
// command's dry runs. Contents vanish when the process exits.
type MemoryStore struct {
	mu          sync.Mutex
	habits      []models.Habit
	todos       []models.Todo
	expenses    []models.Expense
	preferences models.Preferences
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		preferences: models.Preferences{
			ThemeMode:   "dark",
			ThemeAccent: "teal",
			Currency:    "USD",
			Timezone:    "Local",
		},
	}
}

func (m *MemoryStore) Init() error  { return nil }
func (m *MemoryStore) Load() error  { return nil }
func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) GetConfigPath() string { return ":memory:" }

func (m *MemoryStore) AddHabit(habit models.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.habits {
		if h.ID == habit.ID {
			return fmt.Errorf("habit %s already exists", habit.ID)
		}
	}
	m.habits = append(m.habits, cloneHabit(habit))
	return nil
}

func (m *MemoryStore) GetHabit(id string) (models.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.habits {
		if h.ID == id {
			return cloneHabit(h), nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found")
}

func (m *MemoryStore) GetAllHabits() ([]models.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Habit, len(m.habits))
	for i, h := range m.habits {
		out[i] = cloneHabit(h)
	}
	return out, nil
}

func (m *MemoryStore) UpdateHabit(habit models.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, h := range m.habits {
		if h.ID == habit.ID {
			m.habits[i] = cloneHabit(habit)
			return nil
		}
	}
	m.habits = append(m.habits, cloneHabit(habit))
	return nil
}

func (m *MemoryStore) DeleteHabit(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, h := range m.habits {
		if h.ID == id {
			m.habits = append(m.habits[:i], m.habits[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("habit not found")
}

func (m *MemoryStore) SetCompletedDates(habitID string, dates []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, h := range m.habits {
		if h.ID == habitID {
			copied := make([]string, len(dates))
			copy(copied, dates)
			m.habits[i].CompletedDates = copied
			return nil
		}
	}
	return fmt.Errorf("habit not found")
}

func (m *MemoryStore) AddTodo(todo models.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.todos = append(m.todos, todo)
	return nil
}

func (m *MemoryStore) GetAllTodos() ([]models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Todo, len(m.todos))
	copy(out, m.todos)
	return out, nil
}

func (m *MemoryStore) UpdateTodo(todo models.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.todos {
		if t.ID == todo.ID {
			m.todos[i] = todo
			return nil
		}
	}
	m.todos = append(m.todos, todo)
	return nil
}

func (m *MemoryStore) DeleteTodo(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.todos {
		if t.ID == id {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("todo not found")
}

func (m *MemoryStore) AddExpense(expense models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses = append(m.expenses, expense)
	return nil
}

func (m *MemoryStore) GetAllExpenses() ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Expense, len(m.expenses))
	copy(out, m.expenses)
	return out, nil
}

func (m *MemoryStore) UpdateExpense(expense models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.expenses {
		if e.ID == expense.ID {
			m.expenses[i] = expense
			return nil
		}
	}
	m.expenses = append(m.expenses, expense)
	return nil
}

func (m *MemoryStore) DeleteExpense(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.expenses {
		if e.ID == id {
			m.expenses = append(m.expenses[:i], m.expenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("expense not found")
}

func (m *MemoryStore) GetPreferences() (models.Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.preferences, nil
}

func (m *MemoryStore) SavePreferences(p models.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.preferences = p
	return nil
}

func cloneHabit(h models.Habit) models.Habit {
	out := h
	if h.CompletedDates != nil {
		out.CompletedDates = make([]string, len(h.CompletedDates))
		copy(out.CompletedDates, h.CompletedDates)
	}
	return out
}
