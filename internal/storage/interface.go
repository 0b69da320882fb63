package storage

import "github.com/habitflow/habitflow/internal/models"

// Provider is the persistence collaborator. Implementations own entities
// across sessions; in-memory reducer state is rebuilt from snapshots read
// through this interface. The Streak field on habits is never persisted, it
// is derived state recomputed on every read path.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error
	// SetCompletedDates replaces the habit's completion ledger verbatim.
	SetCompletedDates(habitID string, dates []string) error

	// Todos
	AddTodo(models.Todo) error
	GetAllTodos() ([]models.Todo, error)
	UpdateTodo(models.Todo) error
	DeleteTodo(id string) error

	// Expenses
	AddExpense(models.Expense) error
	GetAllExpenses() ([]models.Expense, error)
	UpdateExpense(models.Expense) error
	DeleteExpense(id string) error

	// Preferences
	GetPreferences() (models.Preferences, error)
	SavePreferences(models.Preferences) error

	// Utils
	GetConfigPath() string
}
