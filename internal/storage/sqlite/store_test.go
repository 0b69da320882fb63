package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "habitflow.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHabitRoundTrip(t *testing.T) {
	store := newTestStore(t)

	habit := models.Habit{
		ID:             "h1",
		Title:          "Read",
		Frequency:      models.FrequencyDaily,
		CompletedDates: []string{"2024-06-01", "2024-06-02"},
		ColorTheme:     "teal",
		Icon:           "book",
		ReminderTime:   "08:00",
		CreatedAt:      time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.AddHabit(habit))

	got, err := store.GetHabit("h1")
	require.NoError(t, err)
	require.Equal(t, "Read", got.Title)
	require.Equal(t, models.FrequencyDaily, got.Frequency)
	require.Equal(t, []string{"2024-06-01", "2024-06-02"}, got.CompletedDates)
	require.Equal(t, "teal", got.ColorTheme)
	require.Zero(t, got.Streak, "streak must not be persisted")
}

func TestSetCompletedDatesReplacesLedger(t *testing.T) {
	store := newTestStore(t)

	habit := models.Habit{
		ID:             "h1",
		Title:          "Read",
		Frequency:      models.FrequencyDaily,
		CompletedDates: []string{"2024-06-01"},
		CreatedAt:      time.Now(),
	}
	require.NoError(t, store.AddHabit(habit))

	require.NoError(t, store.SetCompletedDates("h1", []string{"2024-06-02", "2024-06-03"}))

	got, err := store.GetHabit("h1")
	require.NoError(t, err)
	require.Equal(t, []string{"2024-06-02", "2024-06-03"}, got.CompletedDates)

	// Duplicate days collapse into one row.
	require.NoError(t, store.SetCompletedDates("h1", []string{"2024-06-05", "2024-06-05"}))
	got, err = store.GetHabit("h1")
	require.NoError(t, err)
	require.Equal(t, []string{"2024-06-05"}, got.CompletedDates)
}

func TestGetAllHabitsOrder(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"h1", "h2", "h3"} {
		require.NoError(t, store.AddHabit(models.Habit{
			ID:        id,
			Title:     id,
			Frequency: models.FrequencyDaily,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	habits, err := store.GetAllHabits()
	require.NoError(t, err)
	require.Len(t, habits, 3)
	require.Equal(t, "h3", habits[0].ID, "newest habit should come first")
}

func TestDeleteHabitRemovesLedger(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddHabit(models.Habit{
		ID:             "h1",
		Title:          "Read",
		Frequency:      models.FrequencyDaily,
		CompletedDates: []string{"2024-06-01"},
		CreatedAt:      time.Now(),
	}))

	require.NoError(t, store.DeleteHabit("h1"))
	_, err := store.GetHabit("h1")
	require.Error(t, err)

	require.Error(t, store.DeleteHabit("h1"), "double delete should fail")
}

func TestTodoRoundTrip(t *testing.T) {
	store := newTestStore(t)

	todo := models.Todo{ID: "t1", Title: "buy milk", CreatedAt: time.Now()}
	require.NoError(t, store.AddTodo(todo))

	todos, err := store.GetAllTodos()
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.False(t, todos[0].Completed)

	todo.Completed = true
	require.NoError(t, store.UpdateTodo(todo))

	todos, err = store.GetAllTodos()
	require.NoError(t, err)
	require.True(t, todos[0].Completed)

	require.NoError(t, store.DeleteTodo("t1"))
	todos, err = store.GetAllTodos()
	require.NoError(t, err)
	require.Empty(t, todos)
}

func TestExpenseRoundTrip(t *testing.T) {
	store := newTestStore(t)

	expense := models.Expense{
		ID:          "e1",
		Amount:      12.5,
		Category:    "food",
		Description: "lunch",
		Date:        "2024-06-01",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, store.AddExpense(expense))

	expenses, err := store.GetAllExpenses()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	require.Equal(t, 12.5, expenses[0].Amount)
	require.Equal(t, "2024-06-01", expenses[0].Date)

	require.NoError(t, store.DeleteExpense("e1"))
	expenses, err = store.GetAllExpenses()
	require.NoError(t, err)
	require.Empty(t, expenses)
}

func TestPreferencesDefaultsAndRoundTrip(t *testing.T) {
	store := newTestStore(t)

	prefs, err := store.GetPreferences()
	require.NoError(t, err)
	require.False(t, prefs.OnboardingCompleted)
	require.Equal(t, "dark", prefs.ThemeMode)
	require.Equal(t, "teal", prefs.ThemeAccent)

	prefs.OnboardingCompleted = true
	prefs.ThemeMode = "light"
	prefs.ThemeAccent = "amber"
	require.NoError(t, store.SavePreferences(prefs))

	got, err := store.GetPreferences()
	require.NoError(t, err)
	require.True(t, got.OnboardingCompleted)
	require.Equal(t, "light", got.ThemeMode)
	require.Equal(t, "amber", got.ThemeAccent)
}

func TestLoadBeforeInitFails(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, store.Load())
}
