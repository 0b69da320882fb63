package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/storage"
	"github.com/habitflow/habitflow/internal/streak"
	"github.com/habitflow/habitflow/internal/tui/components/habitlist"
	"github.com/habitflow/habitflow/internal/tui/components/todolist"
)

func newTestHub(t *testing.T) *storage.Hub {
	t.Helper()
	hub := storage.NewHub(storage.NewMemoryStore())
	prefs, err := hub.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	prefs.OnboardingCompleted = true
	if err := hub.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}
	return hub
}

func TestNewModelIngestsInitialSnapshot(t *testing.T) {
	hub := newTestHub(t)
	if err := hub.AddHabit(models.Habit{ID: "h1", Title: "Read", Frequency: models.FrequencyDaily, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if err := hub.AddTodo(models.Todo{ID: "t1", Title: "Buy milk", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("AddTodo failed: %v", err)
	}

	m := NewModel(hub)

	if m.state != StateHabits {
		t.Errorf("state = %d, want StateHabits", m.state)
	}
	if m.habits.Loading {
		t.Error("habit state should not be loading after initial ingest")
	}
	if len(m.habits.Habits) != 1 || m.habits.Habits[0].ID != "h1" {
		t.Errorf("habits = %v, want one habit h1", m.habits.Habits)
	}
	if len(m.todos.Todos) != 1 {
		t.Errorf("todos = %v, want one todo", m.todos.Todos)
	}
}

func TestNewModelStartsOnboardingOnFirstRun(t *testing.T) {
	hub := storage.NewHub(storage.NewMemoryStore())

	m := NewModel(hub)

	if m.state != StateOnboarding {
		t.Errorf("state = %d, want StateOnboarding", m.state)
	}
	if m.form == nil {
		t.Error("onboarding form should be initialized")
	}
}

func TestToggleHabitIsOptimisticAndPersists(t *testing.T) {
	hub := newTestHub(t)
	if err := hub.AddHabit(models.Habit{ID: "h1", Title: "Read", Frequency: models.FrequencyDaily, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	m := NewModel(hub)
	next, cmd := m.Update(habitlist.ToggleHabitMsg{ID: "h1"})
	model := next.(Model)

	// Optimistic: local state reflects the toggle before persistence.
	if !streak.CompletedOn(model.habits.Habits[0].CompletedDates, model.today) {
		t.Error("local state should show today completed immediately")
	}
	if model.habits.Habits[0].Streak != 1 {
		t.Errorf("streak cache = %d, want 1", model.habits.Habits[0].Streak)
	}

	if cmd == nil {
		t.Fatal("expected a persistence command")
	}
	cmd()

	got, err := hub.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if len(got.CompletedDates) != 1 || got.CompletedDates[0] != model.today {
		t.Errorf("persisted dates = %v, want [%s]", got.CompletedDates, model.today)
	}
}

func TestSnapshotConvergesLocalState(t *testing.T) {
	hub := newTestHub(t)
	m := NewModel(hub)

	snap := storage.Snapshot{
		Habits: []models.Habit{{ID: "h9", Title: "Stretch", Frequency: models.FrequencyDaily, CreatedAt: time.Now()}},
		Todos:  []models.Todo{{ID: "t9", Title: "Call home", CreatedAt: time.Now()}},
	}
	next, cmd := m.Update(snapshotMsg(snap))
	model := next.(Model)

	if len(model.habits.Habits) != 1 || model.habits.Habits[0].ID != "h9" {
		t.Errorf("habits after snapshot = %v, want h9", model.habits.Habits)
	}
	if len(model.todos.Todos) != 1 || model.todos.Todos[0].ID != "t9" {
		t.Errorf("todos after snapshot = %v, want t9", model.todos.Todos)
	}
	if cmd == nil {
		t.Error("snapshot handling should re-arm the subscription wait")
	}
}

func TestDeleteThenUndoRestoresHabit(t *testing.T) {
	hub := newTestHub(t)
	habit := models.Habit{
		ID:             "h1",
		Title:          "Read",
		Frequency:      models.FrequencyDaily,
		CompletedDates: []string{"2024-06-01"},
		CreatedAt:      time.Now(),
	}
	if err := hub.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if err := hub.SetCompletedDates("h1", habit.CompletedDates); err != nil {
		t.Fatalf("SetCompletedDates failed: %v", err)
	}

	m := NewModel(hub)

	next, cmd := m.Update(habitlist.DeleteHabitMsg{ID: "h1"})
	model := next.(Model)
	if len(model.habits.Habits) != 0 {
		t.Fatalf("habits after delete = %v, want empty", model.habits.Habits)
	}
	if model.lastDeleted == nil || model.lastDeleted.ID != "h1" {
		t.Fatal("deleted habit should be retained for undo")
	}
	cmd()

	next, cmd = model.Update(habitlist.UndoDeleteMsg{})
	model = next.(Model)
	if len(model.habits.Habits) != 1 || model.habits.Habits[0].ID != "h1" {
		t.Fatalf("habits after undo = %v, want h1 back", model.habits.Habits)
	}
	if model.lastDeleted != nil {
		t.Error("undo should clear the retained habit")
	}
	cmd()

	got, err := hub.GetHabit("h1")
	if err != nil {
		t.Fatalf("habit not restored in store: %v", err)
	}
	if len(got.CompletedDates) != 1 {
		t.Errorf("restored ledger = %v, want one date", got.CompletedDates)
	}
}

func TestToggleTodoPersists(t *testing.T) {
	hub := newTestHub(t)
	if err := hub.AddTodo(models.Todo{ID: "t1", Title: "Buy milk", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("AddTodo failed: %v", err)
	}

	m := NewModel(hub)
	next, cmd := m.Update(todolist.ToggleTodoMsg{ID: "t1"})
	model := next.(Model)

	if !model.todos.Todos[0].Completed {
		t.Error("local todo state should be completed immediately")
	}
	if cmd == nil {
		t.Fatal("expected a persistence command")
	}
	cmd()

	todos, _ := hub.GetAllTodos()
	if !todos[0].Completed {
		t.Error("persisted todo should be completed")
	}
}

func TestTabCyclesViews(t *testing.T) {
	hub := newTestHub(t)
	m := NewModel(hub)

	states := []SessionState{StateTodos, StateExpenses, StateSummary, StateHabits}
	var model tea.Model = m
	for _, want := range states {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyTab})
		if got := model.(Model).state; got != want {
			t.Fatalf("state after tab = %d, want %d", got, want)
		}
	}

	model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := model.(Model).state; got != StateSummary {
		t.Errorf("state after shift+tab = %d, want StateSummary", got)
	}
}
