package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/state"
	"github.com/habitflow/habitflow/internal/storage"
	"github.com/habitflow/habitflow/internal/theme"
	"github.com/habitflow/habitflow/internal/tui/components/expenselist"
	"github.com/habitflow/habitflow/internal/tui/components/habitlist"
	"github.com/habitflow/habitflow/internal/tui/components/todolist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateTodos
	StateExpenses
	StateSummary
	StateAddHabit
	StateAddTodo
	StateAddExpense
	StateOnboarding
)

// snapshotMsg delivers an authoritative store snapshot from the hub
// subscription. Local optimistic state converges to it on receipt.
type snapshotMsg storage.Snapshot

type Model struct {
	hub           *storage.Hub
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	habits   state.HabitState
	todos    state.TodoState
	expenses state.ExpenseState

	habitList   habitlist.Model
	todoList    todolist.Model
	expenseList expenselist.Model

	prefs   models.Preferences
	palette theme.Palette
	today   string

	form           *huh.Form
	habitForm      *HabitFormModel
	todoForm       *TodoFormModel
	expenseForm    *ExpenseFormModel
	onboardingForm *OnboardingFormModel

	// lastDeleted holds the most recently deleted habit for undo.
	lastDeleted *models.Habit

	snapshots   <-chan storage.Snapshot
	unsubscribe func()

	quitting bool
	width    int
	height   int
}

func NewModel(hub *storage.Hub) Model {
	prefs, _ := hub.GetPreferences()
	palette := theme.Resolve(theme.ParseMode(prefs.ThemeMode), theme.ParseAccent(prefs.ThemeAccent))

	today, err := dateutil.TodayIn(prefs.Timezone)
	if err != nil {
		today = dateutil.Today()
	}

	m := Model{
		hub:      hub,
		state:    StateHabits,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		habits:   state.NewHabitState(),
		todos:    state.NewTodoState(),
		expenses: state.NewExpenseState(),
		prefs:    prefs,
		palette:  palette,
		today:    today,
	}

	// Ingest the initial snapshot synchronously so the first frame has data.
	if habits, err := hub.GetAllHabits(); err == nil {
		m.habits = state.ReduceHabits(m.habits, state.SetHabits{Habits: habits}, today)
	}
	if todos, err := hub.GetAllTodos(); err == nil {
		m.todos = state.ReduceTodos(m.todos, state.SetTodos{Todos: todos})
	}
	if expenses, err := hub.GetAllExpenses(); err == nil {
		m.expenses = state.ReduceExpenses(m.expenses, state.SetExpenses{Expenses: expenses})
	}

	m.habitList = habitlist.New(m.habits.Habits, today, 0, 0)
	m.todoList = todolist.New(m.todos.Todos, 0, 0)
	m.expenseList = expenselist.New(m.expenses.Expenses, prefs.Currency, 0, 0)

	m.snapshots, m.unsubscribe = hub.Subscribe(context.Background())

	if !prefs.OnboardingCompleted {
		m.onboardingForm = &OnboardingFormModel{
			Mode:     prefs.ThemeMode,
			Accent:   prefs.ThemeAccent,
			Currency: prefs.Currency,
			Timezone: prefs.Timezone,
		}
		m.form = NewOnboardingForm(m.onboardingForm)
		m.state = StateOnboarding
	}

	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == StateOnboarding {
		return tea.Batch(m.form.Init(), m.waitForSnapshot())
	}
	return m.waitForSnapshot()
}

// waitForSnapshot blocks on the hub subscription until the next snapshot
// arrives. The returned command is re-armed after every delivery.
func (m Model) waitForSnapshot() tea.Cmd {
	ch := m.snapshots
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits:
		hk := habitlist.DefaultKeyMap()
		keys = append(keys, hk.Add, hk.Toggle, hk.Delete)
	case StateTodos:
		tk := todolist.DefaultKeyMap()
		keys = append(keys, tk.Add, tk.Toggle, tk.Delete)
	case StateExpenses:
		ek := expenselist.DefaultKeyMap()
		keys = append(keys, ek.Add, ek.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHabits:
		hk := habitlist.DefaultKeyMap()
		actions = []key.Binding{hk.Add, hk.Toggle, hk.Delete, hk.Undo}
	case StateTodos:
		tk := todolist.DefaultKeyMap()
		actions = []key.Binding{tk.Add, tk.Toggle, tk.Delete}
	case StateExpenses:
		ek := expenselist.DefaultKeyMap()
		actions = []key.Binding{ek.Add, ek.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}
