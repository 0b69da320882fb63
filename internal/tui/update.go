package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/state"
	"github.com/habitflow/habitflow/internal/theme"
	"github.com/habitflow/habitflow/internal/tui/components/expenselist"
	"github.com/habitflow/habitflow/internal/tui/components/habitlist"
	"github.com/habitflow/habitflow/internal/tui/components/todolist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - 6
		m.habitList.SetSize(msg.Width-4, listHeight)
		m.todoList.SetSize(msg.Width-4, listHeight)
		m.expenseList.SetSize(msg.Width-4, listHeight)
		return m, nil

	case snapshotMsg:
		// Converge optimistic state to the authoritative snapshot.
		m.habits = state.ReduceHabits(m.habits, state.SetHabits{Habits: msg.Habits}, m.today)
		m.todos = state.ReduceTodos(m.todos, state.SetTodos{Todos: msg.Todos})
		m.expenses = state.ReduceExpenses(m.expenses, state.SetExpenses{Expenses: msg.Expenses})
		m.habitList.SetHabits(m.habits.Habits, m.today)
		m.todoList.SetTodos(m.todos.Todos)
		m.expenseList.SetExpenses(m.expenses.Expenses)
		return m, m.waitForSnapshot()
	}

	switch m.state {
	case StateAddHabit:
		return m.updateHabitForm(msg)
	case StateAddTodo:
		return m.updateTodoForm(msg)
	case StateAddExpense:
		return m.updateExpenseForm(msg)
	case StateOnboarding:
		return m.updateOnboardingForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.unsubscribe()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % 4
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + 3) % 4
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Frequency: "daily", Icon: "✦"}
		m.form = NewHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.habits = state.ReduceHabits(m.habits, state.ToggleHabit{ID: msg.ID, Date: m.today}, m.today)
		m.habitList.SetHabits(m.habits.Habits, m.today)
		return m, m.persistCompletedDates(msg.ID)

	case habitlist.DeleteHabitMsg:
		for _, h := range m.habits.Habits {
			if h.ID == msg.ID {
				deleted := h
				m.lastDeleted = &deleted
				break
			}
		}
		m.habits = state.ReduceHabits(m.habits, state.DeleteHabit{ID: msg.ID}, m.today)
		m.habitList.SetHabits(m.habits.Habits, m.today)
		hub := m.hub
		return m, func() tea.Msg {
			if err := hub.DeleteHabit(msg.ID); err != nil {
				logger.Error("Failed to delete habit", "id", msg.ID, "error", err)
			}
			return nil
		}

	case habitlist.UndoDeleteMsg:
		if m.lastDeleted == nil {
			return m, nil
		}
		restored := *m.lastDeleted
		m.lastDeleted = nil
		m.habits = state.ReduceHabits(m.habits, state.RestoreHabit{Habit: restored}, m.today)
		m.habitList.SetHabits(m.habits.Habits, m.today)
		hub := m.hub
		return m, func() tea.Msg {
			if err := hub.AddHabit(restored); err != nil {
				logger.Error("Failed to restore habit", "id", restored.ID, "error", err)
				return nil
			}
			if err := hub.SetCompletedDates(restored.ID, restored.CompletedDates); err != nil {
				logger.Error("Failed to restore completion dates", "id", restored.ID, "error", err)
			}
			return nil
		}

	case todolist.AddTodoMsg:
		m.todoForm = &TodoFormModel{}
		m.form = NewTodoForm(m.todoForm)
		m.previousState = m.state
		m.state = StateAddTodo
		return m, m.form.Init()

	case todolist.ToggleTodoMsg:
		m.todos = state.ReduceTodos(m.todos, state.ToggleTodo{ID: msg.ID})
		m.todoList.SetTodos(m.todos.Todos)
		var toggled *models.Todo
		for i := range m.todos.Todos {
			if m.todos.Todos[i].ID == msg.ID {
				toggled = &m.todos.Todos[i]
				break
			}
		}
		if toggled == nil {
			return m, nil
		}
		todo := *toggled
		hub := m.hub
		return m, func() tea.Msg {
			if err := hub.UpdateTodo(todo); err != nil {
				logger.Error("Failed to update todo", "id", todo.ID, "error", err)
			}
			return nil
		}

	case todolist.DeleteTodoMsg:
		m.todos = state.ReduceTodos(m.todos, state.DeleteTodo{ID: msg.ID})
		m.todoList.SetTodos(m.todos.Todos)
		hub := m.hub
		return m, func() tea.Msg {
			if err := hub.DeleteTodo(msg.ID); err != nil {
				logger.Error("Failed to delete todo", "id", msg.ID, "error", err)
			}
			return nil
		}

	case expenselist.AddExpenseMsg:
		m.expenseForm = &ExpenseFormModel{Category: "other"}
		m.form = NewExpenseForm(m.expenseForm)
		m.previousState = m.state
		m.state = StateAddExpense
		return m, m.form.Init()

	case expenselist.DeleteExpenseMsg:
		m.expenses = state.ReduceExpenses(m.expenses, state.DeleteExpense{ID: msg.ID})
		m.expenseList.SetExpenses(m.expenses.Expenses)
		hub := m.hub
		return m, func() tea.Msg {
			if err := hub.DeleteExpense(msg.ID); err != nil {
				logger.Error("Failed to delete expense", "id", msg.ID, "error", err)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateTodos:
		m.todoList, cmd = m.todoList.Update(msg)
	case StateExpenses:
		m.expenseList, cmd = m.expenseList.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// persistCompletedDates writes the toggled habit's ledger back to the store.
func (m Model) persistCompletedDates(id string) tea.Cmd {
	var dates []string
	found := false
	for _, h := range m.habits.Habits {
		if h.ID == id {
			dates = h.CompletedDates
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	hub := m.hub
	return func() tea.Msg {
		if err := hub.SetCompletedDates(id, dates); err != nil {
			logger.Error("Failed to persist completion dates", "id", id, "error", err)
		}
		return nil
	}
}

func (m Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		habit := models.Habit{
			ID:        uuid.New().String(),
			Title:     strings.TrimSpace(m.habitForm.Title),
			Frequency: models.Frequency(m.habitForm.Frequency),
			Icon:      m.habitForm.Icon,
			CreatedAt: time.Now(),
		}
		m.habits = state.ReduceHabits(m.habits, state.AddHabit{Habit: habit}, m.today)
		m.habitList.SetHabits(m.habits.Habits, m.today)
		m.state = StateHabits
		hub := m.hub
		cmds = append(cmds, func() tea.Msg {
			if err := hub.AddHabit(habit); err != nil {
				logger.Error("Failed to add habit", "title", habit.Title, "error", err)
			}
			return nil
		})
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateTodoForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		todo := models.Todo{
			ID:        uuid.New().String(),
			Title:     strings.TrimSpace(m.todoForm.Title),
			CreatedAt: time.Now(),
		}
		m.todos = state.ReduceTodos(m.todos, state.AddTodo{Todo: todo})
		m.todoList.SetTodos(m.todos.Todos)
		m.state = StateTodos
		hub := m.hub
		cmds = append(cmds, func() tea.Msg {
			if err := hub.AddTodo(todo); err != nil {
				logger.Error("Failed to add todo", "title", todo.Title, "error", err)
			}
			return nil
		})
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateExpenseForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		amount, err := strconv.ParseFloat(m.expenseForm.Amount, 64)
		if err != nil {
			m.state = m.previousState
			return m, tea.Batch(cmds...)
		}
		day := strings.TrimSpace(m.expenseForm.Date)
		if day == "" {
			day = m.today
		}
		expense := models.Expense{
			ID:          uuid.New().String(),
			Amount:      amount,
			Category:    m.expenseForm.Category,
			Description: strings.TrimSpace(m.expenseForm.Description),
			Date:        day,
			CreatedAt:   time.Now(),
		}
		m.expenses = state.ReduceExpenses(m.expenses, state.AddExpense{Expense: expense})
		m.expenseList.SetExpenses(m.expenses.Expenses)
		m.state = StateExpenses
		hub := m.hub
		cmds = append(cmds, func() tea.Msg {
			if err := hub.AddExpense(expense); err != nil {
				logger.Error("Failed to add expense", "id", expense.ID, "error", err)
			}
			return nil
		})
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateOnboardingForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted, huh.StateAborted:
		if m.form.State == huh.StateCompleted {
			m.prefs.ThemeMode = m.onboardingForm.Mode
			m.prefs.ThemeAccent = m.onboardingForm.Accent
			m.prefs.Currency = strings.ToUpper(m.onboardingForm.Currency)
			m.prefs.Timezone = m.onboardingForm.Timezone
		}
		m.prefs.OnboardingCompleted = true
		m.palette = theme.Resolve(theme.ParseMode(m.prefs.ThemeMode), theme.ParseAccent(m.prefs.ThemeAccent))
		if today, err := dateutil.TodayIn(m.prefs.Timezone); err == nil {
			m.today = today
		}
		m.expenseList = expenselist.New(m.expenses.Expenses, m.prefs.Currency, m.width-4, m.height-6)
		m.state = StateHabits
		prefs := m.prefs
		hub := m.hub
		cmds = append(cmds, func() tea.Msg {
			if err := hub.SavePreferences(prefs); err != nil {
				logger.Error("Failed to save preferences", "error", err)
			}
			return nil
		})
	}
	return m, tea.Batch(cmds...)
}
