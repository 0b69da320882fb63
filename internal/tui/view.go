package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/habitflow/habitflow/internal/finance"
	"github.com/habitflow/habitflow/internal/streak"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = m.palette.Doc.Render(m.habitList.View())
	case StateTodos:
		content = m.palette.Doc.Render(m.todoList.View())
	case StateExpenses:
		content = m.palette.Doc.Render(m.expenseList.View())
	case StateSummary:
		content = m.palette.Doc.Render(m.viewSummary())
	case StateAddHabit, StateAddTodo, StateAddExpense, StateOnboarding:
		return m.form.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	titles := []string{"Habits", "Todos", "Expenses", "Summary"}
	for i, title := range titles {
		if m.state == SessionState(i) {
			tabs = append(tabs, m.palette.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.palette.Tab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSummary() string {
	var b strings.Builder

	b.WriteString(m.palette.Title.Render("Today"))
	b.WriteString("\n\n")

	if len(m.habits.Habits) == 0 {
		b.WriteString(m.palette.Muted.Render("No habits yet."))
		b.WriteString("\n")
	} else {
		done := 0
		for _, h := range m.habits.Habits {
			if streak.CompletedOn(h.CompletedDates, m.today) {
				done++
			}
		}
		b.WriteString(fmt.Sprintf("Habits completed: %d/%d\n", done, len(m.habits.Habits)))

		best := 0
		for _, h := range m.habits.Habits {
			if h.Streak > best {
				best = h.Streak
			}
		}
		b.WriteString(fmt.Sprintf("Best active streak: %d\n", best))

		b.WriteString("\nLast 7 days:\n")
		for _, h := range m.habits.Habits {
			var row strings.Builder
			for _, day := range streak.WeeklyCompletion(h.CompletedDates, m.today) {
				if day.Completed {
					row.WriteString(m.palette.Success.Render("■"))
				} else {
					row.WriteString(m.palette.Muted.Render("·"))
				}
				row.WriteString(" ")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", row.String(), h.Title))
		}
	}

	open := 0
	for _, t := range m.todos.Todos {
		if !t.Completed {
			open++
		}
	}
	b.WriteString(fmt.Sprintf("\nOpen todos: %d\n", open))

	summary := finance.Summarize(m.expenses.Expenses, m.today)
	b.WriteString("\n")
	b.WriteString(m.palette.Title.Render("Spending"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("This week:  %.2f %s\n", summary.ThisWeek, m.prefs.Currency))
	b.WriteString(fmt.Sprintf("This month: %.2f %s\n", summary.ThisMonth, m.prefs.Currency))
	if summary.TopCategory != "" {
		b.WriteString(fmt.Sprintf("Top category: %s\n", finance.CategoryLabel(summary.TopCategory)))
	}

	return b.String()
}
