package expenselist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/habitflow/habitflow/internal/finance"
	"github.com/habitflow/habitflow/internal/models"
)

type AddExpenseMsg struct{}

type DeleteExpenseMsg struct {
	ID string
}

type Item struct {
	Expense  models.Expense
	Currency string
}

func (i Item) Title() string {
	desc := i.Expense.Description
	if desc == "" {
		desc = finance.CategoryLabel(i.Expense.Category)
	}
	return fmt.Sprintf("%.2f %s  %s", i.Expense.Amount, i.Currency, desc)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s", i.Expense.Date, finance.CategoryLabel(i.Expense.Category))
}

func (i Item) FilterValue() string { return i.Expense.Description }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list     list.Model
	keys     KeyMap
	currency string
}

func New(expenses []models.Expense, currency string, width, height int) Model {
	l := list.New(toItems(expenses, currency), list.NewDefaultDelegate(), width, height)
	l.Title = "Expenses"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys, currency: currency}
}

func toItems(expenses []models.Expense, currency string) []list.Item {
	items := make([]list.Item, len(expenses))
	for i, e := range expenses {
		items[i] = Item{Expense: e, Currency: currency}
	}
	return items
}

func (m *Model) SetExpenses(expenses []models.Expense) {
	m.list.SetItems(toItems(expenses, m.currency))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddExpenseMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteExpenseMsg{ID: i.Expense.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No expenses yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
