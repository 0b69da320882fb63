package state

import (
	"github.com/habitflow/habitflow/internal/models"
)

// ExpenseAction is a named transition on the expense collection.
type ExpenseAction interface{ isExpenseAction() }

type SetExpenses struct {
	Expenses []models.Expense
}

type AddExpense struct {
	Expense models.Expense
}

type UpdateExpense struct {
	ID    string
	Patch models.ExpensePatch
}

type DeleteExpense struct {
	ID string
}

func (SetExpenses) isExpenseAction()   {}
func (AddExpense) isExpenseAction()    {}
func (UpdateExpense) isExpenseAction() {}
func (DeleteExpense) isExpenseAction() {}

// ExpenseState is an immutable snapshot of the expense collection.
type ExpenseState struct {
	Expenses []models.Expense
	Loading  bool
}

func NewExpenseState() ExpenseState {
	return ExpenseState{Expenses: []models.Expense{}, Loading: true}
}

// ReduceExpenses applies one action and returns the next state.
func ReduceExpenses(s ExpenseState, action ExpenseAction) ExpenseState {
	switch a := action.(type) {
	case SetExpenses:
		expenses := make([]models.Expense, len(a.Expenses))
		copy(expenses, a.Expenses)
		return ExpenseState{Expenses: expenses, Loading: false}

	case AddExpense:
		expenses := make([]models.Expense, 0, len(s.Expenses)+1)
		expenses = append(expenses, s.Expenses...)
		expenses = append(expenses, a.Expense)
		return ExpenseState{Expenses: expenses, Loading: s.Loading}

	case UpdateExpense:
		i := indexOfExpense(s.Expenses, a.ID)
		if i < 0 {
			return s
		}
		expenses := make([]models.Expense, len(s.Expenses))
		copy(expenses, s.Expenses)
		expenses[i] = mergeExpense(expenses[i], a.Patch)
		return ExpenseState{Expenses: expenses, Loading: s.Loading}

	case DeleteExpense:
		i := indexOfExpense(s.Expenses, a.ID)
		if i < 0 {
			return s
		}
		expenses := make([]models.Expense, 0, len(s.Expenses)-1)
		expenses = append(expenses, s.Expenses[:i]...)
		expenses = append(expenses, s.Expenses[i+1:]...)
		return ExpenseState{Expenses: expenses, Loading: s.Loading}
	}
	return s
}

func indexOfExpense(expenses []models.Expense, id string) int {
	for i := range expenses {
		if expenses[i].ID == id {
			return i
		}
	}
	return -1
}

func mergeExpense(e models.Expense, p models.ExpensePatch) models.Expense {
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	return e
}
