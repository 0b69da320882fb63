package state

import (
	"reflect"
	"testing"
	"time"

	"github.com/habitflow/habitflow/internal/models"
)

func expenseFixture(id string, amount float64, category, date string) models.Expense {
	return models.Expense{
		ID:        id,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: time.Now(),
	}
}

func TestReduceExpenses(t *testing.T) {
	s := NewExpenseState()
	if !s.Loading {
		t.Fatal("initial state should be loading")
	}

	s = ReduceExpenses(s, SetExpenses{Expenses: []models.Expense{
		expenseFixture("e1", 12.50, "food", "2024-06-01"),
	}})
	if s.Loading {
		t.Error("SetExpenses must clear the loading flag")
	}

	s = ReduceExpenses(s, AddExpense{Expense: expenseFixture("e2", 40, "transport", "2024-06-02")})
	if len(s.Expenses) != 2 {
		t.Fatalf("got %d expenses, want 2", len(s.Expenses))
	}

	amount := 13.75
	next := ReduceExpenses(s, UpdateExpense{ID: "e1", Patch: models.ExpensePatch{Amount: &amount}})
	if next.Expenses[0].Amount != 13.75 {
		t.Errorf("amount = %v, want 13.75", next.Expenses[0].Amount)
	}
	if s.Expenses[0].Amount != 12.50 {
		t.Error("update mutated the previous snapshot")
	}

	next = ReduceExpenses(next, DeleteExpense{ID: "e2"})
	if len(next.Expenses) != 1 {
		t.Fatalf("got %d expenses after delete, want 1", len(next.Expenses))
	}

	same := ReduceExpenses(next, UpdateExpense{ID: "missing", Patch: models.ExpensePatch{Amount: &amount}})
	if !reflect.DeepEqual(same.Expenses, next.Expenses) {
		t.Error("update with unknown ID must be a no-op")
	}
}
