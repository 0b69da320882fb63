package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/finance"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/validation"
)

type ExpenseCmd struct {
	Add     ExpenseAddCmd     `cmd:"" help:"Record a new expense."`
	List    ExpenseListCmd    `cmd:"" help:"List expenses, newest first."`
	Delete  ExpenseDeleteCmd  `cmd:"" help:"Delete an expense by ID."`
	Summary ExpenseSummaryCmd `cmd:"" help:"Show spending summary."`
}

type ExpenseAddCmd struct {
	Amount      float64 `arg:"" help:"Amount spent."`
	Category    string  `arg:"" help:"Expense category."`
	Description string  `help:"Short description." default:""`
	Date        string  `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ExpenseAddCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = ctx.Today()
	}

	expense := models.Expense{
		ID:          uuid.New().String(),
		Amount:      c.Amount,
		Category:    c.Category,
		Description: c.Description,
		Date:        day,
		CreatedAt:   time.Now(),
	}

	if result := validation.ValidateExpense(expense); result.HasProblems() {
		return result.Err()
	}

	if err := ctx.Store.AddExpense(expense); err != nil {
		return err
	}

	fmt.Printf("Recorded %s expense: %.2f\n", finance.CategoryLabel(c.Category), c.Amount)
	return nil
}

type ExpenseListCmd struct {
	Category string `help:"Only show this category." default:""`
	Limit    int    `help:"Maximum number of expenses to show." default:"20"`
}

func (c *ExpenseListCmd) Run(ctx *Context) error {
	expenses, err := ctx.Store.GetAllExpenses()
	if err != nil {
		return err
	}

	shown := 0
	for _, e := range expenses {
		if c.Category != "" && e.Category != c.Category {
			continue
		}
		if shown >= c.Limit {
			break
		}
		desc := e.Description
		if desc == "" {
			desc = finance.CategoryLabel(e.Category)
		}
		fmt.Printf("%s  %8.2f  %-14s %s\n", e.Date, e.Amount, finance.CategoryLabel(e.Category), desc)
		shown++
	}

	if shown == 0 {
		fmt.Println("No expenses found.")
	}
	return nil
}

type ExpenseDeleteCmd struct {
	ID string `arg:"" help:"Expense ID."`
}

func (c *ExpenseDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteExpense(c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted expense.")
	return nil
}

type ExpenseSummaryCmd struct{}

func (c *ExpenseSummaryCmd) Run(ctx *Context) error {
	expenses, err := ctx.Store.GetAllExpenses()
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		fmt.Println("No expenses recorded.")
		return nil
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return err
	}

	summary := finance.Summarize(expenses, ctx.Today())

	fmt.Printf("Total spent: %.2f %s across %d expenses\n\n", summary.Total, prefs.Currency, summary.Count)
	fmt.Printf("This week:  %10.2f (%+.2f vs last week)\n", summary.ThisWeek, summary.WeekDelta)
	fmt.Printf("This month: %10.2f (%+.2f vs last month)\n", summary.ThisMonth, summary.MonthDelta)

	if len(summary.ByCategory) > 0 {
		fmt.Println("\nBy category:")
		for _, ct := range summary.ByCategory {
			fmt.Printf("  %-14s %10.2f\n", ct.Label, ct.Amount)
		}
	}

	return nil
}
