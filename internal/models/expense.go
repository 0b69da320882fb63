package models

import "time"

// Expense represents a single spend entry. Aggregations (sums, top category,
// weekly/monthly deltas) are computed on read, never stored.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"` // > 0
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"` // YYYY-MM-DD format
	CreatedAt   time.Time `json:"created_at"`
}

// ExpensePatch carries a partial update; nil fields are left untouched.
type ExpensePatch struct {
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        *string  `json:"date,omitempty"`
}
