package models

// Expense is one recorded spending entry.
type Expense struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        Date    `json:"date"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes,omitempty"`
}

// ExpenseInput carries the expense form fields. Date arrives as a
// "YYYY-MM-DD" string and is validated before use.
type ExpenseInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes"`
}

// ExpenseSummary aggregates the currently listed expenses.
type ExpenseSummary struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Highest float64 `json:"highest"`
	Count   int     `json:"count"`
}
