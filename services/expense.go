package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/utils"
)

// ExpenseService owns the expense document and keeps the budget document's
// spent figures in sync with every expense mutation.
type ExpenseService struct {
	store *DomainStore
}

func NewExpenseService(store *DomainStore) *ExpenseService {
	return &ExpenseService{store: store}
}

func validateExpenseInput(in models.ExpenseInput) (models.Date, error) {
	if strings.TrimSpace(in.Description) == "" {
		return models.Date{}, models.NewValidationError("description", "Please enter a description")
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return models.Date{}, models.NewValidationError("amount", "Please enter a valid amount")
	}
	if strings.TrimSpace(in.Date) == "" {
		return models.Date{}, models.NewValidationError("date", "Please select a date")
	}
	date, err := models.ParseDate(in.Date)
	if err != nil {
		return models.Date{}, models.NewValidationError("date", "Please select a valid date")
	}
	if strings.TrimSpace(in.Category) == "" {
		return models.Date{}, models.NewValidationError("category", "Please select a category")
	}
	return date, nil
}

// Add validates the input, appends the expense, and credits its amount to
// the matching budget category, creating the category when missing.
func (s *ExpenseService) Add(ctx context.Context, in models.ExpenseInput) (models.Expense, error) {
	date, err := validateExpenseInput(in)
	if err != nil {
		return models.Expense{}, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	expenses, err := s.store.loadExpenses(ctx)
	if err != nil {
		return models.Expense{}, err
	}
	budget, err := s.store.loadBudget(ctx)
	if err != nil {
		return models.Expense{}, err
	}

	expense := models.Expense{
		ID:          uuid.New().String(),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        date,
		Category:    strings.TrimSpace(in.Category),
		Notes:       strings.TrimSpace(in.Notes),
	}

	expenses = append(expenses, expense)
	applyCategorySpent(&budget, expense.Category, expense.Amount)

	if err := s.store.saveExpenses(ctx, expenses); err != nil {
		return models.Expense{}, err
	}
	if err := s.store.saveBudget(ctx, budget); err != nil {
		return models.Expense{}, err
	}

	utils.SafeInfo("Expense %s added: %s", utils.MaskID(expense.ID), utils.MaskAmount(expense.Amount))
	return expense, nil
}

// Update rewrites the expense. When the category or amount changed, the old
// contribution is reversed before the new one is applied.
func (s *ExpenseService) Update(ctx context.Context, id string, in models.ExpenseInput) (models.Expense, error) {
	date, err := validateExpenseInput(in)
	if err != nil {
		return models.Expense{}, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	expenses, err := s.store.loadExpenses(ctx)
	if err != nil {
		return models.Expense{}, err
	}

	index := -1
	for i := range expenses {
		if expenses[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Expense{}, &models.NotFoundError{Kind: "expense", Ref: id}
	}

	old := expenses[index]
	updated := models.Expense{
		ID:          id,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        date,
		Category:    strings.TrimSpace(in.Category),
		Notes:       strings.TrimSpace(in.Notes),
	}
	expenses[index] = updated

	budget, err := s.store.loadBudget(ctx)
	if err != nil {
		return models.Expense{}, err
	}
	if old.Category != updated.Category || old.Amount != updated.Amount {
		applyCategorySpent(&budget, old.Category, -old.Amount)
		applyCategorySpent(&budget, updated.Category, updated.Amount)
	}

	if err := s.store.saveExpenses(ctx, expenses); err != nil {
		return models.Expense{}, err
	}
	if err := s.store.saveBudget(ctx, budget); err != nil {
		return models.Expense{}, err
	}

	return updated, nil
}

// Delete removes the expense and reverses its budget contribution.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	expenses, err := s.store.loadExpenses(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i := range expenses {
		if expenses[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return &models.NotFoundError{Kind: "expense", Ref: id}
	}

	removed := expenses[index]
	expenses = append(expenses[:index], expenses[index+1:]...)

	budget, err := s.store.loadBudget(ctx)
	if err != nil {
		return err
	}
	applyCategorySpent(&budget, removed.Category, -removed.Amount)

	if err := s.store.saveExpenses(ctx, expenses); err != nil {
		return err
	}
	if err := s.store.saveBudget(ctx, budget); err != nil {
		return err
	}

	utils.SafeInfo("Expense %s deleted", utils.MaskID(id))
	return nil
}

// List returns the expenses within the period, narrowed by the search query,
// most recent first, together with their aggregate summary.
func (s *ExpenseService) List(ctx context.Context, period, query string) ([]models.Expense, models.ExpenseSummary, error) {
	expenses, err := s.store.loadExpenses(ctx)
	if err != nil {
		return nil, models.ExpenseSummary{}, err
	}

	filtered := FilterByPeriod(expenses, period, models.Today())

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		matched := filtered[:0:0]
		for _, e := range filtered {
			if strings.Contains(strings.ToLower(e.Description), q) ||
				strings.Contains(strings.ToLower(e.Category), q) ||
				strings.Contains(strings.ToLower(e.Notes), q) {
				matched = append(matched, e)
			}
		}
		filtered = matched
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[j].Date.Before(filtered[i].Date.Time)
	})

	summary := models.ExpenseSummary{
		Total:   TotalAmount(filtered),
		Average: AverageAmount(filtered),
		Highest: HighestAmount(filtered),
		Count:   len(filtered),
	}
	return filtered, summary, nil
}

// FilterByPeriod keeps the expenses dated within [today-N, today]: 7 days
// for "week", one calendar month for "month", one calendar year for "year",
// and everything for any other period. Source order is preserved.
func FilterByPeriod(expenses []models.Expense, period string, today models.Date) []models.Expense {
	var start models.Date
	switch period {
	case "week":
		start = today.AddDate(0, 0, -7)
	case "month":
		start = today.AddDate(0, -1, 0)
	case "year":
		start = today.AddDate(-1, 0, 0)
	default:
		return append([]models.Expense(nil), expenses...)
	}

	filtered := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !e.Date.Before(start.Time) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// TotalAmount sums the amounts of the given expenses.
func TotalAmount(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// AverageAmount returns 0 for an empty list.
func AverageAmount(expenses []models.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	return TotalAmount(expenses) / float64(len(expenses))
}

// HighestAmount returns 0 for an empty list.
func HighestAmount(expenses []models.Expense) float64 {
	var highest float64
	for _, e := range expenses {
		if e.Amount > highest {
			highest = e.Amount
		}
	}
	return highest
}

// applyCategorySpent adjusts the spent figure of the category matching name
// (case-insensitive). A missing category is synthesized with a limit of
// twice the applied amount.
func applyCategorySpent(budget *models.Budget, name string, delta float64) {
	for i := range budget.Categories {
		if strings.EqualFold(budget.Categories[i].Name, name) {
			budget.Categories[i].Spent += delta
			return
		}
	}
	budget.Categories = append(budget.Categories, models.BudgetCategory{
		Name:  name,
		Limit: delta * 2,
		Spent: delta,
	})
}
