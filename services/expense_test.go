package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piggypal/piggypal-api/models"
)

func findCategory(t *testing.T, budget models.Budget, name string) models.BudgetCategory {
	t.Helper()
	for _, c := range budget.Categories {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not found in budget", name)
	return models.BudgetCategory{}
}

func TestValidateExpenseInput(t *testing.T) {
	valid := models.ExpenseInput{
		Description: "Lunch",
		Amount:      12.50,
		Date:        "2026-08-15",
		Category:    "Food",
	}

	tests := []struct {
		name      string
		mutate    func(in *models.ExpenseInput)
		wantField string
	}{
		{"valid", func(in *models.ExpenseInput) {}, ""},
		{"blank description", func(in *models.ExpenseInput) { in.Description = "  " }, "description"},
		{"zero amount", func(in *models.ExpenseInput) { in.Amount = 0 }, "amount"},
		{"negative amount", func(in *models.ExpenseInput) { in.Amount = -5 }, "amount"},
		{"missing date", func(in *models.ExpenseInput) { in.Date = "" }, "date"},
		{"malformed date", func(in *models.ExpenseInput) { in.Date = "15/08/2026" }, "date"},
		{"missing category", func(in *models.ExpenseInput) { in.Category = "" }, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := validateExpenseInput(in)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var validation *models.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if validation.Field != tt.wantField {
				t.Errorf("field = %q, want %q", validation.Field, tt.wantField)
			}
		})
	}
}

func TestAddAndDeleteExpenseKeepsBudgetInSync(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	expense, err := svc.Add(ctx, models.ExpenseInput{
		Description: "Cinema ticket",
		Amount:      15,
		Date:        "2026-08-20",
		Category:    "Entertainment",
	})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}

	budget, err := store.loadBudget(ctx)
	if err != nil {
		t.Fatalf("load budget: %v", err)
	}
	if got := findCategory(t, budget, "Entertainment").Spent; got != 15 {
		t.Errorf("spent after add = %v, want 15", got)
	}

	if err := svc.Delete(ctx, expense.ID); err != nil {
		t.Fatalf("delete expense: %v", err)
	}

	budget, err = store.loadBudget(ctx)
	if err != nil {
		t.Fatalf("load budget: %v", err)
	}
	if got := findCategory(t, budget, "Entertainment").Spent; got != 0 {
		t.Errorf("spent after delete = %v, want 0", got)
	}
}

func TestAddExpenseCreatesMissingCategory(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, models.ExpenseInput{
		Description: "USB cable",
		Amount:      30,
		Date:        "2026-08-20",
		Category:    "Gadgets",
	})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}

	budget, err := store.loadBudget(ctx)
	if err != nil {
		t.Fatalf("load budget: %v", err)
	}
	created := findCategory(t, budget, "Gadgets")
	if created.Limit != 60 {
		t.Errorf("created category limit = %v, want 60", created.Limit)
	}
	if created.Spent != 30 {
		t.Errorf("created category spent = %v, want 30", created.Spent)
	}
}

func TestUpdateExpenseRecategorizes(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	expense, err := svc.Add(ctx, models.ExpenseInput{
		Description: "Snacks",
		Amount:      20,
		Date:        "2026-08-20",
		Category:    "Food",
	})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}

	_, err = svc.Update(ctx, expense.ID, models.ExpenseInput{
		Description: "Arcade",
		Amount:      35,
		Date:        "2026-08-21",
		Category:    "Entertainment",
	})
	if err != nil {
		t.Fatalf("update expense: %v", err)
	}

	budget, err := store.loadBudget(ctx)
	if err != nil {
		t.Fatalf("load budget: %v", err)
	}
	if got := findCategory(t, budget, "Food").Spent; got != 0 {
		t.Errorf("old category spent = %v, want 0", got)
	}
	if got := findCategory(t, budget, "Entertainment").Spent; got != 35 {
		t.Errorf("new category spent = %v, want 35", got)
	}
}

func TestUpdateExpenseNotFound(t *testing.T) {
	svc := NewExpenseService(newTestStore(t))

	_, err := svc.Update(context.Background(), "missing-id", models.ExpenseInput{
		Description: "Anything",
		Amount:      5,
		Date:        "2026-08-20",
		Category:    "Food",
	})

	var notFound *models.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestFilterByPeriod(t *testing.T) {
	today := models.NewDate(2026, time.August, 20)
	expenses := []models.Expense{
		{ID: "recent", Date: today.AddDate(0, 0, -3)},
		{ID: "old", Date: today.AddDate(0, 0, -10)},
		{ID: "ancient", Date: today.AddDate(0, -2, 0)},
	}

	tests := []struct {
		period string
		want   []string
	}{
		{"week", []string{"recent"}},
		{"month", []string{"recent", "old"}},
		{"year", []string{"recent", "old", "ancient"}},
		{"all", []string{"recent", "old", "ancient"}},
		{"", []string{"recent", "old", "ancient"}},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			filtered := FilterByPeriod(expenses, tt.period, today)
			if len(filtered) != len(tt.want) {
				t.Fatalf("got %d expenses, want %d", len(filtered), len(tt.want))
			}
			for i, id := range tt.want {
				if filtered[i].ID != id {
					t.Errorf("filtered[%d].ID = %q, want %q", i, filtered[i].ID, id)
				}
			}
		})
	}
}

func TestAggregatesOnEmptyList(t *testing.T) {
	if got := TotalAmount(nil); got != 0 {
		t.Errorf("TotalAmount(nil) = %v, want 0", got)
	}
	if got := AverageAmount(nil); got != 0 {
		t.Errorf("AverageAmount(nil) = %v, want 0", got)
	}
	if got := HighestAmount(nil); got != 0 {
		t.Errorf("HighestAmount(nil) = %v, want 0", got)
	}
}

func TestListFiltersAndSummarizes(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	today := models.Today()
	entries := []models.ExpenseInput{
		{Description: "Bus pass", Amount: 40, Date: today.String(), Category: "Transportation"},
		{Description: "Textbook", Amount: 60, Date: today.String(), Category: "Education"},
		{Description: "Bus snack", Amount: 5, Date: today.String(), Category: "Food"},
	}
	for _, in := range entries {
		if _, err := svc.Add(ctx, in); err != nil {
			t.Fatalf("add %q: %v", in.Description, err)
		}
	}

	expenses, summary, err := svc.List(ctx, "all", "bus")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("got %d expenses, want 2", len(expenses))
	}
	if summary.Total != 45 {
		t.Errorf("summary total = %v, want 45", summary.Total)
	}
	if summary.Highest != 40 {
		t.Errorf("summary highest = %v, want 40", summary.Highest)
	}
	if summary.Count != 2 {
		t.Errorf("summary count = %d, want 2", summary.Count)
	}
}
