package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/utils"
)

// BudgetService owns the budget document: the category list and income.
type BudgetService struct {
	store *DomainStore
}

func NewBudgetService(store *DomainStore) *BudgetService {
	return &BudgetService{store: store}
}

// Get returns the budget document and its derived overview.
func (s *BudgetService) Get(ctx context.Context) (models.Budget, models.BudgetOverview, error) {
	budget, err := s.store.loadBudget(ctx)
	if err != nil {
		return models.Budget{}, models.BudgetOverview{}, err
	}
	return budget, Overview(budget), nil
}

// Overview derives the aggregate budget view. The status check uses the
// unclamped ratio, so an overrun past 100% still registers as exceeded.
func Overview(budget models.Budget) models.BudgetOverview {
	overview := models.BudgetOverview{
		Categories: make([]models.CategoryProgress, 0, len(budget.Categories)),
	}

	for _, c := range budget.Categories {
		overview.TotalLimit += c.Limit
		overview.TotalSpent += c.Spent

		var percentage float64
		if c.Limit > 0 {
			percentage = c.Spent / c.Limit * 100
		}
		overview.Categories = append(overview.Categories, models.CategoryProgress{
			Name:       c.Name,
			Limit:      c.Limit,
			Spent:      c.Spent,
			Remaining:  c.Limit - c.Spent,
			Percentage: clampPercentage(percentage),
		})
	}

	// Highest limits first, display order only.
	sort.SliceStable(overview.Categories, func(i, j int) bool {
		return overview.Categories[i].Limit > overview.Categories[j].Limit
	})

	overview.Remaining = overview.TotalLimit - overview.TotalSpent
	switch {
	case overview.Remaining < 0:
		overview.Status = models.BudgetStatusExceeded
	case overview.Remaining < overview.TotalLimit*0.1:
		overview.Status = models.BudgetStatusWarning
	default:
		overview.Status = models.BudgetStatusOnTrack
	}

	return overview
}

func clampPercentage(p float64) float64 {
	return math.Min(math.Max(p, 0), 100)
}

func validateCategoryInput(in models.CategoryInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return models.NewValidationError("name", "Please enter a category name")
	}
	if math.IsNaN(in.Limit) || math.IsInf(in.Limit, 0) || in.Limit <= 0 {
		return models.NewValidationError("limit", "Please enter a valid limit")
	}
	return nil
}

// UpsertCategory creates a category or, when existingName is given, edits
// the category stored under that exact name. A rename retroactively
// relabels every expense carrying the old name.
func (s *BudgetService) UpsertCategory(ctx context.Context, in models.CategoryInput, existingName string) (models.Budget, error) {
	if err := validateCategoryInput(in); err != nil {
		return models.Budget{}, err
	}
	name := strings.TrimSpace(in.Name)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	budget, err := s.store.loadBudget(ctx)
	if err != nil {
		return models.Budget{}, err
	}

	if existingName != "" {
		index := -1
		for i := range budget.Categories {
			if budget.Categories[i].Name == existingName {
				index = i
				break
			}
		}
		if index == -1 {
			return models.Budget{}, &models.NotFoundError{Kind: "category", Ref: existingName}
		}

		budget.Categories[index].Name = name
		budget.Categories[index].Limit = in.Limit

		if existingName != name {
			if err := s.relabelExpenses(ctx, existingName, name); err != nil {
				return models.Budget{}, err
			}
		}
	} else {
		for _, c := range budget.Categories {
			if strings.EqualFold(c.Name, name) {
				return models.Budget{}, &models.DuplicateNameError{Name: name}
			}
		}
		budget.Categories = append(budget.Categories, models.BudgetCategory{Name: name, Limit: in.Limit})
	}

	if err := s.store.saveBudget(ctx, budget); err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

func (s *BudgetService) relabelExpenses(ctx context.Context, oldName, newName string) error {
	expenses, err := s.store.loadExpenses(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range expenses {
		if expenses[i].Category == oldName {
			expenses[i].Category = newName
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.store.saveExpenses(ctx, expenses)
}

// DeleteCategory removes the category stored under the exact name. Expenses
// in that category are kept; they point at a nonexistent category until it
// is recreated. The confirmation gate sits at the API boundary.
func (s *BudgetService) DeleteCategory(ctx context.Context, name string) (models.Budget, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	budget, err := s.store.loadBudget(ctx)
	if err != nil {
		return models.Budget{}, err
	}

	index := -1
	for i := range budget.Categories {
		if budget.Categories[i].Name == name {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Budget{}, &models.NotFoundError{Kind: "category", Ref: name}
	}

	budget.Categories = append(budget.Categories[:index], budget.Categories[index+1:]...)

	if err := s.store.saveBudget(ctx, budget); err != nil {
		return models.Budget{}, err
	}

	utils.SafeInfo("Category %q deleted", name)
	return budget, nil
}

// ComputePlan derives the calculator totals and the category list a commit
// would install: one zero-spent entry per nonzero expense figure.
func ComputePlan(in models.PlanInput) models.PlanResult {
	result := models.PlanResult{
		TotalIncome: in.MainIncome + in.SideIncome + in.OtherIncome,
	}

	figures := []struct {
		name   string
		amount float64
	}{
		{"Rent", in.Housing},
		{"Food", in.Food},
		{"Transport", in.Transport},
		{"Utilities", in.Utilities},
		{"Entertainment", in.Entertainment},
		{"Health", in.Health},
		{"Education", in.Education},
		{"Other", in.Other},
	}

	for _, f := range figures {
		result.TotalExpenses += f.amount
		if f.amount > 0 {
			result.Categories = append(result.Categories, models.BudgetCategory{Name: f.name, Limit: f.amount})
		}
	}

	result.Available = result.TotalIncome - result.TotalExpenses
	return result
}

// ApplyPlan commits the calculator result: the whole category list is
// replaced and income set to the computed total. Existing categories and
// their spent progress are discarded, not merged.
func (s *BudgetService) ApplyPlan(ctx context.Context, in models.PlanInput) (models.Budget, models.PlanResult, error) {
	result := ComputePlan(in)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	budget, err := s.store.loadBudget(ctx)
	if err != nil {
		return models.Budget{}, models.PlanResult{}, err
	}

	budget.Categories = result.Categories
	budget.Income = result.TotalIncome

	if err := s.store.saveBudget(ctx, budget); err != nil {
		return models.Budget{}, models.PlanResult{}, err
	}
	return budget, result, nil
}

// RecomputeSpent repairs every category's spent figure from the true sum of
// its expenses. Counterpart to the incremental patching the expense
// mutations perform.
func (s *BudgetService) RecomputeSpent(ctx context.Context) (models.Budget, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	budget, err := s.store.loadBudget(ctx)
	if err != nil {
		return models.Budget{}, err
	}
	expenses, err := s.store.loadExpenses(ctx)
	if err != nil {
		return models.Budget{}, err
	}

	for i := range budget.Categories {
		var spent float64
		for _, e := range expenses {
			if strings.EqualFold(e.Category, budget.Categories[i].Name) {
				spent += e.Amount
			}
		}
		budget.Categories[i].Spent = spent
	}

	if err := s.store.saveBudget(ctx, budget); err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}
