package models

// Budget status classifications, derived from remaining = totalLimit - totalSpent.
const (
	BudgetStatusExceeded = "exceeded"
	BudgetStatusWarning  = "warning"
	BudgetStatusOnTrack  = "on-track"
)

// BudgetCategory is a named spending bucket. Spent is patched incrementally
// by expense mutations and may be repaired with an explicit recompute.
type BudgetCategory struct {
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
	Spent float64 `json:"spent"`
}

// Budget is the whole budget document: one income figure plus the category list.
type Budget struct {
	Income     float64          `json:"income"`
	Categories []BudgetCategory `json:"categories"`
}

// DefaultBudget seeds the starter category distribution written on cold start.
func DefaultBudget() Budget {
	names := []string{"Food", "Entertainment", "Transportation", "Education", "Savings", "Other"}
	categories := make([]BudgetCategory, 0, len(names))
	for _, name := range names {
		categories = append(categories, BudgetCategory{Name: name})
	}
	return Budget{Categories: categories}
}

// CategoryInput carries the category create/edit form fields.
type CategoryInput struct {
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
}

// CategoryProgress is the per-category display row of the budget overview.
// Percentage is clamped to [0,100]; Remaining is not, so overruns show.
type CategoryProgress struct {
	Name       string  `json:"name"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// BudgetOverview is the derived aggregate view of the budget document.
type BudgetOverview struct {
	TotalLimit float64            `json:"total_limit"`
	TotalSpent float64            `json:"total_spent"`
	Remaining  float64            `json:"remaining"`
	Status     string             `json:"status"`
	Categories []CategoryProgress `json:"categories"`
}

// PlanInput enumerates the budget calculator form: income figures and
// per-category monthly expense estimates.
type PlanInput struct {
	MainIncome  float64 `json:"main_income"`
	SideIncome  float64 `json:"side_income"`
	OtherIncome float64 `json:"other_income"`

	Housing       float64 `json:"housing"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Utilities     float64 `json:"utilities"`
	Entertainment float64 `json:"entertainment"`
	Health        float64 `json:"health"`
	Education     float64 `json:"education"`
	Other         float64 `json:"other"`
}

// PlanResult is the calculator output. Categories is the list a commit
// replaces the budget with: one zero-spent entry per nonzero expense figure.
type PlanResult struct {
	TotalIncome   float64          `json:"total_income"`
	TotalExpenses float64          `json:"total_expenses"`
	Available     float64          `json:"available"`
	Categories    []BudgetCategory `json:"categories"`
}
