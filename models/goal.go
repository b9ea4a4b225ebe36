package models

// Goal statuses, derived from progress and days remaining.
const (
	GoalStatusCompleted  = "completed"
	GoalStatusOverdue    = "overdue"
	GoalStatusUrgent     = "urgent"
	GoalStatusInProgress = "in-progress"
)

// Deposit is one incremental contribution toward a goal.
type Deposit struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   Date    `json:"date"`
	Notes  string  `json:"notes,omitempty"`
}

// Goal is a savings goal with its deposit ledger. CurrentAmount equals the
// sum of deposit amounts after every creation and deposit operation.
type Goal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	TargetDate    Date      `json:"targetDate"`
	StartDate     Date      `json:"startDate"`
	Notes         string    `json:"notes,omitempty"`
	Deposits      []Deposit `json:"deposits"`
}

// ProgressPercentage is currentAmount/targetAmount×100, unclamped; 0 when
// the target is 0.
func (g Goal) ProgressPercentage() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// RemainingAmount never reports below zero.
func (g Goal) RemainingAmount() float64 {
	if remaining := g.TargetAmount - g.CurrentAmount; remaining > 0 {
		return remaining
	}
	return 0
}

// DaysRemaining counts whole days from today to the target date, negative
// once overdue.
func (g Goal) DaysRemaining(today Date) int {
	return today.DaysUntil(g.TargetDate)
}

// Status classifies the goal: completed beats overdue beats urgent (30 days
// or fewer left).
func (g Goal) Status(today Date) string {
	switch days := g.DaysRemaining(today); {
	case g.ProgressPercentage() >= 100:
		return GoalStatusCompleted
	case days < 0:
		return GoalStatusOverdue
	case days <= 30:
		return GoalStatusUrgent
	default:
		return GoalStatusInProgress
	}
}

// GoalInput carries the goal creation form fields.
type GoalInput struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetDate    string  `json:"targetDate"`
	Notes         string  `json:"notes"`
}

// GoalUpdate carries the goal edit form fields. Edits never touch the
// current amount or the deposit ledger.
type GoalUpdate struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	TargetDate   string  `json:"targetDate"`
	Notes        string  `json:"notes"`
}

// DepositInput carries the add-deposit form fields.
type DepositInput struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes"`
}

// GoalSummary aggregates across every goal.
type GoalSummary struct {
	TotalGoals      int     `json:"total_goals"`
	Completed       int     `json:"completed"`
	InProgress      int     `json:"in_progress"`
	TotalSaved      float64 `json:"total_saved"`
	TotalTarget     float64 `json:"total_target"`
	OverallProgress float64 `json:"overall_progress"`
}

// Milestone kinds.
const (
	MilestoneDeposit    = "deposit"
	MilestoneCompletion = "completion"
)

// Milestone is a derived activity-feed event: either a deposit or the
// completion of a goal.
type Milestone struct {
	Type     string  `json:"type"`
	Date     Date    `json:"date"`
	GoalID   string  `json:"goal_id"`
	GoalName string  `json:"goal_name"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes,omitempty"`
}

// Deposit frequencies accepted by the required-deposit calculator.
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// FrequencyPeriodDays maps a frequency to its period length in days; 0 for
// unrecognized values.
func FrequencyPeriodDays(frequency string) int {
	switch frequency {
	case FrequencyDaily:
		return 1
	case FrequencyWeekly:
		return 7
	case FrequencyBiweekly:
		return 14
	case FrequencyMonthly:
		return 30
	default:
		return 0
	}
}

// DepositPlanInput carries the goal calculator form fields.
type DepositPlanInput struct {
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetDate    string  `json:"targetDate"`
	Frequency     string  `json:"frequency"`
}

// DepositPlan is the calculator output: how much to put aside, how often,
// to reach the target by its date.
type DepositPlan struct {
	Frequency        string  `json:"frequency"`
	DaysRemaining    int     `json:"days_remaining"`
	RemainingAmount  float64 `json:"remaining_amount"`
	NumberOfDeposits int     `json:"number_of_deposits"`
	DepositAmount    float64 `json:"deposit_amount"`
}
