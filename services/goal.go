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

// GoalService owns the goals document: savings goals and their deposit
// ledgers. CurrentAmount always equals the sum of a goal's deposits.
type GoalService struct {
	store *DomainStore
}

func NewGoalService(store *DomainStore) *GoalService {
	return &GoalService{store: store}
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Create validates the form and appends the goal. A nonzero starting amount
// seeds one initial deposit dated today.
func (s *GoalService) Create(ctx context.Context, in models.GoalInput) (models.Goal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Goal{}, models.NewValidationError("name", "Please enter a goal name")
	}
	if !validAmount(in.TargetAmount) || in.TargetAmount <= 0 {
		return models.Goal{}, models.NewValidationError("targetAmount", "Please enter a valid amount")
	}
	if !validAmount(in.CurrentAmount) || in.CurrentAmount < 0 {
		return models.Goal{}, models.NewValidationError("currentAmount", "Please enter a valid amount")
	}
	if strings.TrimSpace(in.TargetDate) == "" {
		return models.Goal{}, models.NewValidationError("targetDate", "Please select a target date")
	}
	targetDate, err := models.ParseDate(in.TargetDate)
	if err != nil {
		return models.Goal{}, models.NewValidationError("targetDate", "Please select a valid target date")
	}
	today := models.Today()
	if targetDate.Before(today.Time) {
		return models.Goal{}, models.NewValidationError("targetDate", "Target date cannot be in the past")
	}

	goal := models.Goal{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		TargetDate:    targetDate,
		StartDate:     today,
		Notes:         strings.TrimSpace(in.Notes),
		Deposits:      []models.Deposit{},
	}

	if in.CurrentAmount > 0 {
		goal.Deposits = append(goal.Deposits, models.Deposit{
			ID:     uuid.New().String(),
			Amount: in.CurrentAmount,
			Date:   today,
			Notes:  "Initial deposit",
		})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	goals, err := s.store.loadGoals(ctx)
	if err != nil {
		return models.Goal{}, err
	}
	goals = append(goals, goal)
	if err := s.store.saveGoals(ctx, goals); err != nil {
		return models.Goal{}, err
	}

	utils.SafeInfo("Goal %s created, target %s", utils.MaskID(goal.ID), utils.MaskAmount(goal.TargetAmount))
	return goal, nil
}

// AddDeposit appends a deposit and raises the goal's current amount by the
// same figure.
func (s *GoalService) AddDeposit(ctx context.Context, goalID string, in models.DepositInput) (models.Goal, error) {
	if !validAmount(in.Amount) || in.Amount <= 0 {
		return models.Goal{}, models.NewValidationError("amount", "Please enter a valid amount")
	}
	if strings.TrimSpace(in.Date) == "" {
		return models.Goal{}, models.NewValidationError("date", "Please select a date")
	}
	date, err := models.ParseDate(in.Date)
	if err != nil {
		return models.Goal{}, models.NewValidationError("date", "Please select a valid date")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	goals, err := s.store.loadGoals(ctx)
	if err != nil {
		return models.Goal{}, err
	}

	index := goalIndex(goals, goalID)
	if index == -1 {
		return models.Goal{}, &models.NotFoundError{Kind: "goal", Ref: goalID}
	}

	goals[index].Deposits = append(goals[index].Deposits, models.Deposit{
		ID:     uuid.New().String(),
		Amount: in.Amount,
		Date:   date,
		Notes:  strings.TrimSpace(in.Notes),
	})
	goals[index].CurrentAmount += in.Amount

	if err := s.store.saveGoals(ctx, goals); err != nil {
		return models.Goal{}, err
	}
	return goals[index], nil
}

// Update edits the goal's name, target, date and notes. The current amount
// and the deposit ledger are never touched. The past-date rule applies to
// creation only; an overdue goal stays editable.
func (s *GoalService) Update(ctx context.Context, goalID string, in models.GoalUpdate) (models.Goal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Goal{}, models.NewValidationError("name", "Please enter a goal name")
	}
	if !validAmount(in.TargetAmount) || in.TargetAmount <= 0 {
		return models.Goal{}, models.NewValidationError("targetAmount", "Please enter a valid amount")
	}
	if strings.TrimSpace(in.TargetDate) == "" {
		return models.Goal{}, models.NewValidationError("targetDate", "Please select a target date")
	}
	targetDate, err := models.ParseDate(in.TargetDate)
	if err != nil {
		return models.Goal{}, models.NewValidationError("targetDate", "Please select a valid target date")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	goals, err := s.store.loadGoals(ctx)
	if err != nil {
		return models.Goal{}, err
	}

	index := goalIndex(goals, goalID)
	if index == -1 {
		return models.Goal{}, &models.NotFoundError{Kind: "goal", Ref: goalID}
	}

	goals[index].Name = strings.TrimSpace(in.Name)
	goals[index].TargetAmount = in.TargetAmount
	goals[index].TargetDate = targetDate
	goals[index].Notes = strings.TrimSpace(in.Notes)

	if err := s.store.saveGoals(ctx, goals); err != nil {
		return models.Goal{}, err
	}
	return goals[index], nil
}

// Get returns one goal by id.
func (s *GoalService) Get(ctx context.Context, goalID string) (models.Goal, error) {
	goals, err := s.store.loadGoals(ctx)
	if err != nil {
		return models.Goal{}, err
	}
	index := goalIndex(goals, goalID)
	if index == -1 {
		return models.Goal{}, &models.NotFoundError{Kind: "goal", Ref: goalID}
	}
	return goals[index], nil
}

// List filters goals by a case-insensitive substring match on name or notes
// and sorts them by the given key: name, amount (target descending),
// progress (descending), date (target ascending), or newest first.
func (s *GoalService) List(ctx context.Context, query, sortKey string) ([]models.Goal, error) {
	goals, err := s.store.loadGoals(ctx)
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		matched := goals[:0:0]
		for _, g := range goals {
			if strings.Contains(strings.ToLower(g.Name), q) ||
				strings.Contains(strings.ToLower(g.Notes), q) {
				matched = append(matched, g)
			}
		}
		goals = matched
	}

	SortGoals(goals, sortKey)
	return goals, nil
}

// SortGoals orders goals in place by the given key.
func SortGoals(goals []models.Goal, sortKey string) {
	switch sortKey {
	case "name":
		sort.SliceStable(goals, func(i, j int) bool {
			return goals[i].Name < goals[j].Name
		})
	case "amount":
		sort.SliceStable(goals, func(i, j int) bool {
			return goals[i].TargetAmount > goals[j].TargetAmount
		})
	case "progress":
		sort.SliceStable(goals, func(i, j int) bool {
			return goalProgressRatio(goals[i]) > goalProgressRatio(goals[j])
		})
	case "date":
		sort.SliceStable(goals, func(i, j int) bool {
			return goals[i].TargetDate.Before(goals[j].TargetDate.Time)
		})
	default:
		// Newest first.
		sort.SliceStable(goals, func(i, j int) bool {
			return goals[j].StartDate.Before(goals[i].StartDate.Time)
		})
	}
}

func goalProgressRatio(g models.Goal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount
}

// Summary aggregates across every goal.
func (s *GoalService) Summary(ctx context.Context) (models.GoalSummary, error) {
	goals, err := s.store.loadGoals(ctx)
	if err != nil {
		return models.GoalSummary{}, err
	}
	return SummarizeGoals(goals), nil
}

// SummarizeGoals derives the totals shown on the goals page.
func SummarizeGoals(goals []models.Goal) models.GoalSummary {
	summary := models.GoalSummary{TotalGoals: len(goals)}
	for _, g := range goals {
		if g.CurrentAmount >= g.TargetAmount {
			summary.Completed++
		}
		summary.TotalSaved += g.CurrentAmount
		summary.TotalTarget += g.TargetAmount
	}
	summary.InProgress = summary.TotalGoals - summary.Completed
	if summary.TotalTarget > 0 {
		summary.OverallProgress = summary.TotalSaved / summary.TotalTarget * 100
	}
	return summary
}

// Milestones merges every deposit with every goal completion into one feed,
// newest first, truncated to the 10 most recent events.
func (s *GoalService) Milestones(ctx context.Context) ([]models.Milestone, error) {
	goals, err := s.store.loadGoals(ctx)
	if err != nil {
		return nil, err
	}
	return DeriveMilestones(goals), nil
}

// DeriveMilestones builds the activity feed. A completion's date is found
// by replaying deposits in chronological order and taking the first one
// that pushes the running total to the target; when no deposit crosses the
// line the target date stands in.
func DeriveMilestones(goals []models.Goal) []models.Milestone {
	milestones := make([]models.Milestone, 0, len(goals))

	for _, g := range goals {
		for _, d := range g.Deposits {
			milestones = append(milestones, models.Milestone{
				Type:     models.MilestoneDeposit,
				Date:     d.Date,
				GoalID:   g.ID,
				GoalName: g.Name,
				Amount:   d.Amount,
				Notes:    d.Notes,
			})
		}

		if g.CurrentAmount >= g.TargetAmount {
			milestones = append(milestones, models.Milestone{
				Type:     models.MilestoneCompletion,
				Date:     completionDate(g),
				GoalID:   g.ID,
				GoalName: g.Name,
				Amount:   g.TargetAmount,
			})
		}
	}

	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[j].Date.Before(milestones[i].Date.Time)
	})

	if len(milestones) > 10 {
		milestones = milestones[:10]
	}
	return milestones
}

func completionDate(g models.Goal) models.Date {
	deposits := append([]models.Deposit(nil), g.Deposits...)
	sort.SliceStable(deposits, func(i, j int) bool {
		return deposits[i].Date.Before(deposits[j].Date.Time)
	})

	var running float64
	for _, d := range deposits {
		running += d.Amount
		if running >= g.TargetAmount {
			return d.Date
		}
	}
	return g.TargetDate
}

// PlanDeposits computes how much must be put aside per period to reach the
// target by its date. Pure: it reads no stored state.
func PlanDeposits(in models.DepositPlanInput, today models.Date) (models.DepositPlan, error) {
	if !validAmount(in.TargetAmount) || in.TargetAmount <= 0 {
		return models.DepositPlan{}, models.NewValidationError("targetAmount", "Please enter a valid amount")
	}
	if strings.TrimSpace(in.TargetDate) == "" {
		return models.DepositPlan{}, models.NewValidationError("targetDate", "Please select a target date")
	}
	targetDate, err := models.ParseDate(in.TargetDate)
	if err != nil {
		return models.DepositPlan{}, models.NewValidationError("targetDate", "Please select a valid target date")
	}

	daysRemaining := today.DaysUntil(targetDate)
	if daysRemaining < 1 {
		daysRemaining = 1
	}

	remaining := in.TargetAmount - in.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	deposits := 1
	if period := models.FrequencyPeriodDays(in.Frequency); period > 0 {
		deposits = (daysRemaining + period - 1) / period
	}

	return models.DepositPlan{
		Frequency:        in.Frequency,
		DaysRemaining:    daysRemaining,
		RemainingAmount:  remaining,
		NumberOfDeposits: deposits,
		DepositAmount:    remaining / float64(deposits),
	}, nil
}

func goalIndex(goals []models.Goal, id string) int {
	for i := range goals {
		if goals[i].ID == id {
			return i
		}
	}
	return -1
}
