package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/piggypal/piggypal-api/models"
)

// demoIncome stands in for an income source the store does not track.
const demoIncome = 5000

// InsightsService derives the dashboard view over every domain document.
type InsightsService struct {
	store *DomainStore
}

func NewInsightsService(store *DomainStore) *InsightsService {
	return &InsightsService{store: store}
}

// Dashboard assembles balance, goal totals, category breakdown, the
// six-month expense trend, and the recent-activity feed.
func (s *InsightsService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	expenses, err := s.store.loadExpenses(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	goals, err := s.store.loadGoals(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	totalExpenses := TotalAmount(expenses)

	dashboard := models.Dashboard{
		Income:            demoIncome,
		TotalExpenses:     totalExpenses,
		Balance:           demoIncome - totalExpenses,
		Goals:             SummarizeGoals(goals),
		CategoryBreakdown: categoryBreakdown(expenses),
		MonthlyTrend:      monthlyTrend(expenses, models.Today(), 6),
		RecentActivity:    recentActivity(expenses, goals, 5),
	}
	return dashboard, nil
}

func categoryBreakdown(expenses []models.Expense) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, e := range expenses {
		breakdown[e.Category] += e.Amount
	}
	return breakdown
}

// monthlyTrend sums expenses per calendar month for the last n months,
// oldest first.
func monthlyTrend(expenses []models.Expense, today models.Date, n int) []models.MonthTotal {
	trend := make([]models.MonthTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		month := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)

		var total float64
		for _, e := range expenses {
			if e.Date.Year() == month.Year() && e.Date.Month() == month.Month() {
				total += e.Amount
			}
		}
		trend = append(trend, models.MonthTotal{
			Month: fmt.Sprintf("%04d-%02d", month.Year(), int(month.Month())),
			Total: total,
		})
	}
	return trend
}

// recentActivity merges expenses and goal deposits into one feed, newest
// first, truncated to limit entries.
func recentActivity(expenses []models.Expense, goals []models.Goal, limit int) []models.ActivityItem {
	activity := make([]models.ActivityItem, 0, len(expenses))

	for _, e := range expenses {
		activity = append(activity, models.ActivityItem{
			Type:     "expense",
			Date:     e.Date,
			Title:    e.Description,
			Amount:   e.Amount,
			Category: e.Category,
		})
	}
	for _, g := range goals {
		for _, d := range g.Deposits {
			activity = append(activity, models.ActivityItem{
				Type:     "deposit",
				Date:     d.Date,
				Title:    "Deposit to " + g.Name,
				Amount:   d.Amount,
				Category: "Savings",
			})
		}
	}

	sort.SliceStable(activity, func(i, j int) bool {
		return activity[j].Date.Before(activity[i].Date.Time)
	})

	if len(activity) > limit {
		activity = activity[:limit]
	}
	return activity
}
