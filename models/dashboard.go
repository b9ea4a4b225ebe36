package models

// MonthTotal is one point of the expense trend chart, keyed YYYY-MM.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// ActivityItem is one row of the recent-activity feed: a fresh expense or a
// goal deposit.
type ActivityItem struct {
	Type     string  `json:"type"`
	Date     Date    `json:"date"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
}

// Dashboard is the derived home-page view over every domain document.
type Dashboard struct {
	Income            float64            `json:"income"`
	TotalExpenses     float64            `json:"total_expenses"`
	Balance           float64            `json:"balance"`
	Goals             GoalSummary        `json:"goals"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	MonthlyTrend      []MonthTotal       `json:"monthly_trend"`
	RecentActivity    []ActivityItem     `json:"recent_activity"`
}
