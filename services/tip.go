package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/piggypal/piggypal-api/models"
)

// TipService owns the tips document.
type TipService struct {
	store *DomainStore
}

func NewTipService(store *DomainStore) *TipService {
	return &TipService{store: store}
}

// DefaultTips is the canonical starter catalogue written when the tip
// collection is empty.
func DefaultTips() []models.Tip {
	now := time.Now().UTC()
	seed := []struct {
		title, content, category string
	}{
		{"The 50/30/20 Rule", "Allocate 50% of your pocket money to needs, 30% to wants, and 20% to savings. This simple rule helps you balance spending while building savings habits.", "budgeting"},
		{"Track Every Expense", "Keep a record of every penny you spend. This awareness alone can reduce unnecessary spending by up to 15% according to financial experts.", "tracking"},
		{"Wait 24 Hours Before Buying", "Before making non-essential purchases, wait 24 hours. This \"cooling off\" period helps avoid impulse buying and gives you time to consider if you really need the item.", "saving"},
		{"Set Specific Financial Goals", "Create clear, specific goals for your money. Instead of \"save more,\" try \"save $20 per month for a new game\" - specific goals are more motivating and achievable.", "goals"},
		{"Use the Envelope System", "Divide your pocket money into envelopes for different spending categories. When an envelope is empty, stop spending in that category until next allowance.", "budgeting"},
		{"Find Free Entertainment", "Look for free activities in your community - parks, libraries, community events, and free online resources can provide entertainment without spending money.", "saving"},
		{"Compare Prices Before Buying", "Always check prices at different stores or websites before making a purchase. Price comparison can save you 10-15% on average.", "shopping"},
		{"Learn Basic DIY Skills", "Learning to fix or make things yourself can save money. Basic sewing, simple repairs, and crafting skills can extend the life of your belongings.", "saving"},
		{"Pack Lunch Instead of Buying", "Bringing lunch from home instead of buying at school or outside can save $20-$50 per month, which adds up to hundreds per year.", "saving"},
		{"Automate Your Savings", "Set up an automatic transfer of a small amount to your savings each time you receive pocket money. What you don't see, you won't spend.", "saving"},
		{"Use the 30-Day Rule", "When tempted by a non-essential purchase, write it down and wait 30 days. If you still want it after 30 days, reconsider buying it.", "shopping"},
		{"Sell Items You No Longer Need", "Declutter and sell items you no longer use. Online marketplaces make it easy to turn unused belongings into extra cash.", "earning"},
	}

	tips := make([]models.Tip, 0, len(seed))
	for _, t := range seed {
		tips = append(tips, models.Tip{
			ID:       uuid.New().String(),
			Title:    t.title,
			Content:  t.content,
			Category: t.category,
			Author:   "PiggyPal Team",
			Date:     now,
		})
	}
	return tips
}

// List returns tips narrowed by category tag, search query, and bookmarked
// flag. An empty collection is seeded with the default catalogue first;
// once populated the seeding never runs again.
func (s *TipService) List(ctx context.Context, category, query string, bookmarkedOnly bool) ([]models.Tip, error) {
	s.store.mu.Lock()
	tips, err := s.store.loadTips(ctx)
	if err == nil && len(tips) == 0 {
		tips = DefaultTips()
		err = s.store.saveTips(ctx, tips)
	}
	s.store.mu.Unlock()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Tip, 0, len(tips))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, t := range tips {
		if category != "" && category != "all" && t.Category != category {
			continue
		}
		if bookmarkedOnly && !t.Bookmarked {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Content), q) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}

// Create validates and appends a user-submitted tip. Author defaults to
// "Anonymous".
func (s *TipService) Create(ctx context.Context, in models.TipInput) (models.Tip, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Tip{}, models.NewValidationError("title", "Please enter a title")
	}
	if strings.TrimSpace(in.Content) == "" {
		return models.Tip{}, models.NewValidationError("content", "Please enter tip content")
	}
	if strings.TrimSpace(in.Category) == "" {
		return models.Tip{}, models.NewValidationError("category", "Please select a category")
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = "Anonymous"
	}

	tip := models.Tip{
		ID:       uuid.New().String(),
		Title:    strings.TrimSpace(in.Title),
		Content:  strings.TrimSpace(in.Content),
		Category: strings.TrimSpace(in.Category),
		Author:   author,
		Date:     time.Now().UTC(),
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	tips, err := s.store.loadTips(ctx)
	if err != nil {
		return models.Tip{}, err
	}
	tips = append(tips, tip)
	if err := s.store.saveTips(ctx, tips); err != nil {
		return models.Tip{}, err
	}
	return tip, nil
}

// ToggleBookmark flips the bookmarked flag of one tip.
func (s *TipService) ToggleBookmark(ctx context.Context, id string) (models.Tip, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	tips, err := s.store.loadTips(ctx)
	if err != nil {
		return models.Tip{}, err
	}

	index := -1
	for i := range tips {
		if tips[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Tip{}, &models.NotFoundError{Kind: "tip", Ref: id}
	}

	tips[index].Bookmarked = !tips[index].Bookmarked

	if err := s.store.saveTips(ctx, tips); err != nil {
		return models.Tip{}, err
	}
	return tips[index], nil
}

// Bookmarked returns only the bookmarked tips.
func (s *TipService) Bookmarked(ctx context.Context) ([]models.Tip, error) {
	return s.List(ctx, "", "", true)
}
