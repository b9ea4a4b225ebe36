package services

import (
	"context"
	"errors"
	"testing"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/storage"
)

func TestListSeedsDefaultTipsOnce(t *testing.T) {
	// Bypass Init so the tip collection starts empty.
	store := NewDomainStore(storage.NewMemoryStore())
	svc := NewTipService(store)
	ctx := context.Background()

	tips, err := svc.List(ctx, "", "", false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tips) != 12 {
		t.Fatalf("got %d tips, want the 12 starter tips", len(tips))
	}

	again, err := svc.List(ctx, "", "", false)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(again) != 12 {
		t.Fatalf("got %d tips on second read, want 12", len(again))
	}
	if again[0].ID != tips[0].ID {
		t.Error("seeding ran twice: tip ids changed between reads")
	}
}

func TestListFiltersTips(t *testing.T) {
	svc := NewTipService(newTestStore(t))
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		query    string
		check    func(t *testing.T, tips []models.Tip)
	}{
		{
			"category filter", "budgeting", "",
			func(t *testing.T, tips []models.Tip) {
				if len(tips) == 0 {
					t.Fatal("no budgeting tips found")
				}
				for _, tip := range tips {
					if tip.Category != "budgeting" {
						t.Errorf("tip %q has category %q", tip.Title, tip.Category)
					}
				}
			},
		},
		{
			"all passes everything", "all", "",
			func(t *testing.T, tips []models.Tip) {
				if len(tips) != 12 {
					t.Errorf("got %d tips, want 12", len(tips))
				}
			},
		},
		{
			"query matches title", "", "50/30/20",
			func(t *testing.T, tips []models.Tip) {
				if len(tips) != 1 {
					t.Fatalf("got %d tips, want 1", len(tips))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tips, err := svc.List(ctx, tt.category, tt.query, false)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			tt.check(t, tips)
		})
	}
}

func TestCreateTipDefaultsAuthor(t *testing.T) {
	svc := NewTipService(newTestStore(t))

	tip, err := svc.Create(context.Background(), models.TipInput{
		Title:    "Round up your change",
		Content:  "Move the rounding difference of every purchase into savings.",
		Category: "saving",
	})
	if err != nil {
		t.Fatalf("create tip: %v", err)
	}
	if tip.Author != "Anonymous" {
		t.Errorf("author = %q, want %q", tip.Author, "Anonymous")
	}
	if tip.ID == "" {
		t.Error("tip has no id")
	}
}

func TestCreateTipValidation(t *testing.T) {
	svc := NewTipService(newTestStore(t))

	_, err := svc.Create(context.Background(), models.TipInput{Content: "body", Category: "saving"})

	var validation *models.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validation.Field != "title" {
		t.Errorf("field = %q, want %q", validation.Field, "title")
	}
}

func TestToggleBookmark(t *testing.T) {
	svc := NewTipService(newTestStore(t))
	ctx := context.Background()

	tips, err := svc.List(ctx, "", "", false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	toggled, err := svc.ToggleBookmark(ctx, tips[0].ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Bookmarked {
		t.Error("bookmark not set after first toggle")
	}

	bookmarked, err := svc.Bookmarked(ctx)
	if err != nil {
		t.Fatalf("bookmarked list: %v", err)
	}
	if len(bookmarked) != 1 || bookmarked[0].ID != tips[0].ID {
		t.Errorf("unexpected bookmarked list: %+v", bookmarked)
	}

	toggled, err = svc.ToggleBookmark(ctx, tips[0].ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if toggled.Bookmarked {
		t.Error("bookmark still set after second toggle")
	}
}

func TestToggleBookmarkNotFound(t *testing.T) {
	svc := NewTipService(newTestStore(t))

	_, err := svc.ToggleBookmark(context.Background(), "missing-id")

	var notFound *models.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
