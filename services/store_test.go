package services

import (
	"context"
	"testing"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/storage"
)

func newTestStore(t *testing.T) *DomainStore {
	t.Helper()
	store := NewDomainStore(storage.NewMemoryStore())
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init store: %v", err)
	}
	return store
}

func TestInitSeedsDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	expenses, err := store.loadExpenses(ctx)
	if err != nil {
		t.Fatalf("load expenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("expected empty expense ledger, got %d entries", len(expenses))
	}

	budget, err := store.loadBudget(ctx)
	if err != nil {
		t.Fatalf("load budget: %v", err)
	}
	if len(budget.Categories) != 6 {
		t.Errorf("expected 6 starter categories, got %d", len(budget.Categories))
	}

	tips, err := store.loadTips(ctx)
	if err != nil {
		t.Fatalf("load tips: %v", err)
	}
	if len(tips) != 12 {
		t.Errorf("expected 12 starter tips, got %d", len(tips))
	}

	settings, err := store.loadSettings(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("unexpected default settings: %+v", settings)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	custom := models.Settings{Username: "Sam", Currency: "€", Theme: "dark", Notifications: false}
	if err := store.saveSettings(ctx, custom); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	if err := store.Init(ctx); err != nil {
		t.Fatalf("second init: %v", err)
	}

	settings, err := store.loadSettings(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings != custom {
		t.Errorf("init overwrote existing settings: got %+v, want %+v", settings, custom)
	}
}
