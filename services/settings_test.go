package services

import (
	"context"
	"testing"

	"github.com/piggypal/piggypal-api/models"
)

func TestSettingsUpdateAndReload(t *testing.T) {
	store := newTestStore(t)
	svc := NewSettingsService(store)
	ctx := context.Background()

	updated, err := svc.Update(ctx, models.Settings{
		Username:      "Robin",
		Currency:      "€",
		Theme:         "dark",
		Notifications: false,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	reloaded, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded != updated {
		t.Errorf("reloaded %+v, want %+v", reloaded, updated)
	}
}

func TestSettingsBlankFieldsFallBackToDefaults(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))

	updated, err := svc.Update(context.Background(), models.Settings{
		Username: "  ",
		Currency: "",
		Theme:    "",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	defaults := models.DefaultSettings()
	if updated.Username != defaults.Username {
		t.Errorf("username = %q, want default %q", updated.Username, defaults.Username)
	}
	if updated.Currency != defaults.Currency {
		t.Errorf("currency = %q, want default %q", updated.Currency, defaults.Currency)
	}
	if updated.Theme != defaults.Theme {
		t.Errorf("theme = %q, want default %q", updated.Theme, defaults.Theme)
	}
}
