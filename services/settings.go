package services

import (
	"context"
	"strings"

	"github.com/piggypal/piggypal-api/models"
)

// SettingsService owns the settings document. Settings only feed client-side
// formatting; the store never formats anything itself.
type SettingsService struct {
	store *DomainStore
}

func NewSettingsService(store *DomainStore) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.store.loadSettings(ctx)
}

// Update replaces the settings document. Empty username or currency fall
// back to the defaults so the client never renders without either.
func (s *SettingsService) Update(ctx context.Context, in models.Settings) (models.Settings, error) {
	defaults := models.DefaultSettings()
	if strings.TrimSpace(in.Username) == "" {
		in.Username = defaults.Username
	}
	if strings.TrimSpace(in.Currency) == "" {
		in.Currency = defaults.Currency
	}
	if strings.TrimSpace(in.Theme) == "" {
		in.Theme = defaults.Theme
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if err := s.store.saveSettings(ctx, in); err != nil {
		return models.Settings{}, err
	}
	return in, nil
}
