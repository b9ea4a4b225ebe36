// Package services implements the domain store: validated CRUD mutations
// over the persisted finance documents, with aggregates re-derived on every
// mutation. Each operation reads its whole document, mutates it in memory,
// and writes the whole document back.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/storage"
	"github.com/piggypal/piggypal-api/utils"
)

// Domain keys. Each key holds one independent JSON document.
const (
	KeyExpenses = "piggypal_expenses"
	KeyBudget   = "piggypal_budget"
	KeyGoals    = "piggypal_goals"
	KeyTips     = "piggypal_tips"
	KeySettings = "piggypal_settings"
	KeyVault    = "piggypal_vault"
)

// DomainStore owns the in-memory view of every domain document. The mutex
// serializes mutations across domains, since expense operations touch both
// the expense and budget documents in one step.
type DomainStore struct {
	store storage.DocumentStore
	mu    sync.Mutex
}

func NewDomainStore(store storage.DocumentStore) *DomainStore {
	return &DomainStore{store: store}
}

// Init writes default documents for every domain key that is absent. It is
// idempotent and never overwrites existing data.
func (s *DomainStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := []struct {
		key   string
		value interface{}
	}{
		{KeyExpenses, []models.Expense{}},
		{KeyBudget, models.DefaultBudget()},
		{KeyGoals, []models.Goal{}},
		{KeyTips, DefaultTips()},
		{KeySettings, models.DefaultSettings()},
	}

	for _, d := range defaults {
		_, err := s.store.Get(ctx, d.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("check %s: %w", d.key, err)
		}
		if err := s.put(ctx, d.key, d.value); err != nil {
			return err
		}
		utils.SafeInfo("Initialized %s with defaults", d.key)
	}

	return nil
}

// get unmarshals the document at key into out, returning
// storage.ErrKeyNotFound untouched so callers can supply defaults.
func (s *DomainStore) get(ctx context.Context, key string, out interface{}) error {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return err
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *DomainStore) put(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *DomainStore) loadExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.get(ctx, KeyExpenses, &expenses)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []models.Expense{}, nil
	}
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *DomainStore) saveExpenses(ctx context.Context, expenses []models.Expense) error {
	return s.put(ctx, KeyExpenses, expenses)
}

func (s *DomainStore) loadBudget(ctx context.Context) (models.Budget, error) {
	var budget models.Budget
	err := s.get(ctx, KeyBudget, &budget)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.DefaultBudget(), nil
	}
	if err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

func (s *DomainStore) saveBudget(ctx context.Context, budget models.Budget) error {
	return s.put(ctx, KeyBudget, budget)
}

func (s *DomainStore) loadGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.get(ctx, KeyGoals, &goals)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []models.Goal{}, nil
	}
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *DomainStore) saveGoals(ctx context.Context, goals []models.Goal) error {
	return s.put(ctx, KeyGoals, goals)
}

func (s *DomainStore) loadTips(ctx context.Context) ([]models.Tip, error) {
	var tips []models.Tip
	err := s.get(ctx, KeyTips, &tips)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []models.Tip{}, nil
	}
	if err != nil {
		return nil, err
	}
	return tips, nil
}

func (s *DomainStore) saveTips(ctx context.Context, tips []models.Tip) error {
	return s.put(ctx, KeyTips, tips)
}

func (s *DomainStore) loadSettings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	err := s.get(ctx, KeySettings, &settings)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *DomainStore) saveSettings(ctx context.Context, settings models.Settings) error {
	return s.put(ctx, KeySettings, settings)
}
