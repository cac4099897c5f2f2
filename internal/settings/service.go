// Package settings manages the user configuration record: display
// preferences, money accounts, and category lists.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cuentasclaras/backend/internal/models"
	"github.com/cuentasclaras/backend/internal/storage"
)

var (
	// ErrAccountNotFound reports an unknown account ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrValidation reports rejected settings input.
	ErrValidation = errors.New("validation failed")
)

// Default returns the configuration a fresh install starts from.
func Default() models.Settings {
	return models.Settings{
		Currency:       "EUR",
		CurrencySymbol: "€",
		DateFormat:     "dd/mm/yyyy",
		Theme:          "light",
		Mode:           "basic",
	}
}

// Service implements settings management over a storage.Store.
type Service struct {
	store storage.Store
}

// NewService creates a new Service with the given storage backend.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Get returns the stored settings, falling back to Default when
// nothing has been written yet.
func (s *Service) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.store.Settings(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.IsZero() {
		return Default(), nil
	}
	return settings, nil
}

// Update replaces the settings record.
func (s *Service) Update(ctx context.Context, settings models.Settings) error {
	return s.store.SaveSettings(ctx, settings)
}

// Reset restores the default configuration, discarding accounts and
// categories.
func (s *Service) Reset(ctx context.Context) error {
	return s.store.SaveSettings(ctx, Default())
}

// AddAccount appends a money account; the first account added becomes
// the default.
func (s *Service) AddAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	if strings.TrimSpace(account.Name) == "" {
		return nil, fmt.Errorf("%w: account name is required", ErrValidation)
	}
	if account.ID == "" {
		account.ID = uuid.New().String()
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.Accounts = append(settings.Accounts, account)
	if settings.DefaultAccount == "" {
		settings.DefaultAccount = account.ID
	}

	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &account, nil
}

// UpdateAccount replaces the stored account with the same ID.
func (s *Service) UpdateAccount(ctx context.Context, account models.Account) error {
	settings, err := s.Get(ctx)
	if err != nil {
		return err
	}
	for i := range settings.Accounts {
		if settings.Accounts[i].ID == account.ID {
			settings.Accounts[i] = account
			return s.store.SaveSettings(ctx, settings)
		}
	}
	return fmt.Errorf("%w: %s", ErrAccountNotFound, account.ID)
}

// RemoveAccount deletes an account; if it was the default, the default
// moves to the first remaining account.
func (s *Service) RemoveAccount(ctx context.Context, id string) error {
	settings, err := s.Get(ctx)
	if err != nil {
		return err
	}

	kept := settings.Accounts[:0]
	for _, a := range settings.Accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(settings.Accounts) {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	settings.Accounts = kept

	if settings.DefaultAccount == id {
		settings.DefaultAccount = ""
		if len(kept) > 0 {
			settings.DefaultAccount = kept[0].ID
		}
	}
	return s.store.SaveSettings(ctx, settings)
}

// SetCategories replaces both category lists.
func (s *Service) SetCategories(ctx context.Context, categories models.Categories) error {
	settings, err := s.Get(ctx)
	if err != nil {
		return err
	}
	settings.Categories = categories
	return s.store.SaveSettings(ctx, settings)
}
