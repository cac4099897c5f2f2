// Package app wires the core services together for an embedding
// caller: the UI layer constructs one App and talks to its services.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuentasclaras/backend/internal/backup"
	"github.com/cuentasclaras/backend/internal/config"
	"github.com/cuentasclaras/backend/internal/ledger"
	"github.com/cuentasclaras/backend/internal/models"
	"github.com/cuentasclaras/backend/internal/settings"
	"github.com/cuentasclaras/backend/internal/storage"
	"github.com/cuentasclaras/backend/internal/storage/sqlite"
	"github.com/cuentasclaras/backend/internal/transaction"
	"github.com/cuentasclaras/backend/pkg/logging"
)

// App bundles the core services over one shared store.
type App struct {
	Store        storage.Store
	Ledger       *ledger.Service
	Transactions *transaction.Service
	Settings     *settings.Service
	Backup       *backup.Service
}

// New opens the SQLite store at the configured path and wires the
// services around it.
func New(cfg *config.Config) (*App, error) {
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	slog.Info("storage initialized", "database", cfg.DBPath)

	return NewWithStore(store, cfg.AppName), nil
}

// NewWithStore wires the services around an existing store, letting
// tests and ephemeral sessions supply an in-memory one.
func NewWithStore(store storage.Store, appName string) *App {
	return &App{
		Store:        store,
		Ledger:       ledger.NewService(store),
		Transactions: transaction.NewService(store),
		Settings:     settings.NewService(store),
		Backup:       backup.NewService(store, appName),
	}
}

// ClearAllData erases every collection, returning the app to a fresh
// install state. Users are expected to export a backup first; there is
// no undo. Collections are cleared one by one, so a mid-way failure
// leaves the remaining collections untouched.
func (a *App) ClearAllData(ctx context.Context) error {
	if err := a.Store.SavePartyExpenses(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear party expenses: %w", err)
	}
	if err := a.Store.SaveParties(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear parties: %w", err)
	}
	if err := a.Store.SaveTransactions(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if err := a.Store.SaveSettings(ctx, models.Settings{}); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	slog.Info("all data cleared")
	return nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.Store.Close()
}
