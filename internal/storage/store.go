// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/cuentasclaras/backend/internal/models"
)

// Store is the key-value persistence contract the core is written
// against. Collections are read and written whole, mirroring the
// localStorage-style store the app was designed around; a collection
// that was never written yields its zero value, not an error.
//
// The store offers no cross-collection transactions and no locking.
// Callers must serialize their own read-modify-write sequences; the
// core assumes a single logical caller per operation.
type Store interface {
	// Transactions returns the personal-ledger entries.
	Transactions(ctx context.Context) ([]models.Transaction, error)

	// SaveTransactions replaces the personal-ledger collection.
	SaveTransactions(ctx context.Context, txs []models.Transaction) error

	// Settings returns the user configuration record.
	Settings(ctx context.Context) (models.Settings, error)

	// SaveSettings replaces the user configuration record.
	SaveSettings(ctx context.Context, settings models.Settings) error

	// Parties returns all shared-expense parties.
	Parties(ctx context.Context) ([]models.Party, error)

	// SaveParties replaces the parties collection.
	SaveParties(ctx context.Context, parties []models.Party) error

	// PartyExpenses returns all party expenses, across every party.
	PartyExpenses(ctx context.Context) ([]models.Expense, error)

	// SavePartyExpenses replaces the party-expenses collection.
	SavePartyExpenses(ctx context.Context, expenses []models.Expense) error

	// Close releases any resources held by the store.
	Close() error
}
