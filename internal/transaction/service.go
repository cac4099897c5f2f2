// Package transaction manages the personal income/expense ledger,
// independent of the party subsystem.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cuentasclaras/backend/internal/metrics"
	"github.com/cuentasclaras/backend/internal/models"
	"github.com/cuentasclaras/backend/internal/storage"
)

var (
	// ErrNotFound reports an unknown transaction ID.
	ErrNotFound = errors.New("transaction not found")

	// ErrValidation reports rejected transaction input.
	ErrValidation = errors.New("validation failed")
)

// Service implements the personal ledger over a storage.Store.
type Service struct {
	store storage.Store
}

// NewService creates a new Service with the given storage backend.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Add validates and records a transaction, stamping an ID and creation
// time when absent.
func (s *Service) Add(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	if t.Type != models.TypeIncome && t.Type != models.TypeExpense {
		return nil, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, t.Type)
	}
	if t.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if strings.TrimSpace(t.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt == "" {
		t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if err := s.store.SaveTransactions(ctx, append(txs, t)); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	metrics.TransactionsRecorded.Inc()
	return &t, nil
}

// Update replaces the stored transaction with the same ID.
func (s *Service) Update(ctx context.Context, t models.Transaction) error {
	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	for i := range txs {
		if txs[i].ID == t.ID {
			if t.CreatedAt == "" {
				t.CreatedAt = txs[i].CreatedAt
			}
			txs[i] = t
			return s.store.SaveTransactions(ctx, txs)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, t.ID)
}

// Delete removes the transaction with the given ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	kept := txs[:0]
	for _, t := range txs {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(txs) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.store.SaveTransactions(ctx, kept)
}

// List returns all transactions in stored order.
func (s *Service) List(ctx context.Context) ([]models.Transaction, error) {
	return s.store.Transactions(ctx)
}

// ByMonth returns the transactions dated within the given month.
// Entries with unparseable dates are skipped.
func (s *Service) ByMonth(ctx context.Context, year int, month time.Month) ([]models.Transaction, error) {
	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Transaction
	for _, t := range txs {
		when, ok := parseDate(t.Date)
		if ok && when.Year() == year && when.Month() == month {
			out = append(out, t)
		}
	}
	return out, nil
}

// ByDateRange returns the transactions dated within [start, end],
// bounds inclusive.
func (s *Service) ByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Transaction
	for _, t := range txs {
		when, ok := parseDate(t.Date)
		if ok && !when.Before(start) && !when.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

// parseDate accepts the two date shapes the app records: bare
// yyyy-mm-dd dates and full RFC 3339 timestamps.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
