// Package memory provides an in-memory Store. It backs tests and
// ephemeral sessions where nothing should touch disk.
package memory

import (
	"context"
	"sync"

	"github.com/cuentasclaras/backend/internal/models"
	"github.com/cuentasclaras/backend/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps every collection in memory. Reads and writes copy, so
// callers never share slices with the store.
type Store struct {
	mu           sync.Mutex
	transactions []models.Transaction
	settings     models.Settings
	parties      []models.Party
	expenses     []models.Expense
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{}
}

func (s *Store) Transactions(ctx context.Context) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

func (s *Store) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = make([]models.Transaction, len(txs))
	copy(s.transactions, txs)
	return nil
}

func (s *Store) Settings(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSettings(s.settings), nil
}

func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = cloneSettings(settings)
	return nil
}

func (s *Store) Parties(ctx context.Context) ([]models.Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Party, len(s.parties))
	for i, p := range s.parties {
		out[i] = cloneParty(p)
	}
	return out, nil
}

func (s *Store) SaveParties(ctx context.Context, parties []models.Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties = make([]models.Party, len(parties))
	for i, p := range parties {
		s.parties[i] = cloneParty(p)
	}
	return nil
}

func (s *Store) PartyExpenses(ctx context.Context) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Expense, len(s.expenses))
	for i, e := range s.expenses {
		out[i] = cloneExpense(e)
	}
	return out, nil
}

func (s *Store) SavePartyExpenses(ctx context.Context, expenses []models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = make([]models.Expense, len(expenses))
	for i, e := range expenses {
		s.expenses[i] = cloneExpense(e)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

func cloneParty(p models.Party) models.Party {
	out := p
	out.Participants = make([]models.Participant, len(p.Participants))
	copy(out.Participants, p.Participants)
	return out
}

func cloneExpense(e models.Expense) models.Expense {
	out := e
	if e.SplitData != nil {
		out.SplitData = make(map[string]float64, len(e.SplitData))
		for k, v := range e.SplitData {
			out.SplitData[k] = v
		}
	}
	return out
}

func cloneSettings(s models.Settings) models.Settings {
	out := s
	out.Accounts = make([]models.Account, len(s.Accounts))
	copy(out.Accounts, s.Accounts)
	out.Categories.Expense = append([]string(nil), s.Categories.Expense...)
	out.Categories.Income = append([]string(nil), s.Categories.Income...)
	return out
}
