// Package ledger owns the party and shared-expense lifecycle and
// derives balances and settlement plans on demand.
//
// All state lives in the storage.Store as whole collections; every
// operation is a read-modify-write over them, so callers must not run
// two mutating operations concurrently.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cuentasclaras/backend/internal/calculator"
	"github.com/cuentasclaras/backend/internal/metrics"
	"github.com/cuentasclaras/backend/internal/models"
	"github.com/cuentasclaras/backend/internal/storage"
)

// Service implements the party ledger over a storage.Store.
type Service struct {
	store storage.Store
}

// NewService creates a new Service with the given storage backend.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// CreatePartyParams carries the user input for a new party.
type CreatePartyParams struct {
	Name         string
	Description  string
	Date         string
	Participants []models.Participant
}

// CreateParty records a new active party. The name must be non-empty
// and at least one participant is required; participants arriving
// without an ID get one assigned.
func (s *Service) CreateParty(ctx context.Context, params CreatePartyParams) (*models.Party, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%w: party name is required", ErrValidation)
	}
	if len(params.Participants) == 0 {
		return nil, fmt.Errorf("%w: party needs at least one participant", ErrValidation)
	}

	participants := make([]models.Participant, len(params.Participants))
	copy(participants, params.Participants)
	for i := range participants {
		if participants[i].ID == "" {
			participants[i].ID = uuid.New().String()
		}
	}

	parties, err := s.store.Parties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load parties: %w", err)
	}

	party := models.Party{
		ID:           uuid.New().String(),
		Name:         params.Name,
		Description:  params.Description,
		Date:         params.Date,
		Participants: participants,
		Status:       models.PartyActive,
		CreatedAt:    time.Now().Unix(),
	}

	if err := s.store.SaveParties(ctx, append(parties, party)); err != nil {
		return nil, fmt.Errorf("failed to save parties: %w", err)
	}

	slog.Info("party created", "party_id", party.ID, "participants", len(participants))
	metrics.PartiesCreated.Inc()
	return &party, nil
}

// Parties returns every party.
func (s *Service) Parties(ctx context.Context) ([]models.Party, error) {
	return s.store.Parties(ctx)
}

// Party returns one party by ID.
func (s *Service) Party(ctx context.Context, partyID string) (*models.Party, error) {
	parties, err := s.store.Parties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load parties: %w", err)
	}
	for i := range parties {
		if parties[i].ID == partyID {
			return &parties[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPartyNotFound, partyID)
}

// RenameParticipant updates a participant's display name, the only
// participant edit the model allows.
func (s *Service) RenameParticipant(ctx context.Context, partyID, participantID, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: participant name is required", ErrValidation)
	}

	parties, err := s.store.Parties(ctx)
	if err != nil {
		return fmt.Errorf("failed to load parties: %w", err)
	}
	for i := range parties {
		if parties[i].ID != partyID {
			continue
		}
		for j := range parties[i].Participants {
			if parties[i].Participants[j].ID == participantID {
				parties[i].Participants[j].Name = name
				return s.store.SaveParties(ctx, parties)
			}
		}
		return fmt.Errorf("%w: participant %s", ErrValidation, participantID)
	}
	return fmt.Errorf("%w: %s", ErrPartyNotFound, partyID)
}

// ExpenseInput carries the user input for a new or updated expense.
type ExpenseInput struct {
	Description     string
	Amount          float64
	PaidBy          string
	SplitType       models.SplitType
	SplitData       map[string]float64
	Category        string
	Date            string
	PaidImmediately bool

	// Rebalance asks the ledger to spread a custom split's residual
	// difference across the participants with nonzero shares instead
	// of rejecting the expense with a SplitMismatchError.
	Rebalance bool
}

// AddExpense validates and records a shared expense against an active
// party.
func (s *Service) AddExpense(ctx context.Context, partyID string, in ExpenseInput) (*models.Expense, error) {
	party, err := s.Party(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.Status == models.PartySettled {
		return nil, fmt.Errorf("%w: %s", ErrPartyClosed, partyID)
	}

	splitType, splitData, err := validateExpense(party, &in)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.PartyExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	expense := models.Expense{
		ID:              uuid.New().String(),
		PartyID:         partyID,
		Description:     in.Description,
		Amount:          in.Amount,
		PaidBy:          in.PaidBy,
		SplitType:       splitType,
		SplitData:       splitData,
		Category:        in.Category,
		Date:            in.Date,
		PaidImmediately: in.PaidImmediately,
		CreatedAt:       time.Now().Unix(),
	}

	if err := s.store.SavePartyExpenses(ctx, append(expenses, expense)); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}

	slog.Info("expense recorded", "party_id", partyID, "expense_id", expense.ID,
		"amount", expense.Amount, "immediate", expense.PaidImmediately)
	metrics.ExpensesRecorded.Inc()
	return &expense, nil
}

// UpdateExpense replaces the editable fields of an existing expense,
// running the same validation as AddExpense against the owning party.
func (s *Service) UpdateExpense(ctx context.Context, expenseID string, in ExpenseInput) (*models.Expense, error) {
	expenses, err := s.store.PartyExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	idx := -1
	for i := range expenses {
		if expenses[i].ID == expenseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrExpenseNotFound, expenseID)
	}

	party, err := s.Party(ctx, expenses[idx].PartyID)
	if err != nil {
		return nil, err
	}
	if party.Status == models.PartySettled {
		return nil, fmt.Errorf("%w: %s", ErrPartyClosed, party.ID)
	}

	splitType, splitData, err := validateExpense(party, &in)
	if err != nil {
		return nil, err
	}

	updated := expenses[idx]
	updated.Description = in.Description
	updated.Amount = in.Amount
	updated.PaidBy = in.PaidBy
	updated.SplitType = splitType
	updated.SplitData = splitData
	updated.Category = in.Category
	updated.Date = in.Date
	updated.PaidImmediately = in.PaidImmediately
	expenses[idx] = updated

	if err := s.store.SavePartyExpenses(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}
	return &updated, nil
}

// DeleteExpense removes a single expense.
func (s *Service) DeleteExpense(ctx context.Context, expenseID string) error {
	expenses, err := s.store.PartyExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	kept := expenses[:0]
	for _, e := range expenses {
		if e.ID != expenseID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(expenses) {
		return fmt.Errorf("%w: %s", ErrExpenseNotFound, expenseID)
	}
	return s.store.SavePartyExpenses(ctx, kept)
}

// SettleParty transitions a party from active to settled. The
// transition is terminal: settling an already settled party fails with
// ErrInvalidState, and settled parties reject further expenses.
func (s *Service) SettleParty(ctx context.Context, partyID string) error {
	parties, err := s.store.Parties(ctx)
	if err != nil {
		return fmt.Errorf("failed to load parties: %w", err)
	}

	for i := range parties {
		if parties[i].ID != partyID {
			continue
		}
		if parties[i].Status == models.PartySettled {
			return fmt.Errorf("%w: party already settled", ErrInvalidState)
		}
		parties[i].Status = models.PartySettled
		if err := s.store.SaveParties(ctx, parties); err != nil {
			return fmt.Errorf("failed to save parties: %w", err)
		}
		slog.Info("party settled", "party_id", partyID)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPartyNotFound, partyID)
}

// DeleteParty removes a party and cascades to its expenses. The store
// has no cross-collection transactions, so expenses are deleted first;
// if the party write then fails, the caller gets a PartialDeleteError
// naming the surviving half.
func (s *Service) DeleteParty(ctx context.Context, partyID string) error {
	parties, err := s.store.Parties(ctx)
	if err != nil {
		return fmt.Errorf("failed to load parties: %w", err)
	}

	keptParties := make([]models.Party, 0, len(parties))
	for _, p := range parties {
		if p.ID != partyID {
			keptParties = append(keptParties, p)
		}
	}
	if len(keptParties) == len(parties) {
		return fmt.Errorf("%w: %s", ErrPartyNotFound, partyID)
	}

	expenses, err := s.store.PartyExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	keptExpenses := expenses[:0]
	for _, e := range expenses {
		if e.PartyID != partyID {
			keptExpenses = append(keptExpenses, e)
		}
	}

	if err := s.store.SavePartyExpenses(ctx, keptExpenses); err != nil {
		return fmt.Errorf("failed to delete party expenses: %w", err)
	}
	if err := s.store.SaveParties(ctx, keptParties); err != nil {
		return &PartialDeleteError{PartyID: partyID, Err: err}
	}

	slog.Info("party deleted", "party_id", partyID, "expenses_removed", len(expenses)-len(keptExpenses))
	return nil
}

// Summary derives the full view of one party: lifetime totals over all
// expenses, current balances over the non-immediate ones, and the
// transfer plan that would clear those balances.
func (s *Service) Summary(ctx context.Context, partyID string) (*models.Summary, error) {
	party, err := s.Party(ctx, partyID)
	if err != nil {
		return nil, err
	}

	all, err := s.store.PartyExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	var expenses []models.Expense
	for _, e := range all {
		if e.PartyID == partyID {
			expenses = append(expenses, e)
		}
	}

	summary := &models.Summary{
		Party:            *party,
		ExpenseCount:     len(expenses),
		ParticipantCount: len(party.Participants),
		Expenses:         expenses,
	}
	for _, e := range expenses {
		summary.TotalExpenses += e.Amount
	}

	balances, err := partyBalances(party, expenses)
	if err != nil {
		return nil, err
	}
	summary.Balances = balances

	if drift := calculator.SumBalances(balances); math.Abs(drift) > calculator.Epsilon*float64(len(balances)+1) {
		slog.Warn("party balances do not sum to zero", "party_id", partyID, "drift", drift)
	}

	transfers := calculator.Settle(balances, party.ParticipantIDs())
	summary.Settlements = make([]models.Settlement, len(transfers))
	for i, t := range transfers {
		summary.Settlements[i] = models.Settlement{From: t.From, To: t.To, Amount: t.Amount}
	}

	metrics.SettlementsComputed.Inc()
	return summary, nil
}

// partyBalances folds all non-immediate expenses into per-participant
// net balances: the payer gains the full amount, every participant
// loses their share.
func partyBalances(party *models.Party, expenses []models.Expense) (map[string]float64, error) {
	balances := make(map[string]float64, len(party.Participants))
	for _, p := range party.Participants {
		balances[p.ID] = 0
	}

	for _, e := range expenses {
		if e.PaidImmediately {
			continue
		}

		var shares map[string]float64
		var err error
		switch e.SplitType {
		case models.SplitCustom:
			shares = calculator.CustomSplit(party.ParticipantIDs(), e.SplitData)
		default:
			shares, err = calculator.EqualSplit(e.Amount, party.ParticipantIDs())
			if err != nil {
				return nil, err
			}
		}

		balances[e.PaidBy] += e.Amount
		for id, share := range shares {
			balances[id] -= share
		}
	}
	return balances, nil
}

// validateExpense runs the shared validation chain for add and update.
// It returns the normalized split type and the split data to record,
// rebalanced when the caller asked for it.
func validateExpense(party *models.Party, in *ExpenseInput) (models.SplitType, map[string]float64, error) {
	if strings.TrimSpace(in.Description) == "" {
		return "", nil, fmt.Errorf("%w: expense description is required", ErrValidation)
	}
	if in.Amount <= 0 {
		return "", nil, fmt.Errorf("%w: expense amount must be positive", ErrValidation)
	}
	if in.PaidBy != models.CurrentUserID && !party.HasParticipant(in.PaidBy) {
		return "", nil, fmt.Errorf("%w: payer %q is not a participant", ErrValidation, in.PaidBy)
	}

	splitType := in.SplitType
	if splitType == "" {
		splitType = models.SplitEqual
	}
	if splitType != models.SplitEqual && splitType != models.SplitCustom {
		return "", nil, fmt.Errorf("%w: unknown split type %q", ErrValidation, in.SplitType)
	}

	splitData := in.SplitData
	// Immediate payments create no debts, so their split never needs to
	// balance.
	if !in.PaidImmediately && splitType == models.SplitCustom {
		assigned := calculator.SplitTotal(splitData)
		if math.Abs(in.Amount-assigned) > calculator.Epsilon {
			if !in.Rebalance {
				return "", nil, &SplitMismatchError{Amount: in.Amount, Assigned: assigned}
			}
			rebalanced, err := rebalanceSplit(in.Amount, splitData)
			if err != nil {
				return "", nil, err
			}
			splitData = rebalanced
		}
	}
	return splitType, splitData, nil
}

// rebalanceSplit spreads the residual difference between the expense
// amount and the assigned total evenly across the participants that
// already carry a nonzero share, matching the adjustment the expense
// form offers.
func rebalanceSplit(amount float64, splitData map[string]float64) (map[string]float64, error) {
	var nonzero []string
	for id, share := range splitData {
		if share > 0 {
			nonzero = append(nonzero, id)
		}
	}
	if len(nonzero) == 0 {
		return nil, &SplitMismatchError{Amount: amount, Assigned: calculator.SplitTotal(splitData)}
	}

	adjustment := (amount - calculator.SplitTotal(splitData)) / float64(len(nonzero))
	rebalanced := make(map[string]float64, len(splitData))
	for id, share := range splitData {
		rebalanced[id] = share
	}
	for _, id := range nonzero {
		rebalanced[id] += adjustment
	}
	return rebalanced, nil
}
