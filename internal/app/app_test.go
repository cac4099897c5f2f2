package app

import (
	"context"
	"testing"

	"github.com/cuentasclaras/backend/internal/ledger"
	"github.com/cuentasclaras/backend/internal/models"
	"github.com/cuentasclaras/backend/internal/storage/memory"
)

func TestNewWithStore(t *testing.T) {
	a := NewWithStore(memory.New(), "CuentasClaras")
	defer a.Close()

	if a.Ledger == nil || a.Transactions == nil || a.Settings == nil || a.Backup == nil {
		t.Fatal("expected all services to be wired")
	}

	// The services must share one store.
	ctx := context.Background()
	party, err := a.Ledger.CreateParty(ctx, ledger.CreatePartyParams{
		Name:         "Trip",
		Participants: []models.Participant{{ID: "A", Name: "Ana"}},
	})
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}

	parties, err := a.Store.Parties(ctx)
	if err != nil {
		t.Fatalf("Parties failed: %v", err)
	}
	if len(parties) != 1 || parties[0].ID != party.ID {
		t.Errorf("store parties = %+v", parties)
	}
}

func TestClearAllData(t *testing.T) {
	a := NewWithStore(memory.New(), "CuentasClaras")
	defer a.Close()
	ctx := context.Background()

	party, err := a.Ledger.CreateParty(ctx, ledger.CreatePartyParams{
		Name:         "Trip",
		Participants: []models.Participant{{ID: "A", Name: "Ana"}},
	})
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}
	if _, err := a.Ledger.AddExpense(ctx, party.ID, ledger.ExpenseInput{
		Description: "Hotel", Amount: 90, PaidBy: "A",
	}); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if _, err := a.Transactions.Add(ctx, models.Transaction{
		Type: models.TypeExpense, Amount: 10, Date: "2024-06-01",
	}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := a.Settings.AddAccount(ctx, models.Account{Name: "Main"}); err != nil {
		t.Fatalf("AddAccount failed: %v", err)
	}

	if err := a.ClearAllData(ctx); err != nil {
		t.Fatalf("ClearAllData failed: %v", err)
	}

	parties, err := a.Store.Parties(ctx)
	if err != nil {
		t.Fatalf("Parties failed: %v", err)
	}
	expenses, err := a.Store.PartyExpenses(ctx)
	if err != nil {
		t.Fatalf("PartyExpenses failed: %v", err)
	}
	txs, err := a.Store.Transactions(ctx)
	if err != nil {
		t.Fatalf("Transactions failed: %v", err)
	}
	settings, err := a.Store.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if len(parties) != 0 || len(expenses) != 0 || len(txs) != 0 {
		t.Errorf("collections survived the wipe: %d parties, %d expenses, %d transactions",
			len(parties), len(expenses), len(txs))
	}
	if !settings.IsZero() {
		t.Errorf("settings survived the wipe: %+v", settings)
	}
}
