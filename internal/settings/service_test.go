package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/cuentasclaras/backend/internal/models"
	"github.com/cuentasclaras/backend/internal/storage/memory"
)

func TestGetFallsBackToDefault(t *testing.T) {
	svc := NewService(memory.New())

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	want := Default()
	if got.Currency != want.Currency || got.Theme != want.Theme || got.Mode != want.Mode {
		t.Errorf("got %+v, want defaults %+v", got, want)
	}
}

func TestUpdateAndReset(t *testing.T) {
	svc := NewService(memory.New())
	ctx := context.Background()

	custom := Default()
	custom.Currency = "USD"
	custom.CurrencySymbol = "$"
	custom.Theme = "dark"
	if err := svc.Update(ctx, custom); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Currency != "USD" || got.Theme != "dark" {
		t.Errorf("got %+v", got)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	got, err = svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Currency != "EUR" || got.Theme != "light" {
		t.Errorf("reset left %+v", got)
	}
	if len(got.Accounts) != 0 {
		t.Errorf("reset kept accounts: %+v", got.Accounts)
	}
}

func TestAccountLifecycle(t *testing.T) {
	svc := NewService(memory.New())
	ctx := context.Background()

	t.Run("name required", func(t *testing.T) {
		if _, err := svc.AddAccount(ctx, models.Account{Name: "  "}); !errors.Is(err, ErrValidation) {
			t.Errorf("AddAccount error = %v, want ErrValidation", err)
		}
	})

	first, err := svc.AddAccount(ctx, models.Account{Name: "Main", Type: "bank"})
	if err != nil {
		t.Fatalf("AddAccount failed: %v", err)
	}
	if first.ID == "" {
		t.Error("expected an assigned account ID")
	}

	second, err := svc.AddAccount(ctx, models.Account{Name: "Cash", Type: "cash"})
	if err != nil {
		t.Fatalf("AddAccount failed: %v", err)
	}

	t.Run("first account becomes default", func(t *testing.T) {
		got, err := svc.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.DefaultAccount != first.ID {
			t.Errorf("default = %q, want %q", got.DefaultAccount, first.ID)
		}
		if len(got.Accounts) != 2 {
			t.Errorf("got %d accounts, want 2", len(got.Accounts))
		}
	})

	t.Run("update by id", func(t *testing.T) {
		if err := svc.UpdateAccount(ctx, models.Account{ID: second.ID, Name: "Wallet", Type: "cash"}); err != nil {
			t.Fatalf("UpdateAccount failed: %v", err)
		}
		got, err := svc.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Accounts[1].Name != "Wallet" {
			t.Errorf("accounts = %+v", got.Accounts)
		}

		if err := svc.UpdateAccount(ctx, models.Account{ID: "missing"}); !errors.Is(err, ErrAccountNotFound) {
			t.Errorf("UpdateAccount error = %v, want ErrAccountNotFound", err)
		}
	})

	t.Run("removing the default promotes the next account", func(t *testing.T) {
		if err := svc.RemoveAccount(ctx, first.ID); err != nil {
			t.Fatalf("RemoveAccount failed: %v", err)
		}
		got, err := svc.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.DefaultAccount != second.ID {
			t.Errorf("default = %q, want %q", got.DefaultAccount, second.ID)
		}
	})

	t.Run("removing the last account clears the default", func(t *testing.T) {
		if err := svc.RemoveAccount(ctx, second.ID); err != nil {
			t.Fatalf("RemoveAccount failed: %v", err)
		}
		got, err := svc.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.DefaultAccount != "" {
			t.Errorf("default = %q, want empty", got.DefaultAccount)
		}

		if err := svc.RemoveAccount(ctx, "missing"); !errors.Is(err, ErrAccountNotFound) {
			t.Errorf("RemoveAccount error = %v, want ErrAccountNotFound", err)
		}
	})
}

func TestSetCategories(t *testing.T) {
	svc := NewService(memory.New())
	ctx := context.Background()

	categories := models.Categories{
		Expense: []string{"food", "transport"},
		Income:  []string{"salary"},
	}
	if err := svc.SetCategories(ctx, categories); err != nil {
		t.Fatalf("SetCategories failed: %v", err)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Categories.Expense) != 2 || len(got.Categories.Income) != 1 {
		t.Errorf("categories = %+v", got.Categories)
	}
}
