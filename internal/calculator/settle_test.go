package calculator

import (
	"math"
	"testing"
)

// applyTransfers plays the transfer list back against a copy of the
// balances: each payment reduces the debtor's deficit and the
// creditor's surplus.
func applyTransfers(balances map[string]float64, transfers []Transfer) map[string]float64 {
	out := make(map[string]float64, len(balances))
	for id, b := range balances {
		out[id] = b
	}
	for _, tr := range transfers {
		out[tr.From] += tr.Amount
		out[tr.To] -= tr.Amount
	}
	return out
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]float64
		order    []string
		want     []Transfer
	}{
		{
			name:     "one payer three ways",
			balances: map[string]float64{"A": 60.0, "B": -30.0, "C": -30.0},
			order:    []string{"A", "B", "C"},
			want: []Transfer{
				{From: "B", To: "A", Amount: 30.0},
				{From: "C", To: "A", Amount: 30.0},
			},
		},
		{
			name:     "two creditors one debtor",
			balances: map[string]float64{"A": 40.0, "B": 20.0, "C": -60.0},
			order:    []string{"A", "B", "C"},
			want: []Transfer{
				{From: "C", To: "A", Amount: 40.0},
				{From: "C", To: "B", Amount: 20.0},
			},
		},
		{
			name:     "already settled",
			balances: map[string]float64{"A": 0, "B": 0.005, "C": -0.005},
			order:    []string{"A", "B", "C"},
			want:     nil,
		},
		{
			name:     "empty",
			balances: map[string]float64{},
			order:    nil,
			want:     nil,
		},
		{
			name:     "matched pairs settle without crossing",
			balances: map[string]float64{"A": 10.0, "B": -10.0, "C": 25.0, "D": -25.0},
			order:    []string{"A", "B", "C", "D"},
			want: []Transfer{
				{From: "B", To: "A", Amount: 10.0},
				{From: "D", To: "C", Amount: 25.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settle(tt.balances, tt.order)

			after := applyTransfers(tt.balances, got)
			for id, b := range after {
				if math.Abs(b) > Epsilon {
					t.Errorf("%s left with balance %v after transfers", id, b)
				}
			}

			if len(got) != len(tt.want) {
				t.Fatalf("got %d transfers %v, want %d", len(got), got, len(tt.want))
			}
			for i, tr := range got {
				w := tt.want[i]
				if tr.From != w.From || tr.To != w.To || math.Abs(tr.Amount-w.Amount) > Epsilon {
					t.Errorf("transfer %d = %+v, want %+v", i, tr, w)
				}
			}
		})
	}
}

func TestSettleTerminationBound(t *testing.T) {
	// n creditors and n debtors must settle in at most 2n-1 transfers.
	balances := map[string]float64{}
	var order []string
	for i := 0; i < 8; i++ {
		creditor := "c" + string(rune('0'+i))
		debtor := "d" + string(rune('0'+i))
		balances[creditor] = float64(i+1) * 7.5
		balances[debtor] = -float64(i+1) * 7.5
		order = append(order, creditor, debtor)
	}

	transfers := Settle(balances, order)
	if max := 16 - 1; len(transfers) > max {
		t.Errorf("settled in %d transfers, bound is %d", len(transfers), max)
	}

	after := applyTransfers(balances, transfers)
	for id, b := range after {
		if math.Abs(b) > Epsilon {
			t.Errorf("%s left with balance %v", id, b)
		}
	}
}

func TestSettleDeterministicWithoutOrder(t *testing.T) {
	balances := map[string]float64{"x": -5.0, "a": 5.0, "m": 10.0, "z": -10.0}

	first := Settle(balances, nil)
	for i := 0; i < 10; i++ {
		again := Settle(balances, nil)
		if len(again) != len(first) {
			t.Fatalf("run %d produced %d transfers, first run produced %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d transfer %d = %+v, first run %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestSettleRoundsToCents(t *testing.T) {
	balances := map[string]float64{"A": 33.333333, "B": -33.333333}
	transfers := Settle(balances, []string{"A", "B"})
	if len(transfers) != 1 {
		t.Fatalf("got %d transfers, want 1", len(transfers))
	}
	if transfers[0].Amount != 33.33 {
		t.Errorf("amount = %v, want 33.33", transfers[0].Amount)
	}
}

func TestSumBalances(t *testing.T) {
	if got := SumBalances(map[string]float64{"a": 2.5, "b": -1.5}); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("SumBalances = %v, want 1.0", got)
	}
}
