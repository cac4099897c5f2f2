package calculator

import (
	"math"
	"testing"
)

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		participants []string
		wantErr      bool
		validateFunc func(t *testing.T, shares map[string]float64)
	}{
		{
			name:         "two-way split",
			amount:       90.0,
			participants: []string{"a", "b"},
			validateFunc: func(t *testing.T, shares map[string]float64) {
				for _, id := range []string{"a", "b"} {
					if math.Abs(shares[id]-45.0) > Epsilon {
						t.Errorf("%s share = %v, want 45.0", id, shares[id])
					}
				}
			},
		},
		{
			name:         "three-way split",
			amount:       90.0,
			participants: []string{"a", "b", "c"},
			validateFunc: func(t *testing.T, shares map[string]float64) {
				for _, id := range []string{"a", "b", "c"} {
					if math.Abs(shares[id]-30.0) > Epsilon {
						t.Errorf("%s share = %v, want 30.0", id, shares[id])
					}
				}
			},
		},
		{
			name:         "single participant gets the whole amount",
			amount:       12.5,
			participants: []string{"solo"},
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if shares["solo"] != 12.5 {
					t.Errorf("solo share = %v, want 12.5", shares["solo"])
				}
			},
		},
		{
			name:         "no participants should error",
			amount:       10.0,
			participants: []string{},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := EqualSplit(tt.amount, tt.participants)
			if (err != nil) != tt.wantErr {
				t.Errorf("EqualSplit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && tt.validateFunc != nil {
				tt.validateFunc(t, shares)
			}
		})
	}
}

// Shares are computed per head with no remainder redistribution, so the
// sum may drift from the amount, but never by more than one epsilon per
// participant. 100/3 is the classic case: 33.33... each, never forced
// back to exactly 100.
func TestEqualSplitDriftBound(t *testing.T) {
	amounts := []float64{100.0, 0.01, 10.0, 99.99, 7.77, 1234.56}
	for n := 1; n <= 9; n++ {
		participants := make([]string, n)
		for i := range participants {
			participants[i] = string(rune('a' + i))
		}
		for _, amount := range amounts {
			shares, err := EqualSplit(amount, participants)
			if err != nil {
				t.Fatalf("EqualSplit(%v, %d) failed: %v", amount, n, err)
			}
			if len(shares) != n {
				t.Fatalf("got %d shares, want %d", len(shares), n)
			}
			sum := SplitTotal(shares)
			if math.Abs(sum-amount) > float64(n)*Epsilon {
				t.Errorf("sum of %d shares of %v = %v, drift exceeds %d*epsilon",
					n, amount, sum, n)
			}
		}
	}
}

func TestCustomSplit(t *testing.T) {
	participants := []string{"a", "b", "c"}

	t.Run("assigned shares pass through", func(t *testing.T) {
		shares := CustomSplit(participants, map[string]float64{"a": 20.0, "c": 30.0})
		if shares["a"] != 20.0 {
			t.Errorf("a share = %v, want 20.0", shares["a"])
		}
		if shares["c"] != 30.0 {
			t.Errorf("c share = %v, want 30.0", shares["c"])
		}
	})

	t.Run("omitted participants owe zero", func(t *testing.T) {
		shares := CustomSplit(participants, map[string]float64{"a": 50.0})
		if got, ok := shares["b"]; !ok || got != 0 {
			t.Errorf("b share = %v (present=%v), want explicit 0", got, ok)
		}
		if len(shares) != len(participants) {
			t.Errorf("got %d entries, want one per participant (%d)", len(shares), len(participants))
		}
	})

	t.Run("nil split data zero-fills everyone", func(t *testing.T) {
		shares := CustomSplit(participants, nil)
		if len(shares) != 3 {
			t.Fatalf("got %d entries, want 3", len(shares))
		}
		for id, share := range shares {
			if share != 0 {
				t.Errorf("%s share = %v, want 0", id, share)
			}
		}
	})

	t.Run("shares for outside IDs are kept", func(t *testing.T) {
		shares := CustomSplit(participants, map[string]float64{"a": 10.0, "YO": 5.0})
		if shares["YO"] != 5.0 {
			t.Errorf("YO share = %v, want 5.0", shares["YO"])
		}
	})
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{33.333333, 33.33},
		{29.999999, 30.0},
		{0.005, 0.01},
		{-0.005, -0.01},
		{45.0, 45.0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
