package calculator

import "sort"

// Transfer is a single recommended payment from one participant to
// another.
type Transfer struct {
	From   string
	To     string
	Amount float64
}

// Settle computes the pairwise transfers that clear the given net
// balances (positive = owed money, negative = owes money).
//
// Algorithm: partition participants into creditors and debtors,
// skipping anyone within Epsilon of zero, then repeatedly settle
// min(debt, credit) between the first remaining debtor and the first
// remaining creditor, dropping whichever side reaches zero. The walk
// follows the order slice, so callers control the encounter order;
// balance keys missing from order are appended in sorted order to keep
// the output deterministic. This is the classic greedy debt
// simplification: it terminates in at most debtors+creditors-1
// transfers and is the accepted practical answer even though
// minimum-cardinality settlement is NP-hard in general.
//
// Balances that do not sum to zero are handled best effort: the
// residual simply never gets matched. Upstream computes balances from
// a single expense list, so any nontrivial drift is an upstream bug.
func Settle(balances map[string]float64, order []string) []Transfer {
	var creditors, debtors []string
	credit := make(map[string]float64)
	debt := make(map[string]float64)

	for _, id := range walkOrder(balances, order) {
		switch b := balances[id]; {
		case b > Epsilon:
			creditors = append(creditors, id)
			credit[id] = b
		case b < -Epsilon:
			debtors = append(debtors, id)
			debt[id] = -b
		}
	}

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := debtors[i], creditors[j]

		amount := debt[d]
		if credit[c] < amount {
			amount = credit[c]
		}
		amount = Round2(amount)

		if amount > Epsilon {
			transfers = append(transfers, Transfer{From: d, To: c, Amount: amount})
		}

		debt[d] -= amount
		credit[c] -= amount

		if debt[d] < Epsilon {
			i++
		}
		if credit[c] < Epsilon {
			j++
		}
	}

	return transfers
}

// SumBalances returns the signed total of all balances. Anything
// beyond rounding noise signals a defect in the balance computation.
func SumBalances(balances map[string]float64) float64 {
	var sum float64
	for _, b := range balances {
		sum += b
	}
	return sum
}

// walkOrder yields every balance key exactly once: first the ones named
// in order, then any stragglers sorted by ID.
func walkOrder(balances map[string]float64, order []string) []string {
	seen := make(map[string]bool, len(order))
	ids := make([]string, 0, len(balances))
	for _, id := range order {
		if _, ok := balances[id]; ok && !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}

	var extra []string
	for id := range balances {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}
