// Package calculator holds the pure computation core: split shares per
// expense and the greedy transfer matching that clears a party's
// balances. It performs no I/O and keeps no state.
package calculator

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the minor-unit tolerance for money comparisons. Amounts
// within Epsilon of each other are considered equal; balances within
// Epsilon of zero are considered settled.
const Epsilon = 0.01

// ErrInvalidSplit reports malformed split input, such as an equal split
// over zero participants.
var ErrInvalidSplit = errors.New("invalid split")

// EqualSplit divides amount evenly among the given participant IDs.
// Each per-head share is computed independently; rounding remainders
// are not redistributed, so 100 over three people yields 33.33… each
// rather than forcing the shares to sum to exactly 100.
func EqualSplit(amount float64, participantIDs []string) (map[string]float64, error) {
	if len(participantIDs) == 0 {
		return nil, fmt.Errorf("%w: must have at least one participant", ErrInvalidSplit)
	}

	share := amount / float64(len(participantIDs))
	shares := make(map[string]float64, len(participantIDs))
	for _, id := range participantIDs {
		shares[id] = share
	}
	return shares, nil
}

// CustomSplit assigns each participant the share recorded for them in
// splitData; participants without an entry owe zero. Entries in
// splitData for IDs outside the participant list (the current-user
// sentinel, typically) are kept so they still enter the balance
// computation.
func CustomSplit(participantIDs []string, splitData map[string]float64) map[string]float64 {
	shares := make(map[string]float64, len(participantIDs))
	for _, id := range participantIDs {
		shares[id] = splitData[id]
	}
	for id, amount := range splitData {
		if _, ok := shares[id]; !ok && amount != 0 {
			shares[id] = amount
		}
	}
	return shares
}

// SplitTotal sums the assigned shares of a custom split.
func SplitTotal(splitData map[string]float64) float64 {
	var total float64
	for _, amount := range splitData {
		total += amount
	}
	return total
}

// Round2 rounds to two decimal places, the precision settlements are
// reported in.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
