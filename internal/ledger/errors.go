package ledger

import (
	"errors"
	"fmt"
)

// Validation and lifecycle failures surfaced by the party ledger. All
// are recoverable: the operation aborts with no state change and the
// caller decides what to do.
var (
	// ErrValidation reports rejected user input. Wrapped errors carry
	// the field detail.
	ErrValidation = errors.New("validation failed")

	// ErrPartyNotFound reports an unknown party ID.
	ErrPartyNotFound = errors.New("party not found")

	// ErrExpenseNotFound reports an unknown expense ID.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrPartyClosed reports an expense operation on a settled party.
	ErrPartyClosed = errors.New("party is settled")

	// ErrInvalidState reports a lifecycle transition the party's
	// current status does not allow.
	ErrInvalidState = errors.New("invalid party state")
)

// SplitMismatchError reports a custom split whose assigned shares do
// not add up to the expense amount within the minor-unit tolerance.
type SplitMismatchError struct {
	Amount   float64
	Assigned float64
}

func (e *SplitMismatchError) Error() string {
	return fmt.Sprintf("custom split assigns %.2f of %.2f", e.Assigned, e.Amount)
}

// PartialDeleteError reports a cascade delete that removed a party's
// expenses but then failed to remove the party record itself. The
// store has no cross-collection transactions, so the two writes can
// diverge; the caller learns exactly which half survived.
type PartialDeleteError struct {
	PartyID string
	Err     error
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("expenses of party %s deleted but party record remains: %v", e.PartyID, e.Err)
}

func (e *PartialDeleteError) Unwrap() error { return e.Err }
