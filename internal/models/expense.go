package models

// SplitType is the rule distributing one expense's cost across the
// party's participants.
type SplitType string

const (
	// SplitEqual divides the amount evenly across all participants.
	SplitEqual SplitType = "equal"

	// SplitCustom uses the per-participant amounts in SplitData.
	SplitCustom SplitType = "custom"
)

// Expense is a single shared expense within a party.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// PartyID is the owning party.
	PartyID string `json:"partyId"`

	// Description is the human-readable label for the expense.
	Description string `json:"description"`

	// Amount is the expense total. Always positive.
	Amount float64 `json:"amount"`

	// PaidBy is the participant ID of whoever fronted the money.
	// May also be CurrentUserID.
	PaidBy string `json:"paidBy"`

	// SplitType selects how Amount is distributed.
	SplitType SplitType `json:"splitType"`

	// SplitData holds per-participant shares for custom splits.
	// Participants absent from the map owe nothing for this expense.
	SplitData map[string]float64 `json:"splitData,omitempty"`

	// Category is an optional expense category label.
	Category string `json:"category,omitempty"`

	// Date is the expense date as entered by the user.
	Date string `json:"date,omitempty"`

	// PaidImmediately marks an expense settled on the spot. It is
	// recorded for totals and history but creates no debts: balance
	// and settlement computations skip it entirely.
	PaidImmediately bool `json:"isPaidImmediately,omitempty"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"createdAt"`
}

// Summary is the derived view of one party: lifetime totals plus the
// current balances and the transfers that would clear them. It is
// recomputed from scratch on every query.
//
// TotalExpenses and ExpenseCount deliberately include immediately-paid
// expenses even though Balances and Settlements exclude them; the
// totals are reporting figures, the balances are debts.
type Summary struct {
	Party            Party              `json:"party"`
	TotalExpenses    float64            `json:"totalExpenses"`
	ExpenseCount     int                `json:"expenseCount"`
	ParticipantCount int                `json:"participantCount"`
	Balances         map[string]float64 `json:"balances"`
	Settlements      []Settlement       `json:"settlements"`
	Expenses         []Expense          `json:"expenses"`
}
