package models

// TransactionType distinguishes income from expense entries.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is a personal-ledger entry, independent of the party
// subsystem. The JSON tags pin the backup archive wire shape.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Account     string          `json:"account,omitempty"`
	Date        string          `json:"date"`

	// CreatedAt is an ISO-8601 timestamp. Backups drop it when it
	// matches Date, so it may be empty after a round trip.
	CreatedAt string `json:"createdAt,omitempty"`
}
