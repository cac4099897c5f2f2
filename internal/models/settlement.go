package models

// Settlement represents one recommended payment between two
// participants that helps zero out a party's balances.
//
// Settlements are derived on every summary query and never stored;
// the amounts are rounded to two decimal places.
type Settlement struct {
	// From is the participant who owes (debtor settling up).
	From string `json:"from"`

	// To is the participant who is owed (creditor being paid).
	To string `json:"to"`

	// Amount is the payment amount. Always positive.
	Amount float64 `json:"amount"`
}
