package models

// Account is a money source (cash, bank, card) transactions can be
// attributed to.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Categories groups the user-defined category names by transaction
// type.
type Categories struct {
	Expense []string `json:"expense,omitempty"`
	Income  []string `json:"income,omitempty"`
}

// Empty reports whether no categories are defined.
func (c Categories) Empty() bool {
	return len(c.Expense) == 0 && len(c.Income) == 0
}

// Settings is the whole-record user configuration. Accounts and
// Categories live inside it in the store; the backup codec lifts them
// to the top level of the archive.
type Settings struct {
	Currency       string     `json:"currency,omitempty"`
	CurrencySymbol string     `json:"currencySymbol,omitempty"`
	DateFormat     string     `json:"dateFormat,omitempty"`
	Theme          string     `json:"theme,omitempty"`
	Mode           string     `json:"mode,omitempty"`
	Accounts       []Account  `json:"accounts,omitempty"`
	DefaultAccount string     `json:"defaultAccount,omitempty"`
	Categories     Categories `json:"categories,omitzero"`
}

// IsZero reports whether the settings record has never been written.
func (s Settings) IsZero() bool {
	return s.Currency == "" && s.CurrencySymbol == "" && s.DateFormat == "" &&
		s.Theme == "" && s.Mode == "" && len(s.Accounts) == 0 &&
		s.DefaultAccount == "" && s.Categories.Empty()
}
