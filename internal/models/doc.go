// Package models defines the core domain models for CuentasClaras.
//
// # Model Groups
//
// The models fall into three groups:
//   - Party ledger: Party, Participant, Expense, and the derived
//     Settlement and Summary views produced for one shared-expense
//     event.
//   - Personal ledger: Transaction, the plain income/expense entries
//     of the app user, independent of any party.
//   - Configuration: Settings, Account, and Categories, read and
//     written as whole records.
//
// # Design Principles
//
// 1. **Derived state stays derived**: balances and settlements are
// recomputed from expenses on every query and never persisted.
//
// 2. **Avoid circular references**: relationships use ID strings
// (Expense.PartyID, Expense.PaidBy) instead of pointers.
//
// 3. **Stable wire shape**: JSON tags on Transaction, Settings, and
// Categories pin the backup archive format; renaming a Go field must
// not change the encoded form.
package models
