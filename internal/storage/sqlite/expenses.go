package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cuentasclaras/backend/internal/models"
)

// PartyExpenses retrieves every party expense with its split data, in
// stored order.
func (s *Store) PartyExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, party_id, description, amount, paid_by, split_type, category, date, paid_immediately, created_at
		 FROM party_expenses ORDER BY pos`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get party expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var category, date sql.NullString
		var immediate int
		if err := rows.Scan(&e.ID, &e.PartyID, &e.Description, &e.Amount, &e.PaidBy,
			&e.SplitType, &category, &date, &immediate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Category = category.String
		e.Date = date.String
		e.PaidImmediately = immediate != 0
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for i := range expenses {
		splits, err := s.expenseSplits(ctx, expenses[i].ID)
		if err != nil {
			return nil, err
		}
		expenses[i].SplitData = splits
	}
	return expenses, nil
}

func (s *Store) expenseSplits(ctx context.Context, expenseID string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT participant_id, amount FROM expense_splits WHERE expense_id = ?",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer rows.Close()

	var splits map[string]float64
	for rows.Next() {
		var participantID string
		var amount float64
		if err := rows.Scan(&participantID, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		if splits == nil {
			splits = make(map[string]float64)
		}
		splits[participantID] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}
	return splits, nil
}

// SavePartyExpenses replaces the party-expenses collection, split data
// included.
func (s *Store) SavePartyExpenses(ctx context.Context, expenses []models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM party_expenses"); err != nil {
		return fmt.Errorf("failed to clear party expenses: %w", err)
	}

	for pos, e := range expenses {
		immediate := 0
		if e.PaidImmediately {
			immediate = 1
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO party_expenses (id, party_id, description, amount, paid_by, split_type, category, date, paid_immediately, created_at, pos)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.PartyID, e.Description, e.Amount, e.PaidBy, string(e.SplitType),
			nullable(e.Category), nullable(e.Date), immediate, e.CreatedAt, pos,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		for participantID, amount := range e.SplitData {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO expense_splits (expense_id, participant_id, amount) VALUES (?, ?, ?)",
				e.ID, participantID, amount,
			)
			if err != nil {
				return fmt.Errorf("failed to insert expense split: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
