package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cuentasclaras/backend/internal/models"
)

// Transactions retrieves every personal-ledger entry in stored order.
func (s *Store) Transactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, type, amount, description, category, account, date, created_at FROM transactions ORDER BY pos",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var description, category, account, date, createdAt sql.NullString
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount, &description, &category,
			&account, &date, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Description = description.String
		t.Category = category.String
		t.Account = account.String
		t.Date = date.String
		t.CreatedAt = createdAt.String
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txs, nil
}

// SaveTransactions replaces the personal-ledger collection.
func (s *Store) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}

	for pos, t := range txs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (id, type, amount, description, category, account, date, created_at, pos)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, string(t.Type), t.Amount, nullable(t.Description), nullable(t.Category),
			nullable(t.Account), nullable(t.Date), nullable(t.CreatedAt), pos,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
