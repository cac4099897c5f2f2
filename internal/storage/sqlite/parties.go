package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cuentasclaras/backend/internal/models"
)

// Parties retrieves every party with its participants, in stored order.
func (s *Store) Parties(ctx context.Context) ([]models.Party, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, date, status, created_at FROM parties ORDER BY pos",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get parties: %w", err)
	}
	defer rows.Close()

	var parties []models.Party
	for rows.Next() {
		var p models.Party
		var description, date sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &description, &date, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		p.Description = description.String
		p.Date = date.String
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parties: %w", err)
	}

	for i := range parties {
		participants, err := s.partyParticipants(ctx, parties[i].ID)
		if err != nil {
			return nil, err
		}
		parties[i].Participants = participants
	}
	return parties, nil
}

func (s *Store) partyParticipants(ctx context.Context, partyID string) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT participant_id, name FROM party_participants WHERE party_id = ? ORDER BY pos",
		partyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

// SaveParties replaces the parties collection, participants included.
func (s *Store) SaveParties(ctx context.Context, parties []models.Party) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM parties"); err != nil {
		return fmt.Errorf("failed to clear parties: %w", err)
	}

	for pos, p := range parties {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO parties (id, name, description, date, status, created_at, pos) VALUES (?, ?, ?, ?, ?, ?, ?)",
			p.ID, p.Name, nullable(p.Description), nullable(p.Date), string(p.Status), p.CreatedAt, pos,
		)
		if err != nil {
			return fmt.Errorf("failed to insert party: %w", err)
		}

		for i, participant := range p.Participants {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO party_participants (party_id, participant_id, name, pos) VALUES (?, ?, ?, ?)",
				p.ID, participant.ID, participant.Name, i,
			)
			if err != nil {
				return fmt.Errorf("failed to insert participant: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
