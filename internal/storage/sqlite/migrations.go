package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// party_expenses carries no foreign key to parties: the two collections
// are replaced independently by whole-collection writes, and the
// cascade from party deletion to expense deletion is the ledger's job.
const schema = `
CREATE TABLE IF NOT EXISTS parties (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    date TEXT,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    pos INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS party_participants (
    party_id TEXT NOT NULL,
    participant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    pos INTEGER NOT NULL,
    PRIMARY KEY (party_id, participant_id),
    FOREIGN KEY (party_id) REFERENCES parties(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS party_expenses (
    id TEXT PRIMARY KEY,
    party_id TEXT NOT NULL,
    description TEXT NOT NULL,
    amount REAL NOT NULL,
    paid_by TEXT NOT NULL,
    split_type TEXT NOT NULL,
    category TEXT,
    date TEXT,
    paid_immediately INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    pos INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS expense_splits (
    expense_id TEXT NOT NULL,
    participant_id TEXT NOT NULL,
    amount REAL NOT NULL,
    PRIMARY KEY (expense_id, participant_id),
    FOREIGN KEY (expense_id) REFERENCES party_expenses(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    amount REAL NOT NULL,
    description TEXT,
    category TEXT,
    account TEXT,
    date TEXT,
    created_at TEXT,
    pos INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    body TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_party_participants_party_id ON party_participants(party_id);
CREATE INDEX IF NOT EXISTS idx_party_expenses_party_id ON party_expenses(party_id);
CREATE INDEX IF NOT EXISTS idx_expense_splits_expense_id ON expense_splits(expense_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
