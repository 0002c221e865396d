package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	pkgLog "taskbuddy/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	chat_id INTEGER NOT NULL,
	description TEXT NOT NULL,
	description_key TEXT NOT NULL,
	deadline DATETIME,
	difficulty TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	calendar_event_id TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	completed_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks (user_id, status);
`

// Repository is the SQLite-backed task repository.
type Repository struct {
	db *sqlx.DB
	l  pkgLog.Logger
}

// New opens (creating if needed) the SQLite database at dbPath and runs
// migrations.
func New(dbPath string, l pkgLog.Logger) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	// WAL for concurrent readers; SQLite allows one writer at a time.
	db, err := sqlx.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Repository{db: db, l: l}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}
