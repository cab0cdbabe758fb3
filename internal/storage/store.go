// Package storage keeps finished tetris games in a SQLite database, using
// the pure Go modernc.org/sqlite driver so the binary needs no CGO.
package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// migrations are applied in order; PRAGMA user_version records how many
// ran. The first one matches the score table of older arcade databases in
// the same directory, so those are upgraded in place.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT    NOT NULL,
		score      INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`,

	`ALTER TABLE scores ADD COLUMN run_id TEXT;
	ALTER TABLE scores ADD COLUMN lines INTEGER NOT NULL DEFAULT 0;
	ALTER TABLE scores ADD COLUMN level INTEGER NOT NULL DEFAULT 1;
	CREATE UNIQUE INDEX idx_scores_run ON scores(run_id);`,
}

// Store is a handle on the score database. It is safe for concurrent use
// by several sessions.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating it and its directory when
// missing. A leading "~" is the user's home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: %s: %w", path, err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// dsn waits on a locked database instead of failing, since SSH sessions
// may finish games at the same moment.
func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	return path + "?" + q.Encode()
}

func (s *Store) init() error {
	if err := s.db.Ping(); err != nil {
		return err
	}

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for i := version; i < len(migrations); i++ {
		if err := s.migrate(i); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Store) migrate(i int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migrations[i]); err != nil {
		return err
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
