package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTopLimit = 10
	sqliteTime      = "2006-01-02 15:04:05"
	entryColumns    = "id, game_id, COALESCE(run_id, ''), score, lines, level, created_at"
	bestFirst       = "ORDER BY score DESC, lines DESC, id ASC"
)

// ScoreRecord is a finished game to be saved.
type ScoreRecord struct {
	GameID string
	RunID  string // uuid of the run; empty means generate one
	Score  int
	Lines  int
	Level  int
}

// ScoreEntry is a saved game. RunID is empty for games saved before runs
// were tracked.
type ScoreEntry struct {
	ID        int64
	GameID    string
	RunID     string
	Score     int
	Lines     int
	Level     int
	CreatedAt time.Time
}

// SaveScore stores rec and returns its row ID. A run can only be saved
// once.
func (s *Store) SaveScore(rec ScoreRecord) (int64, error) {
	switch {
	case rec.RunID == "":
		rec.RunID = uuid.NewString()
	default:
		if _, err := uuid.Parse(rec.RunID); err != nil {
			return 0, fmt.Errorf("storage: run id %q: %w", rec.RunID, err)
		}
	}

	res, err := s.db.Exec(
		`INSERT INTO scores (game_id, run_id, score, lines, level) VALUES (?, ?, ?, ?, ?)`,
		rec.GameID, rec.RunID, rec.Score, rec.Lines, rec.Level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run %s: %w", rec.RunID, err)
	}
	return res.LastInsertId()
}

// TopScores returns at most limit games of gameID, best first. Equal
// scores rank by lines, then the older game wins. A limit of zero or less
// means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.entries(
		"SELECT "+entryColumns+" FROM scores WHERE game_id = ? "+bestFirst+" LIMIT ?",
		gameID, limit,
	)
}

// AllScores returns every game of gameID in TopScores order.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.entries("SELECT "+entryColumns+" FROM scores WHERE game_id = ? "+bestFirst, gameID)
}

// ScoreByRun returns the game saved for runID. The error wraps
// sql.ErrNoRows when there is none.
func (s *Store) ScoreByRun(runID string) (*ScoreEntry, error) {
	found, err := s.entries("SELECT "+entryColumns+" FROM scores WHERE run_id = ?", runID)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("storage: run %s: %w", runID, sql.ErrNoRows)
	}
	return &found[0], nil
}

// HighScore returns the best score of gameID, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?`, gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score of %s: %w", gameID, err)
	}
	return best, nil
}

// ClearScores forgets every game of gameID.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}

func (s *Store) entries(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			at any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.RunID, &e.Score, &e.Lines, &e.Level, &at); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		e.CreatedAt = parseTime(at)
		out = append(out, e)
	}
	return out, rows.Err()
}

// parseTime accepts a DATETIME as the driver returns it: a time.Time or
// SQLite's text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		parsed, _ := time.Parse(sqliteTime, t)
		return parsed
	default:
		return time.Time{}
	}
}
