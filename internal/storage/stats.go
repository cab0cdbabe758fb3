package storage

import (
	"fmt"
	"time"
)

// GameStats summarizes the saved games of one game ID.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestLines  int
	BestLevel  int
	LastPlayed time.Time
}

const statsColumns = `COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
	COALESCE(MAX(lines), 0), COALESCE(MAX(level), 0), MAX(created_at)`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStats(row rowScanner, gs *GameStats, extra ...any) error {
	var last any
	dest := append(extra, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore,
		&gs.BestLines, &gs.BestLevel, &last)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	gs.LastPlayed = parseTime(last)
	return nil
}

// GetGameStats summarizes gameID. A game never played has a zero
// GamesCount.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	gs := &GameStats{GameID: gameID}
	row := s.db.QueryRow(`SELECT `+statsColumns+` FROM scores WHERE game_id = ?`, gameID)
	if err := scanStats(row, gs); err != nil {
		return nil, fmt.Errorf("storage: stats of %s: %w", gameID, err)
	}
	return gs, nil
}

// GetAllGamesStats summarizes every game ID that has saved games.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT game_id, ` + statsColumns + ` FROM scores GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		gs := &GameStats{}
		if err := scanStats(rows, gs, &gs.GameID); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		all[gs.GameID] = gs
	}
	return all, rows.Err()
}
