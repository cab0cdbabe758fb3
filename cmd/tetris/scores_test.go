package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gametetris "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func openScores(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintRun(t *testing.T) {
	store := openScores(t)
	run := uuid.NewString()
	_, err := store.SaveScore(storage.ScoreRecord{GameID: gametetris.IDEndless, RunID: run, Score: 1234, Lines: 31, Level: 4})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printRun(&out, store, run))
	assert.Contains(t, out.String(), "Run "+run)
	assert.Contains(t, out.String(), "Tetris (Endless)")
	assert.Contains(t, out.String(), "Score:  1234")
	assert.Contains(t, out.String(), "Lines:  31")

	err = printRun(&out, store, uuid.NewString())
	assert.ErrorContains(t, err, "no game saved")
}

func TestPrintSummary(t *testing.T) {
	store := openScores(t)

	var out bytes.Buffer
	require.NoError(t, printSummary(&out, store))
	assert.Contains(t, out.String(), "No scores recorded yet.")

	for _, rec := range []storage.ScoreRecord{
		{GameID: gametetris.IDMarathon, Score: 300, Lines: 5, Level: 1},
		{GameID: gametetris.IDMarathon, Score: 900, Lines: 12, Level: 2},
		{GameID: gametetris.IDEndless, Score: 50, Lines: 1, Level: 1},
	} {
		_, err := store.SaveScore(rec)
		require.NoError(t, err)
	}

	out.Reset()
	require.NoError(t, printSummary(&out, store))
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "Tetris ")
	assert.Contains(t, string(lines[1]), "900")
	assert.Contains(t, string(lines[2]), "Tetris (Endless)")
}

func TestPrintTop(t *testing.T) {
	store := openScores(t)
	var out bytes.Buffer
	require.NoError(t, printTop(&out, store, gametetris.IDMarathon, 10))
	assert.Contains(t, out.String(), "No scores recorded yet.")

	_, err := store.SaveScore(storage.ScoreRecord{GameID: gametetris.IDMarathon, Score: 700, Lines: 9, Level: 1})
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, printTop(&out, store, gametetris.IDMarathon, 10))
	assert.Contains(t, out.String(), "700")
	assert.Contains(t, out.String(), "Best: 700 over 1 games")
}
