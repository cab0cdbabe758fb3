package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const dateLayout = "2006-01-02 15:04"

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best scores for a mode, with lines cleared and level reached.

Every finished game is saved under a run id, which the SSH server logs
when a game starts. --run looks one up.

Examples:
  tetris scores
  tetris scores tetris_endless --limit 25
  tetris scores --all
  tetris scores --run 0b7c9a1e-3f0e-4d51-9a55-2f7c1d1e8a42
  tetris scores tetris --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every mode that has scores")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show the game saved under this run id")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := defaultGameID()
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresRun != "":
		return printRun(os.Stdout, store, flagScoresRun)
	case flagScoresAll:
		return printSummary(os.Stdout, store)
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", registry.Title(gameID))
		return nil
	}
	return printTop(os.Stdout, store, gameID, flagScoresLimit)
}

func printTop(w io.Writer, store *storage.Store, gameID string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintf(w, "\nPlay 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %-5d  %-5d  %s\n", i+1, e.Score, e.Lines, e.Level, e.CreatedAt.Format(dateLayout))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(w, "\nBest: %d over %d games (avg %.0f)\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printSummary lists one line per mode with saved games.
func printSummary(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-18s  %-5s  %-10s  %-8s  %-5s  %-5s  %s\n", "Mode", "Games", "Best", "Avg", "Lines", "Level", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(w, "  %-18s  %-5d  %-10d  %-8.0f  %-5d  %-5d  %s\n",
			registry.Title(id), s.GamesCount, s.HighScore, s.AvgScore, s.BestLines, s.BestLevel, s.LastPlayed.Format(dateLayout))
	}
	return nil
}

func printRun(w io.Writer, store *storage.Store, runID string) error {
	e, err := store.ScoreByRun(runID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("no game saved under run %s", runID)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Run %s\n", e.RunID)
	fmt.Fprintf(w, "  Mode:   %s\n", registry.Title(e.GameID))
	fmt.Fprintf(w, "  Score:  %d\n", e.Score)
	fmt.Fprintf(w, "  Lines:  %d\n", e.Lines)
	fmt.Fprintf(w, "  Level:  %d\n", e.Level)
	fmt.Fprintf(w, "  Played: %s\n", e.CreatedAt.Format(dateLayout))
	return nil
}
