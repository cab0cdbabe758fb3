// tetris plays falling-block puzzles in the terminal, locally or over SSH.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play (default mode comes from the config)
//	tetris menu              - Pick a mode interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a custom tetris.yaml
//	--difficulty <name>   - easy, normal or hard
//
// A .env file in the working directory may set TETRIS_DB, TETRIS_CONFIG
// and TETRIS_FPS; explicit flags win.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	gametetris "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tetris"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `Falling-block puzzles for the terminal.

Available commands:
  list     - Show the available modes
  play     - Play a mode directly
  menu     - Interactive mode picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris play
  tetris play tetris_endless --difficulty hard
  tetris menu
  tetris serve --ssh :2222
  tetris scores tetris`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup applies .env defaults, checks the config and difficulty, and
// hands them to the game package before any game is created.
func setup(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // A missing .env is normal
	godotenv.Load()

	if err := applyEnv(cmd); err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset, err := checkConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	gametetris.SetConfigPath(flagConfig)
	gametetris.SetDifficultyPreset(string(preset))
	return nil
}

// checkConfig loads the config the game will use, applies the preset and
// validates the result, so bad values stop the CLI instead of being
// replaced by defaults when the game starts.
func checkConfig(path, difficulty string) (config.DifficultyPreset, error) {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return "", err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return "", err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	if _, err := cfg.ToOptions(); err != nil {
		return "", err
	}
	if _, _, err := cfg.Colors(); err != nil {
		return "", err
	}
	return preset, nil
}

// applyEnv fills flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if v := os.Getenv("TETRIS_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("TETRIS_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if v := os.Getenv("TETRIS_FPS"); v != "" && !flags.Changed("fps") {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TETRIS_FPS: %w", err)
		}
		flagFPS = fps
	}
	return nil
}

// defaultGameID is the mode named in the config, as a game ID.
func defaultGameID() string {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return gametetris.IDMarathon
	}
	return gametetris.IDForMode(cfg.Mode)
}
