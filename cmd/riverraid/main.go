// riverraid is a River Raid-style scrolling shooter for the terminal.
//
// Usage:
//
//	riverraid list             - List game modes
//	riverraid play [mode]      - Fly a mode (default: riverraid)
//	riverraid menu             - Pick modes interactively
//	riverraid serve            - Start SSH server for remote play
//	riverraid scores [mode]    - Show the leaderboard of a mode
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for a reproducible river
//	--course <name>      - Named reproducible river (overrides --seed)
//	--db <path>          - Set database path (default: ~/.riverraid/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-riverraid/internal/config"
	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagCourse     string
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// logger is set up before any command runs.
var logger = log.New(os.Stderr)

func main() {
	defer closeLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeLog()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riverraid",
	Short: "River Raid - fly upriver in your terminal",
	Long: `River Raid is a top-down scrolling shooter for the terminal.
Fly up an endless river, dodge the banks, shoot turrets, helicopters and
bridges, and pick up fuel before the tank runs dry.

Available commands:
  list     - Show all game modes
  play     - Fly a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  riverraid play
  riverraid play riverraid_rapid --difficulty hard
  riverraid play --course amazon
  riverraid menu
  riverraid serve --ssh :2222
  riverraid scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagCourse, "course", "", "Named reproducible river, overrides --seed")
	pf.StringVar(&flagDBPath, "db", "~/.riverraid/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup applies the global flags shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	l, err := openLog(flagLogFile, flagLogLevel, cmd.Name() == serveCmd.Name())
	if err != nil {
		return err
	}
	logger = l

	riverraid.SetConfigPath(flagConfig)
	riverraid.SetDifficultyPreset(flagDifficulty)
	if _, err := riverraid.LoadConfig(); err != nil {
		// The game falls back to the built-in tuning.
		logger.Warn("using default game config", "err", err)
		if flagLogFile == "" && cmd.Name() != serveCmd.Name() {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
	}
	return nil
}
