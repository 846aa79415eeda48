// skirmish is a terminal wave shooter: hold off waves of walkers and
// shooters across procedurally generated platforms.
//
// Usage:
//
//	skirmish play            - Play in the terminal
//	skirmish serve           - Start SSH server for remote play
//	skirmish simulate        - Run headless autopilot games
//	skirmish runs            - Browse the run journal
//	skirmish catalog         - Show weapon and armor tables
//	skirmish list            - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load tuning from a YAML file
//	--journal <path>     - Record runs in a SQLite journal
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/tui-skirmish/internal/games/skirmish"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagConfig      string
	flagJournalPath string
	flagLogLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skirmish",
	Short: "Skirmish - a wave shooter for your terminal",
	Long: `Skirmish is a side-view arena shooter played in the terminal.
Waves of enemies spawn on procedurally built platforms; clear them to
earn points and spend them on health and armor.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  simulate  - Run headless autopilot games for balance checks
  runs      - Browse journaled runs
  catalog   - Show weapon and armor tables
  list      - List registered games

Examples:
  skirmish play
  skirmish play --seed 42 --config ./skirmish.yaml
  skirmish simulate --runs 20 --journal ./runs.db
  skirmish serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom skirmish config YAML")
	rootCmd.PersistentFlags().StringVar(&flagJournalPath, "journal", "", "Path to run journal database (empty = in memory)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger creates a prefixed logger honoring --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the skirmish tuning. A bad --config file is fatal;
// anything else falls back to the defaults.
func loadConfig(logger *log.Logger) (config.SkirmishConfig, error) {
	cfg, err := config.LoadSkirmish(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "path", flagConfig, "world_w", cfg.World.Width, "world_h", cfg.World.Height)
	return cfg, nil
}

// fail prints an error and exits, as every command does on failure.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
