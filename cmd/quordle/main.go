// Command quordle plays the daily Quordle puzzle with a language model,
// persists the result, and renders a shareable replay.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joe-boudreau/llm-quordle-solver/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
	headed     bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quordle",
	Short: "LLM Quordle solver",
	Long: `quordle drives the daily Quordle puzzle in a headless browser and lets a
language model do the guessing. Each run produces a persisted game record,
updated win/loss statistics, and a self-contained HTML replay of the
conversation; a win also gets celebratory AI artwork of the four words.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Play today's puzzle end to end",
	Long: `Launches the browser, observes the boards, and loops: render the game
state for the agent, collect a guess, submit it, reconcile. On termination the
game record, statistics, replay and artwork are persisted to the configured
store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runSolve(cmd.Context(), cfg)
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Regenerate the HTML replay from the last saved game",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runReplay(cmd.Context(), cfg)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the agent's win/loss record",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runStats(cmd.Context(), cfg)
	},
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if headed {
		cfg.Browser.Headless = false
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&headed, "headed", false, "run the browser with a visible window")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(statsCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
