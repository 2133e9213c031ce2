// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lepinkainen/humanlog"
	"github.com/spf13/cobra"

	"cinefront/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagLauncher      string
	flagWindow        string
	flagHTML          string
	flagNoInteractive bool
	flagJSON          bool
	flagDebug         bool
)

// cfg holds the loaded configuration (merged: defaults < config file < env < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "cinefront [query]",
	Short: "Discover movies and TV shows from the terminal",
	Long: `cinefront browses TheMovieDB from the terminal.
Without arguments it shows trending, current and popular titles; with a query it searches.
Selected titles open in the configured playback launcher.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              rootRun,
	SilenceUsage:      true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cinefront %s\n", Version)
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagLauncher, "launcher", "L", "", "Playback launcher: browser | print | <command>")
	rootCmd.PersistentFlags().StringVarP(&flagWindow, "window", "w", "", "Trending window: day | week")
	rootCmd.PersistentFlags().StringVar(&flagHTML, "html", "", "Also write the rendered page to this HTML file")
	rootCmd.PersistentFlags().BoolVarP(&flagNoInteractive, "no-interactive", "n", false, "Print results without prompting")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < env < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagLauncher != "" {
		cfg.Launcher = flagLauncher
	}
	if flagWindow != "" {
		cfg.TrendingWindow = flagWindow
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLogging(cfg.Debug)
	return nil
}

func initLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// rootRun searches when given a query and shows the home screen otherwise.
func rootRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return homeRun(cmd, args)
	}
	return searchRun(cmd, args)
}
