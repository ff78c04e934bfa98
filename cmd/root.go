package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rail44/drills/internal/config"
	"github.com/rail44/drills/internal/log"
	"github.com/rail44/drills/internal/ui"
)

var (
	cfgFile  string
	logLevel string
	color    string

	styles *ui.Styles
)

var rootCmd = &cobra.Command{
	Use:   "drills",
	Short: "Introductory exercises: an additive carol, a coin sorter and a temperature converter",
	Long: `drills bundles three small exercises.

Run without arguments it prints the cumulative verses of
"The Twelve Days of Christmas". The coins and temperature
subcommands run the other two exercises.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runCarol,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is drills.toml in the current or a parent directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: error, warn, info or debug (overrides config)")
	rootCmd.PersistentFlags().StringVar(&color, "color", "", "styling of terminal output: auto or never (overrides config)")
}

// setup loads configuration, then applies flag overrides to logging and styling
func setup(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(cfgFile, wd)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if color != "" {
		cfg.Color = color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if err := log.SetLevel(level); err != nil {
		return err
	}
	if cfg.Path != "" {
		log.Debug("using config file", slog.String("path", cfg.Path))
	}

	styles = ui.ForStdout(cfg.Color)
	log.Debug("configured", slog.String("command", cmd.Name()), slog.Bool("styled", styles.Enabled()))
	return nil
}
