package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rail44/drills/internal/carol"
	"github.com/rail44/drills/internal/log"
)

var carolCmd = &cobra.Command{
	Use:   "carol",
	Short: "Print the cumulative verses of The Twelve Days of Christmas",
	Args:  cobra.NoArgs,
	RunE:  runCarol,
}

func init() {
	rootCmd.AddCommand(carolCmd)
}

func runCarol(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	days := carol.Christmas()

	if err := carol.Banner(out, carol.Title, styles.Title); err != nil {
		return err
	}

	printer := carol.NewPrinter()
	printer.Header = styles.Header
	if err := printer.Run(out, days); err != nil {
		return err
	}

	log.Debug("printed carol", slog.Int("days", len(days)))
	return nil
}
