package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rail44/drills/internal/coins"
	"github.com/rail44/drills/internal/log"
)

var coinsCmd = &cobra.Command{
	Use:   "coins",
	Short: "Count the non-quarter coins in a purse and announce each state quarter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		purse := coins.DefaultPurse()
		if err := coins.Report(cmd.OutOrStdout(), purse); err != nil {
			return err
		}
		log.Debug("sorted purse", slog.Int("coins", len(purse)), slog.Int("cents", coins.Total(purse)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coinsCmd)
}
