package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var winesCmd = &cobra.Command{
	Use:     "wines <food...>",
	Short:   "Recommend wines for a dish",
	Example: "  pairctl wines grilled salmon\n  pairctl wines steak --json",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runWines,
}

func runWines(cmd *cobra.Command, args []string) error {
	svc, err := newPairingService(cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), svc.FindWinePairings(strings.Join(args, " ")))
}
