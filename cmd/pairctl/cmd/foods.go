package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:     "foods <wine...>",
	Short:   "Recommend dishes for a wine (exact, case-sensitive name)",
	Example: "  pairctl foods Pinot Noir",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runFoods,
}

func runFoods(cmd *cobra.Command, args []string) error {
	svc, err := newPairingService(cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), svc.FindFoodPairings(strings.Join(args, " ")))
}
