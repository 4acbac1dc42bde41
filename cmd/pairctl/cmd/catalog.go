package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/winepair/backend/internal/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the wines, foods and keywords of the loaded catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, domain.CatalogData{
			Wines:    c.Wines(),
			Foods:    c.Foods(),
			Keywords: c.Keywords(),
		})
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WINE\tTYPE\tBODY\tSWEETNESS\tACIDITY\tTANNINS")
	for _, w := range c.Wines() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", w.Name, w.Type, w.Body, w.Sweetness, w.Acidity, w.Tannins)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "FOOD\tCATEGORY\tINTENSITY\tFLAVORS")
	for _, f := range c.Foods() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Category, f.Intensity, strings.Join(f.Flavors, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d keywords\n", len(c.Keywords()))
	return nil
}
