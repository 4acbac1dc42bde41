package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/winepair/backend/internal/catalog"
	"github.com/winepair/backend/internal/infrastructure/catalogsrc"
	"github.com/winepair/backend/internal/logging"
	"github.com/winepair/backend/internal/usecase"
)

var (
	catalogPath string
	jsonOutput  bool
	rankByScore bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:           "pairctl",
	Short:         "pairctl queries the wine pairing engine",
	Long:          "Recommend wines for a dish or dishes for a wine using the built-in or a YAML catalog.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logging.Init(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in catalog)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")
	rootCmd.PersistentFlags().BoolVar(&rankByScore, "rank", false, "order scored matches by score")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log scoring details to stderr")

	rootCmd.AddCommand(winesCmd)
	rootCmd.AddCommand(foodsCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadCatalog returns the catalog selected by --catalog
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(ctx, catalogsrc.NewFileSource(catalogPath))
}

func newPairingService(ctx context.Context) (*usecase.PairingService, error) {
	c, err := loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewPairingService(c, usecase.EngineConfig{
		RankByScore:        rankByScore,
		EnableDebugLogging: verbose,
	}), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
