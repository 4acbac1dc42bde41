package cmd

import (
	"fmt"
	"io"

	"github.com/winepair/backend/internal/domain"
)

func printResult(w io.Writer, result domain.PairingResult) error {
	if jsonOutput {
		return writeJSON(w, result)
	}

	for i, item := range result.Items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item)
	}
	fmt.Fprintf(w, "\n%s\n", result.Reasoning)
	fmt.Fprintf(w, "(%s)\n", result.Strategy)
	return nil
}
