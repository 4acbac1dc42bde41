// pairctl queries the wine pairing engine from the command line.
package main

import (
	"os"

	"github.com/winepair/backend/cmd/pairctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
