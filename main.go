// main is the entry point for the gitpulse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pbaettig/gitpulse/cmd"
	"github.com/pbaettig/gitpulse/internal/iocache"
)

func main() {
	err := cmd.Execute()

	// Close stores before deciding the exit code so SQLite handles are
	// released even on failure.
	iocache.CloseStores()

	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
