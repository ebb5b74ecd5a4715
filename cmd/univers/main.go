// Command univers is a thin executable wrapper around cmd/cli: parse and
// compare artifact versions across the supported ecosystems.
package main

import (
	"fmt"
	"os"

	"github.com/alowayed/go-vers/cmd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
