// Command bme runs and inspects graph-evaluator programs (spec.md §6 wire
// JSON) against the default block catalog in package blocks.
package main

import (
	"fmt"
	"os"

	"github.com/nodeflow/bme/cmd/bme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
