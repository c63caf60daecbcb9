package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nodeflow/bme/blocks"
	"github.com/nodeflow/bme/internal/value"
	"github.com/nodeflow/bme/program"
	"github.com/spf13/cobra"
)

var seedFile string

var runCmd = &cobra.Command{
	Use:   "run <graph.json>",
	Short: "Execute a graph against the default block catalog",
	Long: `Execute a dataflow graph (spec.md §6 wire JSON) starting from its
Start block and following its execution chain.

Examples:
  # Run a graph file
  bme run graph.json

  # Seed the Start block's declared outputs from a JSON array
  bme run graph.json --seed seed.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&seedFile, "seed", "", "JSON array of seed values for the Start block's declared outputs")
}

func runGraph(_ *cobra.Command, args []string) error {
	code, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	cat, types := blocks.Default(os.Stdout)
	p, err := program.New(cat, types, code)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	seed, err := loadSeed(p, types)
	if err != nil {
		return err
	}

	if err := p.Execute(seed); err != nil {
		printRegisterDump(p)
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}

// loadSeed lifts the JSON array in seedFile into typed values matching the
// Start block's declared output ports, in declared order. An empty
// seedFile yields a nil seed, which Execute treats as "no seed values".
func loadSeed(p *program.Program, types *value.TypeRegistry) ([]value.Value, error) {
	if seedFile == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(seedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", seedFile, err)
	}

	var literals []json.RawMessage
	if err := json.Unmarshal(raw, &literals); err != nil {
		return nil, fmt.Errorf("seed file %s is not a JSON array: %w", seedFile, err)
	}

	portTypes, err := p.SeedPortTypes()
	if err != nil {
		return nil, err
	}
	if len(literals) != len(portTypes) {
		return nil, fmt.Errorf("seed file %s has %d value(s), Start declares %d output(s)", seedFile, len(literals), len(portTypes))
	}

	seed := make([]value.Value, len(literals))
	for i, lit := range literals {
		v, err := types.FromJSON(portTypes[i], lit)
		if err != nil {
			return nil, fmt.Errorf("seed value %d: %w", i, err)
		}
		seed[i] = v
	}
	return seed, nil
}

// printRegisterDump writes the most recent run's register to stderr, so a
// failed run is diagnosable from the CLI alone.
func printRegisterDump(p *program.Program) {
	dump, err := p.DumpJSON()
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, "register at failure:")
	fmt.Fprintln(os.Stderr, string(dump))
}
