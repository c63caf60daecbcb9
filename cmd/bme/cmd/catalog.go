package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nodeflow/bme/blocks"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the default block catalog's descriptor JSON",
	Long: `Render the default catalog (package blocks) as the §6 descriptor JSON
an editor or other tool uses to discover available block kinds and
connection types.`,
	RunE: printCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func printCatalog(_ *cobra.Command, _ []string) error {
	cat, types := blocks.Default(os.Stdout)
	b, err := json.MarshalIndent(cat.JSON(types), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render catalog: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
