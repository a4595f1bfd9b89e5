package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardgen/internal/board"
	"boardgen/internal/catalog"
	"boardgen/internal/gen"
	"boardgen/internal/plan"
)

var generateCmd = &cobra.Command{
	Use:   "generate <board.yaml> [<output.h>]",
	Short: "Compile a board description into a board.h header",
	Long: `Compile a board description into a ChibiOS board.h header.

The header is rendered fully in memory and written in a single
operation, so a failed run never leaves a partial file behind.
Without an output argument the header is written to board.h in the
working directory.

Examples:
  boardgen generate nucleo.yaml
  boardgen generate nucleo.yaml cfg/board.h
  boardgen generate --mcu-dir profiles/ custom.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	output := "board.h"
	if len(args) == 2 {
		output = args[1]
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	content, err := compile(c, args[0])
	if err != nil {
		return err
	}

	return gen.WriteFile(gen.GeneratedFile{Filename: output, Content: content})
}

// compile loads, resolves and renders one board file.
func compile(c *catalog.Catalog, path string) ([]byte, error) {
	def, err := board.LoadFile(path)
	if err != nil {
		return nil, err
	}

	p, err := plan.NewResolver(c).Resolve(def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return gen.Render(p)
}
