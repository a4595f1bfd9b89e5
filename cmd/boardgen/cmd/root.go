package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boardgen/internal/catalog"
)

var (
	// Global flags
	mcuDir string
)

var rootCmd = &cobra.Command{
	Use:   "boardgen",
	Short: "boardgen - ChibiOS board.h generator",
	Long: `boardgen compiles a declarative board description (YAML) into a
ChibiOS-style board.h GPIO configuration header.

Examples:
  boardgen generate nucleo.yaml             # write board.h
  boardgen generate nucleo.yaml inc/board.h
  boardgen check nucleo.yaml disco.yaml     # validate, write nothing
  boardgen mcus --request STM32F407VG       # show profile ranking
  boardgen watch nucleo.yaml                # regenerate on save`,
	Version:      "1.0.0",
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&mcuDir, "mcu-dir", "",
		"directory of MCU profile YAML files replacing the built-in catalog")
}

// loadCatalog returns the built-in profile catalog, or the catalog
// loaded from --mcu-dir when the flag is set.
func loadCatalog() (*catalog.Catalog, error) {
	if mcuDir == "" {
		return catalog.Builtin()
	}

	c, err := catalog.Load(os.DirFS(mcuDir))
	if err != nil {
		return nil, fmt.Errorf("loading MCU profiles from %s: %w", mcuDir, err)
	}

	return c, nil
}
