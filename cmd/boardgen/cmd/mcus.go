package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var mcusRequest string

var mcusCmd = &cobra.Command{
	Use:   "mcus",
	Short: "List the known MCU profile patterns",
	Long: `List every MCU profile pattern in the catalog with its port set
and pins per port. Lowercase x positions in a pattern accept any
character of the requested part number.

With --request the catalog is ranked against a part number instead,
best match first, showing the positional score used for resolution.

Examples:
  boardgen mcus
  boardgen mcus --request STM32F407VG
  boardgen mcus --mcu-dir profiles/`,
	Args: cobra.NoArgs,
	RunE: runMCUs,
}

func init() {
	rootCmd.AddCommand(mcusCmd)
	mcusCmd.Flags().StringVar(&mcusRequest, "request", "",
		"rank profiles against this part number")
}

func runMCUs(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if mcusRequest != "" {
		for _, m := range c.Rank(mcusRequest) {
			fmt.Fprintf(out, "%-16s score %3d  ports %-8s %d pins each\n",
				m.Pattern, m.Score, strings.Join(m.Profile.Ports, ""), m.Profile.PinsPerPort)
		}
		return nil
	}

	for _, pattern := range c.Patterns() {
		p, _ := c.Profile(pattern)
		fmt.Fprintf(out, "%-16s ports %-8s %d pins each\n",
			pattern, strings.Join(p.Ports, ""), p.PinsPerPort)
	}

	return nil
}
