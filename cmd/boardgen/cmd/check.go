package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"boardgen/internal/board"
	"boardgen/internal/diagnostic"
	"boardgen/internal/plan"
)

var checkDump bool

var checkCmd = &cobra.Command{
	Use:   "check <board.yaml>...",
	Short: "Validate board descriptions without writing output",
	Long: `Validate one or more board descriptions against the MCU catalog.

Unlike generate, check does not stop at the first problem: every pin
of every file is validated and all findings are reported in one pass.
The exit status is non-zero when any file has errors.

Examples:
  boardgen check nucleo.yaml
  boardgen check --dump nucleo.yaml
  boardgen check boards/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkDump, "dump", false,
		"dump the parsed board model before validating")
}

func runCheck(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	resolver := plan.NewResolver(c)
	out := cmd.OutOrStdout()

	var all diagnostic.Diagnostics
	for _, path := range args {
		def, err := board.LoadFile(path)
		if err != nil {
			all.AddError("load", err.Error(), path, "")
			continue
		}

		if checkDump {
			spew.Fdump(out, def)
		}

		all.Merge(*resolver.Check(def))
	}

	for _, d := range all.Infos {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}
	for _, d := range all.Warnings {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}
	for _, d := range all.Errors {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	fmt.Fprintf(out, "%d file(s) checked: %d error(s), %d warning(s)\n",
		len(args), len(all.Errors), len(all.Warnings))

	if all.HasErrors() {
		return fmt.Errorf("%d error(s) found", len(all.Errors))
	}

	return nil
}
