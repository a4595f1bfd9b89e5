// Package main provides the CLI entrypoint for boardgen.
//
// boardgen is a board support codegen tool that:
//   - Loads declarative board descriptions (YAML)
//   - Resolves the MCU part number against a profile catalog
//   - Validates pin keyword strings into typed GPIO attributes
//   - Emits ChibiOS-style board.h configuration headers
package main

import "boardgen/cmd/boardgen/cmd"

func main() {
	cmd.Execute()
}
