// Package plan turns a loaded board definition into a generation plan:
// it resolves the MCU profile, parses the default and every pin
// declaration, and builds the pin table the emitter renders.
//
// Resolve stops at the first problem and is what generation uses.
// Check walks the whole definition and aggregates everything it finds,
// which is what the check subcommand reports.
package plan
