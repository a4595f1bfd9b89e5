package plan

import (
	"boardgen/internal/board"
	"boardgen/internal/catalog"
	"boardgen/internal/pin"
)

// Plan is everything the header emitter needs for one board.
type Plan struct {
	// Board is the loaded definition, including its source path.
	Board *board.Definition

	// Profile is the MCU profile the board resolved to.
	Profile *catalog.Profile

	// Table is the fully populated pin table.
	Table *pin.Table
}
