// Package board loads YAML board definitions: the board identity,
// oscillator settings, the board-wide pin default and the named pin
// declarations, kept in document order.
package board
