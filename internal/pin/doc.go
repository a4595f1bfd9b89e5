// Package pin models GPIO pin configuration: the attribute keywords a
// board definition can apply to a pin, the parser that turns attribute
// strings into typed configuration, and the per-port table a header is
// generated from.
package pin
