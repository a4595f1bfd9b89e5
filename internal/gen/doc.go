// Package gen renders a generation plan into the board.h text and
// writes the result to disk. Rendering is pure formatting over a
// validated plan; the fixed blocks go through text/template and the
// per-port sections are computed in between.
package gen
