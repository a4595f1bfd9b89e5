// Package catalog provides the MCU capability profile catalog and the
// resolver that matches a requested part number against it.
//
// A profile describes the GPIO geometry of an MCU family: which ports
// exist and how many pins each port carries. Profiles are YAML
// documents named after their part-number pattern; the catalog ships
// embedded in the binary and can be swapped for an external directory.
//
// Resolution scores each pattern against the request character by
// character. A lowercase x in the pattern is a wildcard that accepts
// any request character at that position, which is how a single
// pattern like STM32F4xx covers a whole family.
package catalog
