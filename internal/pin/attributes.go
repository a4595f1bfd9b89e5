package pin

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Mode -linecomment -output=mode_string.go
//go:generate go tool stringer -type=Level -linecomment -output=level_string.go
//go:generate go tool stringer -type=OutputType -linecomment -output=outputtype_string.go
//go:generate go tool stringer -type=Speed -linecomment -output=speed_string.go
//go:generate go tool stringer -type=Pull -linecomment -output=pull_string.go

// Mode selects the GPIO mode register setting of a pin. The string
// form is the value fragment of the PIN_MODE_* macros. The zero value
// means the mode is not specified.
type Mode int

const (
	_ Mode = iota
	ModeInput     // INPUT
	ModeOutput    // OUTPUT
	ModeAlternate // ALTERNATE
	ModeAnalog    // ANALOG
)

// Level is the initial output data register level of a pin.
type Level int

const (
	_ Level = iota
	LevelLow  // LOW
	LevelHigh // HIGH
)

// OutputType selects push-pull or open-drain output.
type OutputType int

const (
	_ OutputType = iota
	OutputPushPull  // PUSHPULL
	OutputOpenDrain // OPENDRAIN
)

// Speed is the output speed register setting of a pin.
type Speed int

const (
	_ Speed = iota
	SpeedVeryLow // VERYLOW
	SpeedLow     // LOW
	SpeedMedium  // MEDIUM
	SpeedHigh    // HIGH
)

// Pull selects the pull-up/pull-down resistor configuration.
type Pull int

const (
	_ Pull = iota
	PullFloating // FLOATING
	PullUp       // PULLUP
	PullDown     // PULLDOWN
)

// Attributes is the register configuration of a single pin. The zero
// value of every field means "not specified"; Merge fills unspecified
// fields from a base configuration.
type Attributes struct {
	Mode  Mode
	Level Level
	OType OutputType
	Speed Speed
	Pull  Pull

	// AF is the alternate function number. It is meaningful only when
	// Mode is ModeAlternate and is always replaced together with Mode.
	AF int
}

// Merge returns base with every field that override specifies
// replaced. Mode and AF travel as a unit: a mode keyword resets AF to
// zero and an AFn keyword implies alternate mode, so overriding either
// one replaces both.
func Merge(base, override Attributes) Attributes {
	out := base

	if override.Mode != 0 {
		out.Mode = override.Mode
		out.AF = override.AF
	}

	if override.Level != 0 {
		out.Level = override.Level
	}

	if override.OType != 0 {
		out.OType = override.OType
	}

	if override.Speed != 0 {
		out.Speed = override.Speed
	}

	if override.Pull != 0 {
		out.Pull = override.Pull
	}

	return out
}

// firstUnset names the first attribute family a complete configuration
// is missing, in the order the families are checked: mode, level,
// output type, speed, pull. It returns "" when every family is set.
func (a Attributes) firstUnset() string {
	switch {
	case a.Mode == 0:
		return "a mode: INPUT, OUTPUT, ANALOG or an AFn"
	case a.Level == 0:
		return "STARTLOW or STARTHIGH"
	case a.OType == 0:
		return "PUSHPULL or OPENDRAIN"
	case a.Speed == 0:
		return "VERYLOWSPEED, LOWSPEED, MEDIUMSPEED or HIGHSPEED"
	case a.Pull == 0:
		return "FLOATING, PULLUP or PULLDOWN"
	}

	return ""
}

// Position addresses one pin on the MCU as a port letter plus a pin
// index within the port.
type Position struct {
	Port  string
	Index int
}

func (p Position) String() string {
	return fmt.Sprintf("P%s%d", p.Port, p.Index)
}

// ParsePosition interprets s as a pin position token like "PA5": the
// letter P, one port letter and a decimal pin index, compared
// case-insensitively. It reports false when s has any other shape.
// Range checking against an MCU profile is the caller's concern.
func ParsePosition(s string) (Position, bool) {
	if len(s) < 3 {
		return Position{}, false
	}

	s = strings.ToUpper(s)
	if s[0] != 'P' || s[1] < 'A' || s[1] > 'Z' {
		return Position{}, false
	}

	for i := 2; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Position{}, false
		}
	}

	index, err := strconv.Atoi(s[2:])
	if err != nil {
		return Position{}, false
	}

	return Position{Port: s[1:2], Index: index}, true
}
