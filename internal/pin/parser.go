package pin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"boardgen/internal/catalog"
)

var (
	// ErrUnknownKeyword reports a token that belongs to no attribute
	// family.
	ErrUnknownKeyword = errors.New("unknown pin keyword")

	// ErrConflictingMode reports a second mode or AFn keyword on the
	// same pin.
	ErrConflictingMode = errors.New("conflicting mode")

	// ErrInvalidPosition reports a position that does not exist on the
	// resolved MCU.
	ErrInvalidPosition = errors.New("invalid pin position")

	// ErrIncompleteDefault reports a default that leaves an attribute
	// family unspecified.
	ErrIncompleteDefault = errors.New("incomplete default")

	// ErrDefaultHasPosition reports a position token in the default.
	ErrDefaultHasPosition = errors.New("default specifies a position")
)

// KeywordError is an ErrUnknownKeyword carrying the offending token,
// for callers that want to suggest a correction.
type KeywordError struct {
	Token string
	Input string
}

func (e *KeywordError) Error() string {
	return fmt.Sprintf("%v: %s in %q", ErrUnknownKeyword, e.Token, e.Input)
}

func (e *KeywordError) Unwrap() error { return ErrUnknownKeyword }

// attrLexer tokenizes pin attribute strings. Keyword rules come before
// the catch-all Word rule so that anything they do not claim surfaces
// as an unknown keyword instead of disappearing into a parse error.
var attrLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},

	// Attribute keyword families (case-insensitive)
	{Name: "Mode", Pattern: `(?i)\b(INPUT|OUTPUT|ANALOG)\b`},
	{Name: "Level", Pattern: `(?i)\b(STARTLOW|STARTHIGH)\b`},
	{Name: "OType", Pattern: `(?i)\b(PUSHPULL|OPENDRAIN)\b`},
	{Name: "Speed", Pattern: `(?i)\b(VERYLOWSPEED|LOWSPEED|MEDIUMSPEED|HIGHSPEED)\b`},
	{Name: "Pull", Pattern: `(?i)\b(FLOATING|PULLUP|PULLDOWN)\b`},
	{Name: "AF", Pattern: `(?i)\bAF[0-9]+\b`},

	// Pin position, e.g. PA5
	{Name: "Position", Pattern: `(?i)\bP[A-Z][0-9]+\b`},

	{Name: "Comma", Pattern: `,`},

	// Anything else between separators
	{Name: "Word", Pattern: `[^,\s]+`},
})

// attrItem is one comma-separated element of an attribute string.
type attrItem struct {
	Mode     string `  @Mode`
	Level    string `| @Level`
	OType    string `| @OType`
	Speed    string `| @Speed`
	Pull     string `| @Pull`
	AF       string `| @AF`
	Position string `| @Position`
	Word     string `| @Word`
}

type attrList struct {
	Items []attrItem `@@ ( Comma @@ )*`
}

var attrParser = participle.MustBuild[attrList](
	participle.Lexer(attrLexer),
	participle.Elide("Whitespace"),
)

// Parsed is the outcome of parsing one attribute string.
type Parsed struct {
	Attrs Attributes

	// Pos is the explicit position token, if the string carried one.
	Pos *Position

	// Keywords holds the recognized attribute keywords in input order,
	// upper-cased and with position tokens excluded. They reproduce
	// the pin configuration in generated comments.
	Keywords []string
}

// Parser parses pin attribute strings against a single MCU profile.
type Parser struct {
	profile *catalog.Profile
}

// NewParser returns a parser that validates positions against profile.
func NewParser(profile *catalog.Profile) *Parser {
	return &Parser{profile: profile}
}

// Parse interprets one comma-separated pin attribute string. Every
// family except the mode may repeat, with the last keyword winning; a
// second mode or AFn keyword is a conflict.
func (p *Parser) Parse(s string) (Parsed, error) {
	if strings.TrimSpace(s) == "" {
		return Parsed{}, fmt.Errorf("%w: empty attribute string", ErrUnknownKeyword)
	}

	list, err := attrParser.ParseString("", s)
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %v", ErrUnknownKeyword, err)
	}

	var out Parsed

	for _, item := range list.Items {
		switch {
		case item.Mode != "":
			kw := strings.ToUpper(item.Mode)
			if out.Attrs.Mode != 0 {
				return Parsed{}, fmt.Errorf("%w: cannot specify %s, the mode is already set", ErrConflictingMode, kw)
			}
			out.Attrs.Mode = modeFromKeyword(kw)
			out.Attrs.AF = 0
			out.Keywords = append(out.Keywords, kw)

		case item.AF != "":
			kw := strings.ToUpper(item.AF)
			if out.Attrs.Mode != 0 {
				return Parsed{}, fmt.Errorf("%w: cannot specify %s, the mode is already set", ErrConflictingMode, kw)
			}
			n, err := strconv.Atoi(kw[2:])
			if err != nil {
				return Parsed{}, fmt.Errorf("%w: %s", ErrUnknownKeyword, kw)
			}
			out.Attrs.Mode = ModeAlternate
			out.Attrs.AF = n
			out.Keywords = append(out.Keywords, kw)

		case item.Level != "":
			kw := strings.ToUpper(item.Level)
			out.Attrs.Level = levelFromKeyword(kw)
			out.Keywords = append(out.Keywords, kw)

		case item.OType != "":
			kw := strings.ToUpper(item.OType)
			out.Attrs.OType = otypeFromKeyword(kw)
			out.Keywords = append(out.Keywords, kw)

		case item.Speed != "":
			kw := strings.ToUpper(item.Speed)
			out.Attrs.Speed = speedFromKeyword(kw)
			out.Keywords = append(out.Keywords, kw)

		case item.Pull != "":
			kw := strings.ToUpper(item.Pull)
			out.Attrs.Pull = pullFromKeyword(kw)
			out.Keywords = append(out.Keywords, kw)

		case item.Position != "":
			pos, ok := ParsePosition(item.Position)
			if !ok || !p.profile.ValidPosition(pos.Port, pos.Index) {
				return Parsed{}, fmt.Errorf("%w: %s is not on %s",
					ErrInvalidPosition, strings.ToUpper(item.Position), p.profile.Pattern)
			}
			out.Pos = &pos

		case item.Word != "":
			return Parsed{}, &KeywordError{Token: strings.ToUpper(item.Word), Input: s}
		}
	}

	return out, nil
}

// ParseDefault parses the board-wide default attribute string. A
// default must specify every attribute family and must not carry a
// position.
func (p *Parser) ParseDefault(s string) (Attributes, error) {
	parsed, err := p.Parse(s)
	if err != nil {
		return Attributes{}, err
	}

	if missing := parsed.Attrs.firstUnset(); missing != "" {
		return Attributes{}, fmt.Errorf("%w: must specify %s", ErrIncompleteDefault, missing)
	}

	if parsed.Pos != nil {
		return Attributes{}, fmt.Errorf("%w: %s", ErrDefaultHasPosition, parsed.Pos)
	}

	return parsed.Attrs, nil
}

func modeFromKeyword(kw string) Mode {
	switch kw {
	case "INPUT":
		return ModeInput
	case "OUTPUT":
		return ModeOutput
	case "ANALOG":
		return ModeAnalog
	}
	return 0
}

func levelFromKeyword(kw string) Level {
	switch kw {
	case "STARTLOW":
		return LevelLow
	case "STARTHIGH":
		return LevelHigh
	}
	return 0
}

func otypeFromKeyword(kw string) OutputType {
	switch kw {
	case "PUSHPULL":
		return OutputPushPull
	case "OPENDRAIN":
		return OutputOpenDrain
	}
	return 0
}

func speedFromKeyword(kw string) Speed {
	switch kw {
	case "VERYLOWSPEED":
		return SpeedVeryLow
	case "LOWSPEED":
		return SpeedLow
	case "MEDIUMSPEED":
		return SpeedMedium
	case "HIGHSPEED":
		return SpeedHigh
	}
	return 0
}

func pullFromKeyword(kw string) Pull {
	switch kw {
	case "FLOATING":
		return PullFloating
	case "PULLUP":
		return PullUp
	case "PULLDOWN":
		return PullDown
	}
	return 0
}
