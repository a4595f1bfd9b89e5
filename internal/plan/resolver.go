package plan

import (
	"errors"
	"fmt"

	"boardgen/internal/board"
	"boardgen/internal/catalog"
	"boardgen/internal/diagnostic"
	"boardgen/internal/pin"
)

// Resolver builds generation plans against one MCU catalog.
type Resolver struct {
	catalog *catalog.Catalog
}

// NewResolver creates a resolver backed by the given catalog.
func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve builds the generation plan for a board definition. It fails
// on the first problem: an unresolvable MCU type, an invalid default,
// or an invalid pin declaration.
func (r *Resolver) Resolve(def *board.Definition) (*Plan, error) {
	profile, err := r.catalog.Resolve(def.MCUType)
	if err != nil {
		return nil, err
	}

	parser := pin.NewParser(profile)

	defaults, err := parser.ParseDefault(def.Default)
	if err != nil {
		return nil, fmt.Errorf("default %q: %w", def.Default, err)
	}

	table := pin.NewTable(profile, defaults)

	for _, decl := range def.Pins {
		parsed, err := parser.Parse(decl.Attrs)
		if err != nil {
			return nil, fmt.Errorf("pin %s: %w", decl.Name, err)
		}

		if err := table.Place(decl.Name, parsed); err != nil {
			return nil, err
		}
	}

	return &Plan{
		Board:   def,
		Profile: profile,
		Table:   table,
	}, nil
}

// Check validates a board definition end to end, collecting every
// problem instead of stopping at the first. Misspelled keywords come
// back with suggestions; pins that share a position come back as
// warnings, since the last declaration silently wins at generation
// time.
func (r *Resolver) Check(def *board.Definition) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}
	file := def.Source

	profile, err := r.catalog.Resolve(def.MCUType)
	if err != nil {
		diags.AddErrorWithSuggestions("mcu", err.Error(), file, "", r.nearestPatterns(def.MCUType))
		return diags
	}

	diags.AddInfo("mcu", fmt.Sprintf("%s resolved to profile %s", def.MCUType, profile.Pattern), file, "")

	parser := pin.NewParser(profile)

	defaults, err := parser.ParseDefault(def.Default)
	if err != nil {
		r.addParseError(diags, err, file, "default", "")
	}

	table := pin.NewTable(profile, defaults)
	claimed := make(map[pin.Position]string, len(def.Pins))

	for _, decl := range def.Pins {
		parsed, err := parser.Parse(decl.Attrs)
		if err != nil {
			r.addParseError(diags, err, file, "pin", decl.Name)
			continue
		}

		if err := table.Place(decl.Name, parsed); err != nil {
			diags.AddError("pin", err.Error(), file, decl.Name)
			continue
		}

		rec, _ := table.Named(decl.Name)
		if prior, ok := claimed[rec.Pos]; ok {
			diags.AddWarning("pin",
				fmt.Sprintf("position %s is already assigned to %s; %s takes the slot", rec.Pos, prior, rec.Name),
				file, decl.Name)
		}
		claimed[rec.Pos] = rec.Name
	}

	return diags
}

// addParseError files one parse failure, attaching keyword suggestions
// when the problem is a misspelled keyword.
func (r *Resolver) addParseError(diags *diagnostic.Diagnostics, err error, file, code, pinName string) {
	var kwErr *pin.KeywordError
	if errors.As(err, &kwErr) {
		diags.AddErrorWithSuggestions(code, err.Error(), file, pinName, pin.SuggestKeyword(kwErr.Token))
		return
	}

	diags.AddError(code, err.Error(), file, pinName)
}

// nearestPatterns returns up to three catalog patterns ranked closest
// to the request, as suggestions for an unresolvable MCU type.
func (r *Resolver) nearestPatterns(request string) []string {
	matches := r.catalog.Rank(request)
	if len(matches) > 3 {
		matches = matches[:3]
	}

	patterns := make([]string, 0, len(matches))
	for _, m := range matches {
		patterns = append(patterns, m.Pattern)
	}

	return patterns
}
