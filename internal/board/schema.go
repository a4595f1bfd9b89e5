package board

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Definition is one board description as loaded from YAML.
type Definition struct {
	// Name is the board identifier, used verbatim in the BOARD_ macros.
	Name string `yaml:"name"`

	// MCUType is the part number the MCU resolver matches against the
	// profile catalog, and the macro the ST headers key on.
	MCUType string `yaml:"mcutype"`

	// Voltage is the supply voltage in volts, e.g. 3.3.
	Voltage float64 `yaml:"voltage"`

	// LSEFreq and HSEFreq are the oscillator frequencies in Hz. Zero
	// means the board does not fit the oscillator.
	LSEFreq int `yaml:"lsefreq"`
	HSEFreq int `yaml:"hsefreq"`

	// Default is the attribute string applied to every pin no
	// declaration claims. It must specify every attribute family.
	Default string `yaml:"default"`

	// Pins are the named pin declarations in document order.
	Pins PinDecls `yaml:"pins"`

	// Source is the path the definition was loaded from.
	Source string `yaml:"-"`
}

// VDD returns the supply voltage in the form the header wants:
// hundredths of a volt, so 3.3 becomes 330.
func (d *Definition) VDD() int {
	return int(math.Round(d.Voltage * 100))
}

func (d *Definition) validate() error {
	if d.Name == "" {
		return fmt.Errorf("board definition is missing required field %q", "name")
	}

	if d.MCUType == "" {
		return fmt.Errorf("board definition is missing required field %q", "mcutype")
	}

	if d.Default == "" {
		return fmt.Errorf("board definition is missing required field %q", "default")
	}

	return nil
}

// PinDecl is one named pin declaration.
type PinDecl struct {
	Name  string
	Attrs string
}

// PinDecls holds pin declarations in document order. A repeated pin
// name keeps its first position but takes the last value, the same
// way a YAML mapping would collapse the duplicate.
type PinDecls []PinDecl

func (p *PinDecls) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("pins must be a mapping of pin name to attribute string (line %d)", node.Line)
	}

	decls := make(PinDecls, 0, len(node.Content)/2)
	index := make(map[string]int, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("invalid pin name at line %d: %w", keyNode.Line, err)
		}

		var attrs string
		if err := valueNode.Decode(&attrs); err != nil {
			return fmt.Errorf("invalid attributes for pin %s: %w", name, err)
		}

		if at, ok := index[name]; ok {
			decls[at].Attrs = attrs
			continue
		}

		index[name] = len(decls)
		decls = append(decls, PinDecl{Name: name, Attrs: attrs})
	}

	*p = decls

	return nil
}
