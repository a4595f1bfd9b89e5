package catalog

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Profile is the static capability description of an MCU family variant.
// Immutable once loaded.
type Profile struct {
	// Pattern is the part-number pattern this profile was loaded under,
	// e.g. "STM32F4xx". Lowercase x positions accept any character.
	Pattern string
	// Ports lists the available GPIO port letters, e.g. ["A", "B", "C"].
	Ports []string
	// PinsPerPort is the number of pins on each port.
	PinsPerPort int
}

// profileDoc is the YAML document shape of a single catalog entry.
type profileDoc struct {
	Ports       []string `yaml:"ports"`
	PinsPerPort int      `yaml:"pins_per_port"`
}

// ParseProfile parses one profile document. The pattern is taken from
// the filename by the caller, not from the document itself.
func ParseProfile(pattern string, data []byte) (*Profile, error) {
	var doc profileDoc

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", pattern, err)
	}

	p := &Profile{
		Pattern:     pattern,
		Ports:       doc.Ports,
		PinsPerPort: doc.PinsPerPort,
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", pattern, err)
	}

	return p, nil
}

func (p *Profile) validate() error {
	if len(p.Ports) == 0 {
		return fmt.Errorf("no ports defined")
	}

	for _, port := range p.Ports {
		if len(port) != 1 || port[0] < 'A' || port[0] > 'Z' {
			return fmt.Errorf("port %q is not a single letter A-Z", port)
		}
	}

	if p.PinsPerPort <= 0 {
		return fmt.Errorf("pins_per_port must be positive, got %d", p.PinsPerPort)
	}

	return nil
}

// HasPort reports whether the profile exposes the given port letter.
func (p *Profile) HasPort(port string) bool {
	return slices.Contains(p.Ports, port)
}

// ValidPosition reports whether (port, index) addresses a pin on this profile.
func (p *Profile) ValidPosition(port string, index int) bool {
	return p.HasPort(port) && index >= 0 && index < p.PinsPerPort
}
