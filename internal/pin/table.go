package pin

import (
	"fmt"
	"strings"

	"boardgen/internal/catalog"
	"boardgen/internal/common"
)

// Record is one slot of the pin table: the resolved configuration of a
// single pin plus the annotation reproduced in generated comments.
type Record struct {
	// Name is the macro suffix, e.g. the LED of GPIOA_LED. Slots no
	// declaration claimed are named PIN0..PINn.
	Name string

	Pos   Position
	Attrs Attributes

	// Raw is the comment annotation: the pin's attribute keywords in
	// lower case, or "unused" for unclaimed slots.
	Raw string
}

// Table is the complete pin assignment of a board: one record for
// every pin of every port, plus the declared pins by name.
type Table struct {
	profile *catalog.Profile
	def     Attributes
	ports   map[string][]Record
	named   map[string]Record
}

// NewTable returns a table with every slot of every port seeded from
// the default attributes.
func NewTable(profile *catalog.Profile, def Attributes) *Table {
	ports := make(map[string][]Record, len(profile.Ports))

	for _, port := range profile.Ports {
		records := make([]Record, profile.PinsPerPort)
		for n := range records {
			records[n] = Record{
				Name:  fmt.Sprintf("PIN%d", n),
				Pos:   Position{Port: port, Index: n},
				Attrs: def,
				Raw:   "unused",
			}
		}
		ports[port] = records
	}

	return &Table{
		profile: profile,
		def:     def,
		ports:   ports,
		named:   make(map[string]Record),
	}
}

// Place overlays one declared pin onto the table. The position comes
// from the parsed attributes when present, otherwise from the pin name
// itself (a name like PA5 encodes its own position). Placing onto an
// already claimed slot replaces it.
func (t *Table) Place(name string, parsed Parsed) error {
	name = strings.ToUpper(name)

	pos := parsed.Pos
	if pos == nil {
		p, ok := ParsePosition(name)
		if !ok || !t.profile.ValidPosition(p.Port, p.Index) {
			return fmt.Errorf("%w: pin %s specifies no position and its name does not encode one",
				ErrInvalidPosition, name)
		}
		pos = &p
	}

	rec := Record{
		Name:  name,
		Pos:   *pos,
		Attrs: Merge(t.def, parsed.Attrs),
		Raw:   strings.ToLower(strings.Join(parsed.Keywords, ", ")),
	}

	t.ports[pos.Port][pos.Index] = rec
	t.named[name] = rec

	return nil
}

// Profile returns the MCU profile the table was built for.
func (t *Table) Profile() *catalog.Profile {
	return t.profile
}

// Ports returns the port letters in sorted order.
func (t *Table) Ports() []string {
	return common.SortedKeys(t.ports)
}

// Port returns the records of one port in pin index order.
func (t *Table) Port(port string) []Record {
	return t.ports[strings.ToUpper(port)]
}

// Names returns the declared pin names in sorted order.
func (t *Table) Names() []string {
	return common.SortedKeys(t.named)
}

// Named returns the record of a declared pin.
func (t *Table) Named(name string) (Record, bool) {
	rec, ok := t.named[strings.ToUpper(name)]
	return rec, ok
}
