package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"boardgen/internal/common"
)

//go:embed mcu/*.yaml
var builtinFS embed.FS

// Catalog is the set of known MCU profiles keyed by part-number pattern.
// Construct it once at startup and pass it down; nothing here reads
// ambient process state.
type Catalog struct {
	profiles map[string]*Profile
}

// Load builds a catalog from every *.yaml file at the root of fsys.
// The pattern of each profile is its filename without the extension.
func Load(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list profile files: %w", err)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no profile files found")
	}

	profiles := make(map[string]*Profile, len(names))

	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file %s: %w", name, err)
		}

		pattern := strings.TrimSuffix(path.Base(name), ".yaml")

		p, err := ParseProfile(pattern, data)
		if err != nil {
			return nil, err
		}

		profiles[pattern] = p
	}

	return &Catalog{profiles: profiles}, nil
}

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	sub, err := fs.Sub(builtinFS, "mcu")
	if err != nil {
		return nil, fmt.Errorf("failed to open builtin catalog: %w", err)
	}

	return Load(sub)
}

// Patterns returns all known patterns in sorted order. This order is
// the catalog enumeration order used for resolution tie-breaks.
func (c *Catalog) Patterns() []string {
	return common.SortedKeys(c.profiles)
}

// Profile returns the profile registered under the given pattern.
func (c *Catalog) Profile(pattern string) (*Profile, bool) {
	p, ok := c.profiles[pattern]
	return p, ok
}

// Len returns the number of profiles in the catalog.
func (c *Catalog) Len() int {
	return len(c.profiles)
}
