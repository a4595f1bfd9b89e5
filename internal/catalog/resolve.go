package catalog

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
)

// ErrNoMatchingProfile is returned when no catalog pattern scores above
// zero against the requested part number.
var ErrNoMatchingProfile = errors.New("no matching MCU profile")

// Score computes the positional match score between a requested part
// number and a catalog pattern. The strings are compared character by
// character up to the shorter length: a matching character counts +1
// (case-insensitive), a lowercase x in the pattern accepts anything
// and counts 0, any other pair counts -1. The exact-match check runs
// first, so x against x still counts +1.
func Score(request, pattern string) int {
	n := min(len(request), len(pattern))

	score := 0

	for i := 0; i < n; i++ {
		rc := unicode.ToUpper(rune(request[i]))
		pc := unicode.ToUpper(rune(pattern[i]))

		switch {
		case rc == pc:
			score++
		case pattern[i] == 'x':
			// wildcard position
		default:
			score--
		}
	}

	return score
}

// Match pairs a catalog pattern with its score against a request.
type Match struct {
	Pattern string
	Score   int
	Profile *Profile
}

// Rank scores every profile against the request and returns the matches
// ordered best first. Ties keep catalog enumeration order, so ranking
// is deterministic for equal scores.
func (c *Catalog) Rank(request string) []Match {
	patterns := c.Patterns()
	matches := make([]Match, 0, len(patterns))

	for _, pattern := range patterns {
		matches = append(matches, Match{
			Pattern: pattern,
			Score:   Score(request, pattern),
			Profile: c.profiles[pattern],
		})
	}

	// Stable sort keeps the Patterns() order within equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// Resolve returns the profile whose pattern best matches the requested
// part number. It fails with ErrNoMatchingProfile when the best score
// is zero or below, meaning no pattern shares even one exact character
// position with the request.
func (c *Catalog) Resolve(request string) (*Profile, error) {
	matches := c.Rank(request)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrNoMatchingProfile)
	}

	best := matches[0]
	if best.Score <= 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoMatchingProfile, request)
	}

	return best.Profile, nil
}
