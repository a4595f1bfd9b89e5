package catalog

import (
	"errors"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		request  string
		pattern  string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"STM32", "STM32", 5},

		// Wildcards are neutral
		{"STM32F407VG", "STM32F4xx", 7},
		{"STM32F407", "STM32F4xx", 7},
		{"STM32L476RG", "STM32L4xx", 7},

		// Mismatches subtract
		{"STM32F407VG", "STM32F7xx", 5},
		{"STM32F407VG", "STM32L4xx", 5},
		{"STM32F407VG", "STM32H7xx", 3},

		// Case-insensitive comparison
		{"stm32f407vg", "STM32F4xx", 7},
		{"Stm32F407vg", "STM32F4xx", 7},

		// Exact match beats the wildcard check, x against x still counts
		{"xx", "xx", 2},
		{"ab", "xx", 0},

		// Only the shorter length is compared
		{"STM32F4", "STM32F4xx", 7},
		{"STM32F4xxLONGTAIL", "STM32F4xx", 9},

		// Unrelated part numbers go negative
		{"ATMEGA328", "STM32F4xx", -3},
		{"", "STM32F4xx", 0},
	}

	for _, tt := range tests {
		t.Run(tt.request+"_"+tt.pattern, func(t *testing.T) {
			result := Score(tt.request, tt.pattern)
			if result != tt.expected {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.request, tt.pattern, result, tt.expected)
			}
		})
	}
}

func testCatalog(t *testing.T, patterns ...string) *Catalog {
	t.Helper()

	profiles := make(map[string]*Profile, len(patterns))
	for _, pattern := range patterns {
		profiles[pattern] = &Profile{
			Pattern:     pattern,
			Ports:       []string{"A", "B"},
			PinsPerPort: 16,
		}
	}

	return &Catalog{profiles: profiles}
}

func TestResolve(t *testing.T) {
	c := testCatalog(t, "STM32F0xx", "STM32F4xx", "STM32F7xx", "STM32H7xx")

	tests := []struct {
		request string
		want    string
	}{
		{"STM32F407VG", "STM32F4xx"},
		{"STM32F072RB", "STM32F0xx"},
		{"STM32F746ZG", "STM32F7xx"},
		{"STM32H743ZI", "STM32H7xx"},
		{"stm32f407vg", "STM32F4xx"},
	}

	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			p, err := c.Resolve(tt.request)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.request, err)
			}

			if p.Pattern != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.request, p.Pattern, tt.want)
			}
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	c := testCatalog(t, "STM32F4xx", "STM32L0xx")

	for _, request := range []string{"ATMEGA328P", ""} {
		t.Run(request, func(t *testing.T) {
			_, err := c.Resolve(request)
			if !errors.Is(err, ErrNoMatchingProfile) {
				t.Errorf("Resolve(%q) error = %v, want ErrNoMatchingProfile", request, err)
			}
		})
	}
}

func TestRankTieBreak(t *testing.T) {
	// Both patterns score identically for the request; the first in
	// catalog enumeration (sorted) order must win.
	c := testCatalog(t, "AA22", "AA11")

	matches := c.Rank("AA")
	if len(matches) != 2 {
		t.Fatalf("Rank returned %d matches, want 2", len(matches))
	}

	if matches[0].Score != matches[1].Score {
		t.Fatalf("expected a tie, got scores %d and %d", matches[0].Score, matches[1].Score)
	}

	if matches[0].Pattern != "AA11" {
		t.Errorf("tie-break winner = %s, want AA11", matches[0].Pattern)
	}

	p, err := c.Resolve("AA")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if p.Pattern != "AA11" {
		t.Errorf("Resolve tie-break = %s, want AA11", p.Pattern)
	}
}

func TestRankOrdering(t *testing.T) {
	c := testCatalog(t, "STM32F0xx", "STM32F4xx", "STM32H7xx")

	matches := c.Rank("STM32F407VG")
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not sorted: %s (%d) after %s (%d)",
				matches[i].Pattern, matches[i].Score,
				matches[i-1].Pattern, matches[i-1].Score)
		}
	}

	if matches[0].Pattern != "STM32F4xx" {
		t.Errorf("best match = %s, want STM32F4xx", matches[0].Pattern)
	}
}
