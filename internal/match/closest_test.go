package match

import (
	"reflect"
	"testing"
)

func TestClosest(t *testing.T) {
	keywords := []string{"INPUT", "OUTPUT", "ANALOG", "PULLUP", "PULLDOWN", "FLOATING"}

	tests := []struct {
		name        string
		input       string
		maxDistance int
		limit       int
		expected    []string
	}{
		{
			name:        "single near miss",
			input:       "OUTPT",
			maxDistance: 2,
			limit:       3,
			expected:    []string{"OUTPUT"},
		},
		{
			name:        "exact match ranks first",
			input:       "PULLUP",
			maxDistance: 2,
			limit:       3,
			expected:    []string{"PULLUP"},
		},
		{
			name:        "nothing close",
			input:       "XYZZY",
			maxDistance: 2,
			limit:       3,
			expected:    nil,
		},
		{
			name:        "limit truncates",
			input:       "INPUT",
			maxDistance: 5,
			limit:       2,
			expected:    []string{"INPUT", "OUTPUT"},
		},
		{
			name:        "ties order lexicographically",
			input:       "PULL",
			maxDistance: 4,
			limit:       3,
			expected:    []string{"PULLUP", "INPUT", "PULLDOWN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Closest(tt.input, keywords, tt.maxDistance, tt.limit)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Closest(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
