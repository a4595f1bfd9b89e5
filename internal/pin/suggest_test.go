package pin

import "testing"

func TestSuggestKeyword(t *testing.T) {
	tests := []struct {
		token string
		first string
	}{
		{"OUTPT", "OUTPUT"},
		{"outpt", "OUTPUT"},
		{"PULUP", "PULLUP"},
		{"FLOTING", "FLOATING"},
		{"HISPEED", "HIGHSPEED"},
		{"MEDUIMSPEED", "MEDIUMSPEED"},
		{"STARTLO", "STARTLOW"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			suggestions := SuggestKeyword(tt.token)
			if len(suggestions) == 0 {
				t.Fatalf("SuggestKeyword(%q) returned nothing", tt.token)
			}

			if suggestions[0] != tt.first {
				t.Errorf("SuggestKeyword(%q)[0] = %s, want %s", tt.token, suggestions[0], tt.first)
			}

			if len(suggestions) > 3 {
				t.Errorf("SuggestKeyword(%q) returned %d suggestions, want at most 3", tt.token, len(suggestions))
			}
		})
	}
}

func TestSuggestKeywordNothingClose(t *testing.T) {
	for _, token := range []string{"XYZZY", "Q", "GPIO_BANANA"} {
		if s := SuggestKeyword(token); s != nil {
			t.Errorf("SuggestKeyword(%q) = %v, want nil", token, s)
		}
	}
}
