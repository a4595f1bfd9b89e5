package pin

import (
	"strings"

	"boardgen/internal/match"
)

// allKeywords lists every attribute keyword a pin declaration may use,
// for suggestion purposes. AFn keywords are open-ended and not listed.
var allKeywords = []string{
	"INPUT", "OUTPUT", "ANALOG",
	"STARTLOW", "STARTHIGH",
	"PUSHPULL", "OPENDRAIN",
	"VERYLOWSPEED", "LOWSPEED", "MEDIUMSPEED", "HIGHSPEED",
	"FLOATING", "PULLUP", "PULLDOWN",
}

// SuggestKeyword returns up to three attribute keywords close to the
// given token, nearest first. It returns nil when nothing is close
// enough to be a plausible misspelling. Tokens of eight characters or
// more match up to three edits away instead of two.
func SuggestKeyword(token string) []string {
	token = strings.ToUpper(token)

	maxDist := 2
	if len(token) >= 8 {
		maxDist = 3
	}

	return match.Closest(token, allKeywords, maxDist, 3)
}
