package match

import "sort"

// Closest returns the candidates within maxDistance edits of the
// input, nearest first, capped at limit. Equal distances order
// lexicographically, so suggestion lists are deterministic. Returns
// nil when no candidate is close enough.
func Closest(input string, candidates []string, maxDistance, limit int) []string {
	type ranked struct {
		candidate string
		distance  int
	}

	var close []ranked
	for _, c := range candidates {
		if d := Levenshtein(input, c); d <= maxDistance {
			close = append(close, ranked{candidate: c, distance: d})
		}
	}

	if len(close) == 0 {
		return nil
	}

	sort.Slice(close, func(i, j int) bool {
		if close[i].distance != close[j].distance {
			return close[i].distance < close[j].distance
		}

		return close[i].candidate < close[j].candidate
	})

	if len(close) > limit {
		close = close[:limit]
	}

	out := make([]string, 0, len(close))
	for _, r := range close {
		out = append(out, r.candidate)
	}

	return out
}
