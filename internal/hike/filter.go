package hike

import "strings"

// Filter is the client-side trail filter. Zero values are wildcards: empty
// text matches everything, empty tier matches all tiers, MaxLength <= 0
// means unbounded.
type Filter struct {
	Text      string
	Tier      Tier
	MinLength float64
	MaxLength float64
	MinRating float64
}

// Matches applies the four independent predicates conjunctively. Their
// evaluation order never affects the outcome.
func (f Filter) Matches(t Trail) bool {
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(t.Name), needle) &&
			!strings.Contains(strings.ToLower(t.Location), needle) {
			return false
		}
	}
	if f.Tier != "" && t.Difficulty != f.Tier {
		return false
	}
	if t.LengthMiles < f.MinLength {
		return false
	}
	if f.MaxLength > 0 && t.LengthMiles > f.MaxLength {
		return false
	}
	if t.AverageRating < f.MinRating {
		return false
	}
	return true
}

// Apply projects trails through the filter. Pure: the input slice is never
// mutated and relative order is preserved.
func Apply(trails []Trail, f Filter) []Trail {
	out := make([]Trail, 0, len(trails))
	for _, t := range trails {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
