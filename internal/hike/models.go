package hike

// Tier is the canonical difficulty bucket shown in the UI.
type Tier string

const (
	TierEasy     Tier = "Easy"
	TierModerate Tier = "Moderate"
	TierHard     Tier = "Hard"
	TierExpert   Tier = "Expert"
)

// TierOf buckets a continuous backend difficulty score. The partition is
// exhaustive and non-overlapping over all real scores, and inverts Score's
// encoding constants.
func TierOf(score float64) Tier {
	switch {
	case score <= 1.5:
		return TierEasy
	case score <= 3.0:
		return TierModerate
	case score <= 4.5:
		return TierHard
	default:
		return TierExpert
	}
}

// Score is the creation-side encoding of a tier.
func (t Tier) Score() float64 {
	switch t {
	case TierEasy:
		return 1
	case TierModerate:
		return 2.5
	case TierHard:
		return 4
	case TierExpert:
		return 5
	}
	return 2.5
}

// ParseTier matches a tier name, case-insensitively.
func ParseTier(s string) (Tier, bool) {
	switch s {
	case "Easy", "easy":
		return TierEasy, true
	case "Moderate", "moderate":
		return TierModerate, true
	case "Hard", "hard":
		return TierHard, true
	case "Expert", "expert":
		return TierExpert, true
	}
	return "", false
}

// Trail is the canonical trail entity used everywhere past the normalizer.
type Trail struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Difficulty    Tier     `json:"difficulty"`
	LengthMiles   float64  `json:"length_miles"`
	Description   string   `json:"description"`
	ImageURLs     []string `json:"image_urls"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
	OwnerID       string   `json:"owner_id"`
	CreatedAt     string   `json:"created_at"`
}
