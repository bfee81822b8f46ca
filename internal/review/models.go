package review

import "sort"

// Review is the canonical review entity. Upvoters has set semantics and is
// reconstructed locally when the backend reports only a boolean for the
// current user.
type Review struct {
	ID         string   `json:"id"`
	TrailID    string   `json:"trail_id"`
	AuthorID   string   `json:"author_id"`
	AuthorName string   `json:"author_name"`
	Rating     float64  `json:"rating"`
	Comment    string   `json:"comment"`
	Upvotes    int      `json:"upvotes"`
	Upvoters   []string `json:"upvoters"`
	ImageURLs  []string `json:"image_urls"`
	CreatedAt  string   `json:"created_at"`
}

// UpvotedBy reports set membership in Upvoters.
func (r Review) UpvotedBy(userID string) bool {
	for _, id := range r.Upvoters {
		if id == userID {
			return true
		}
	}
	return false
}

// Aggregate is the rating summary the backend sends with a review listing.
type Aggregate struct {
	AverageRating float64
	TotalReviews  int
}

// SortByUpvotes returns a copy sorted by descending upvote count. The sort
// is stable: reviews with equal counts keep their fetch order run to run.
func SortByUpvotes(in []Review) []Review {
	out := make([]Review, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Upvotes > out[j].Upvotes
	})
	return out
}
