package hike

import (
	"strings"

	"github.com/trailhead/trailhead/internal/shared/payload"
)

// RewriteImageURL absolutizes a relative image path (one starting with "/")
// against the backend origin. Absolute URLs pass through, and the rewrite
// is idempotent: once prefixed, the result no longer starts with "/".
func RewriteImageURL(origin, img string) string {
	if img == "" || !strings.HasPrefix(img, "/") {
		return img
	}
	return origin + img
}

func rewriteAll(origin string, imgs []string) []string {
	out := make([]string, 0, len(imgs))
	for _, img := range imgs {
		if img == "" {
			continue
		}
		out = append(out, RewriteImageURL(origin, img))
	}
	return out
}

// Normalize converts a raw backend trail payload into the canonical Trail.
// It is total: any payload shape the backend is known to emit, including an
// empty object, yields a well-defined Trail. Aliases are tried snake_case
// first, matching what the backend emits most often.
func Normalize(raw map[string]any, origin string) Trail {
	t := Trail{
		ID:          payload.Str(raw, "hike_id", "id"),
		Name:        payload.Str(raw, "name"),
		Location:    payload.Str(raw, "location_text", "location"),
		Description: payload.Str(raw, "description"),
		OwnerID:     payload.Str(raw, "created_by", "createdBy"),
		CreatedAt:   payload.Timestamp(raw, "created_at", "createdAt"),
	}

	// Difficulty arrives either as a tier name or as a continuous score.
	if v, ok := payload.Lookup(raw, "difficulty"); ok {
		if s, isStr := v.(string); isStr {
			if tier, parsed := ParseTier(s); parsed {
				t.Difficulty = tier
			} else {
				t.Difficulty = TierModerate
			}
		} else {
			t.Difficulty = TierOf(payload.Num(raw, "difficulty"))
		}
	} else {
		t.Difficulty = TierModerate
	}

	if miles := payload.Num(raw, "distance", "length"); miles > 0 {
		t.LengthMiles = miles
	}

	if avg := payload.Num(raw, "average_rating", "averageRating"); avg > 0 {
		if avg > 5 {
			avg = 5
		}
		t.AverageRating = avg
	}
	if total := payload.Int(raw, "total_ratings", "totalRatings", "total_reviews"); total > 0 {
		t.TotalReviews = total
	}

	// List payloads may carry only a thumbnail; it becomes the primary image.
	if thumb := payload.Str(raw, "thumbnail_url", "thumbnailUrl"); thumb != "" {
		t.ImageURLs = []string{RewriteImageURL(origin, thumb)}
	} else {
		t.ImageURLs = rewriteAll(origin, payload.StrList(raw, "images"))
	}
	return t
}

// NormalizeList converts a raw listing, dropping nothing: a malformed entry
// still normalizes to defaults rather than blocking the rest of the list.
func NormalizeList(raw []map[string]any, origin string) []Trail {
	out := make([]Trail, 0, len(raw))
	for _, obj := range raw {
		out = append(out, Normalize(obj, origin))
	}
	return out
}

// OwnedBy reports whether the trail belongs to userID, comparing trimmed
// string ids. A trail with no owner belongs to no one.
func OwnedBy(t Trail, userID string) bool {
	return payload.EqualIDs(t.OwnerID, userID)
}
