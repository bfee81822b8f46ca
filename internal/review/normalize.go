package review

import (
	"github.com/trailhead/trailhead/internal/hike"
	"github.com/trailhead/trailhead/internal/shared/payload"
)

// Normalize converts a raw backend review payload into the canonical
// Review. Total over every payload shape the backend is known to emit.
//
// Upvoters reconstruction: an explicit id list wins verbatim (each id
// coerced to a string); failing that, a true "upvoted by current user"
// boolean seeds the set with exactly currentUserID, and it stays empty when
// the flag is false or nobody is authenticated.
func Normalize(raw map[string]any, origin, currentUserID string) Review {
	r := Review{
		ID:        payload.Str(raw, "id", "review_id"),
		TrailID:   payload.Str(raw, "hikeId", "hike_id"),
		AuthorID:  payload.Str(raw, "userId", "user_id"),
		Comment:   payload.Str(raw, "comment", "review_body"),
		Upvotes:   payload.Int(raw, "upvotes", "upvotes_count"),
		CreatedAt: payload.Timestamp(raw, "createdAt", "created_at"),
	}

	if rating := payload.Num(raw, "rating"); rating > 0 {
		if rating > 5 {
			rating = 5
		}
		r.Rating = rating
	}
	if r.Upvotes < 0 {
		r.Upvotes = 0
	}

	if _, hasList := payload.Lookup(raw, "upvotedBy", "upvoted_by"); hasList {
		r.Upvoters = payload.StrList(raw, "upvotedBy", "upvoted_by")
	} else if payload.Bool(raw, "upvotedByCurrentUser", "upvoted_by_current_user") && currentUserID != "" {
		r.Upvoters = []string{currentUserID}
	} else {
		r.Upvoters = []string{}
	}

	imgs := payload.StrList(raw, "images")
	r.ImageURLs = make([]string, 0, len(imgs))
	for _, img := range imgs {
		if img == "" {
			continue
		}
		r.ImageURLs = append(r.ImageURLs, hike.RewriteImageURL(origin, img))
	}

	r.AuthorName = payload.Str(raw, "username")
	if r.AuthorName == "" {
		r.AuthorName = "User " + r.AuthorID
	}
	return r
}

// NormalizeList converts a raw listing; a malformed entry normalizes to
// defaults instead of blocking the rest.
func NormalizeList(raw []map[string]any, origin, currentUserID string) []Review {
	out := make([]Review, 0, len(raw))
	for _, obj := range raw {
		out = append(out, Normalize(obj, origin, currentUserID))
	}
	return out
}
