package social

import (
	"github.com/trailhead/trailhead/internal/hike"
	"github.com/trailhead/trailhead/internal/shared/payload"
)

// NormalizeFriend converts a raw friend payload into the canonical Friend.
// Total; missing fields default to empty strings.
func NormalizeFriend(raw map[string]any) Friend {
	return Friend{
		ID:        payload.Str(raw, "userId", "user_id", "id"),
		Username:  payload.Str(raw, "username"),
		Email:     payload.Str(raw, "email"),
		AvatarURL: payload.Str(raw, "profileImage", "profile_image", "avatar_url"),
		Since:     payload.Str(raw, "friendsSince", "friends_since", "created_at"),
	}
}

// NormalizeActivity converts a raw feed entry into the canonical Activity.
func NormalizeActivity(raw map[string]any, origin string) Activity {
	a := Activity{
		TrailID:   payload.Str(raw, "hikeId", "hike_id"),
		TrailName: payload.Str(raw, "hikeName", "hike_name"),
		Comment:   payload.Str(raw, "comment", "review_body"),
		CreatedAt: payload.Timestamp(raw, "createdAt", "created_at"),
	}
	if rating := payload.Num(raw, "rating"); rating > 0 {
		if rating > 5 {
			rating = 5
		}
		a.Rating = rating
	}
	imgs := payload.StrList(raw, "images")
	if len(imgs) > 0 {
		a.ImageURLs = make([]string, 0, len(imgs))
		for _, img := range imgs {
			if img == "" {
				continue
			}
			a.ImageURLs = append(a.ImageURLs, hike.RewriteImageURL(origin, img))
		}
	}
	return a
}

func normalizeFriends(raw []map[string]any) []Friend {
	out := make([]Friend, 0, len(raw))
	for _, obj := range raw {
		out = append(out, NormalizeFriend(obj))
	}
	return out
}

func normalizeActivities(raw []map[string]any, origin string) []Activity {
	out := make([]Activity, 0, len(raw))
	for _, obj := range raw {
		out = append(out, NormalizeActivity(obj, origin))
	}
	return out
}
