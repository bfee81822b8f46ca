package social

// Friend is one edge of the current user's friend list. Since is the
// backend's friendsSince timestamp when it reports one.
type Friend struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Since     string `json:"since,omitempty"`
}

// Activity is one of a friend's reviews exposed for the feed.
type Activity struct {
	TrailID   string   `json:"trail_id"`
	TrailName string   `json:"trail_name"`
	Rating    float64  `json:"rating"`
	Comment   string   `json:"comment"`
	ImageURLs []string `json:"image_urls,omitempty"`
	CreatedAt string   `json:"created_at"`
}
