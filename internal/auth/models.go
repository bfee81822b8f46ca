package auth

// Identity is the current authenticated user. ID is never empty once
// authenticated.
type Identity struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	FriendIDs []string `json:"friend_ids,omitempty"`
	// Token is the backend session cookie, persisted so a new process can
	// resume the session without credentials.
	Token string `json:"token,omitempty"`
}

// MinPasswordLen is enforced client-side before any backend call.
const MinPasswordLen = 7
