package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/trailhead/trailhead/internal/shared/payload"
)

// ListFriends fetches the current user's friend list as raw payloads.
func (c *Client) ListFriends(ctx context.Context) ([]map[string]any, error) {
	resp, err := c.get(ctx, "/api/friends")
	if err != nil {
		return nil, transportError("list friends", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fetchError("list friends", resp, "Failed to fetch friends")
	}
	obj, err := decodeObject(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: "list friends", Status: resp.StatusCode, Message: "Failed to fetch friends"}
	}
	return payload.List(obj, "friends"), nil
}

// AddFriend adds a friend by username. Rejections surface the backend's
// message; a 2xx body whose status field is not "success" is also a
// rejection.
func (c *Client) AddFriend(ctx context.Context, username string) error {
	resp, err := c.postJSON(ctx, "/api/friends", map[string]any{"username": username})
	if err != nil {
		return transportError("add friend", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ValidationError{Message: errorMessage(resp, "Failed to add friend")}
	}
	obj, err := decodeObject(resp.Body)
	if err != nil {
		return &FetchError{Op: "add friend", Status: resp.StatusCode, Message: "Failed to add friend"}
	}
	if payload.Str(obj, "status") != "success" {
		msg := payload.Str(obj, "message", "error")
		if msg == "" {
			msg = "Failed to add friend"
		}
		return &ValidationError{Message: msg}
	}
	return nil
}

// RemoveFriend removes a friend by user id.
func (c *Client) RemoveFriend(ctx context.Context, friendID string) error {
	resp, err := c.delete(ctx, "/api/friends?friendUserId="+url.QueryEscape(friendID))
	if err != nil {
		return transportError("remove friend", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.fetchError("remove friend", resp, "Failed to remove friend")
	}
	return nil
}

// ListFriendActivity fetches a friend's recent reviews, newest first,
// capped at limit.
func (c *Client) ListFriendActivity(ctx context.Context, friendID string, limit int) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("friendUserId", friendID)
	q.Set("limit", strconv.Itoa(limit))
	resp, err := c.get(ctx, "/api/friends/activity?"+q.Encode())
	if err != nil {
		return nil, transportError("friend activity", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fetchError("friend activity", resp, "Failed to fetch friend activity")
	}
	obj, err := decodeObject(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: "friend activity", Status: resp.StatusCode, Message: "Failed to fetch friend activity"}
	}
	return payload.List(obj, "activities"), nil
}
