package gateway

import (
	"context"
	"net/http"

	"github.com/trailhead/trailhead/internal/shared/payload"
)

// Authenticate logs in and returns the backend's user id. The response body
// is parsed even on non-2xx: the backend reports failures as
// {status, message} with an error status code.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	resp, err := c.postJSON(ctx, "/api/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", transportError("login", err)
	}
	defer resp.Body.Close()
	return authResult(resp, "Login failed")
}

// Register signs up a new account and returns the backend's user id.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	resp, err := c.postJSON(ctx, "/api/signup", map[string]any{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", transportError("signup", err)
	}
	defer resp.Body.Close()
	return authResult(resp, "Signup failed")
}

func authResult(resp *http.Response, fallback string) (string, error) {
	obj, err := decodeObject(resp.Body)
	if err != nil {
		return "", &AuthError{Message: fallback}
	}
	if payload.Str(obj, "status") != "success" {
		msg := payload.Str(obj, "message", "error")
		if msg == "" {
			msg = fallback
		}
		return "", &AuthError{Message: msg}
	}
	userID := payload.Str(obj, "user_id", "userId")
	if userID == "" {
		return "", &AuthError{Message: fallback}
	}
	return userID, nil
}
