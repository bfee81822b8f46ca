package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func request(t *testing.T, s *Server, method, path, cookie string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var obj map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&obj)
	resp.Body.Close()
	return resp, obj
}

func login(t *testing.T, s *Server, email string) string {
	t.Helper()
	resp, obj := request(t, s, http.MethodPost, "/api/login", "", map[string]any{
		"email":    email,
		"password": "password123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, body %v", resp.StatusCode, obj)
	}
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			return c.Value
		}
	}
	t.Fatalf("login did not set a session cookie")
	return ""
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := New("test-secret")

	resp, obj := request(t, s, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if obj["message"] != "Invalid email or password" {
		t.Fatalf("message = %v", obj["message"])
	}
}

func TestAuthRequiredForMutations(t *testing.T) {
	s := New("test-secret")

	resp, _ := request(t, s, http.MethodPost, "/api/reviews", "", map[string]any{
		"hikeId": 1, "rating": 4, "comment": "nice",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestUpvoteToggles(t *testing.T) {
	s := New("test-secret")
	cookie := login(t, s, "mountain@example.com")

	// Seed review 6 has 8 upvotes, none from user 2.
	resp, obj := request(t, s, http.MethodPost, "/api/reviews/upvote", cookie, map[string]any{"reviewId": 6})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if obj["upvoted"] != true || obj["upvotes"].(float64) != 9 {
		t.Fatalf("first toggle = %v", obj)
	}

	_, obj = request(t, s, http.MethodPost, "/api/reviews/upvote", cookie, map[string]any{"reviewId": 6})
	if obj["upvoted"] != false || obj["upvotes"].(float64) != 8 {
		t.Fatalf("second toggle = %v", obj)
	}
}

func TestFriendLifecycle(t *testing.T) {
	s := New("test-secret")
	cookie := login(t, s, "hiker@example.com")

	resp, _ := request(t, s, http.MethodPost, "/api/friends", cookie, map[string]any{"username": "trailblazer"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add status = %d", resp.StatusCode)
	}

	resp, _ = request(t, s, http.MethodPost, "/api/friends", cookie, map[string]any{"username": "trailblazer"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate add status = %d, want 409", resp.StatusCode)
	}

	_, obj := request(t, s, http.MethodGet, "/api/friends", cookie, nil)
	if obj["totalFriends"].(float64) != 1 {
		t.Fatalf("totalFriends = %v", obj["totalFriends"])
	}

	resp, _ = request(t, s, http.MethodDelete, "/api/friends?friendUserId=1", cookie, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove status = %d", resp.StatusCode)
	}

	_, obj = request(t, s, http.MethodGet, "/api/friends", cookie, nil)
	if obj["totalFriends"].(float64) != 0 {
		t.Fatalf("totalFriends after remove = %v", obj["totalFriends"])
	}
}

func TestSignupThenLoginUsesBcrypt(t *testing.T) {
	s := New("test-secret")

	resp, obj := request(t, s, http.MethodPost, "/api/signup", "", map[string]any{
		"username": "newbie", "email": "new@example.com", "password": "hunter2hunter2",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup status = %d, body %v", resp.StatusCode, obj)
	}

	resp, _ = request(t, s, http.MethodPost, "/api/login", "", map[string]any{
		"email": "new@example.com", "password": "wrong-password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d, want 401", resp.StatusCode)
	}

	resp, _ = request(t, s, http.MethodPost, "/api/login", "", map[string]any{
		"email": "new@example.com", "password": "hunter2hunter2",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("correct password status = %d", resp.StatusCode)
	}
}
