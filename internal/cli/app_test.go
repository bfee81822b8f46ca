package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/trailhead/trailhead/internal/hike"
)

// Builds the app in mock mode and drives a full login-browse-review pass
// through the real wiring: config, in-process backend, gateway, session
// store, services.
func TestMockModeEndToEnd(t *testing.T) {
	t.Setenv("TRAILHEAD_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("TRAILHEAD_MOCK", "true")

	app, err := newApp()
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	defer app.Close()
	ctx := context.Background()

	id, err := app.Store.Login(ctx, "trail@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.ID != "1" {
		t.Fatalf("user id = %q, want %q", id.ID, "1")
	}
	if id.Token == "" {
		t.Fatalf("expected a persisted session token")
	}

	trails, err := app.Hikes.List(ctx, hike.Filter{})
	if err != nil {
		t.Fatalf("list trails: %v", err)
	}
	if len(trails) != 6 {
		t.Fatalf("trails = %d, want 6", len(trails))
	}

	friends, err := app.Social.Friends(ctx)
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("friends = %d, want 2", len(friends))
	}
}

// A session persisted by one mock-mode process must still authenticate in
// the next one, even though each process starts its own backend instance.
func TestMockModeSessionSurvivesRestart(t *testing.T) {
	t.Setenv("TRAILHEAD_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("TRAILHEAD_MOCK", "true")
	ctx := context.Background()

	first, err := newApp()
	if err != nil {
		t.Fatalf("first newApp: %v", err)
	}
	if _, err := first.Store.Login(ctx, "trail@example.com", "password123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	first.Close()

	second, err := newApp()
	if err != nil {
		t.Fatalf("second newApp: %v", err)
	}
	defer second.Close()

	if id, ok := second.Store.Current(); !ok || id.ID != "1" {
		t.Fatalf("session not hydrated: %+v ok=%v", id, ok)
	}
	friends, err := second.Social.Friends(ctx)
	if err != nil {
		t.Fatalf("authenticated call after restart: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("friends = %d, want 2", len(friends))
	}
}

func TestMockModeFilterPushedToBackend(t *testing.T) {
	t.Setenv("TRAILHEAD_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("TRAILHEAD_MOCK", "true")

	app, err := newApp()
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	defer app.Close()

	trails, err := app.Hikes.List(context.Background(), hike.Filter{Tier: hike.TierExpert})
	if err != nil {
		t.Fatalf("list trails: %v", err)
	}
	if len(trails) != 1 || trails[0].Name != "Half Dome" {
		t.Fatalf("expert trails = %+v, want just Half Dome", trails)
	}
}
