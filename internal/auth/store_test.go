package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/trailhead/trailhead/internal/gateway"
	"github.com/trailhead/trailhead/internal/seed"
)

// mockBackend resolves credentials against the seeded dataset: login
// succeeds for any known email (the password floor is the store's job),
// signup rejects duplicate emails and appends a new user.
type mockBackend struct {
	users []seed.User
}

func newMockBackend() *mockBackend {
	return &mockBackend{users: seed.Users()}
}

func (b *mockBackend) Authenticate(_ context.Context, email, _ string) (Identity, error) {
	for _, u := range b.users {
		if u.Email == email {
			return identityFromSeed(u), nil
		}
	}
	return Identity{}, &gateway.AuthError{Message: "Invalid email or password"}
}

func (b *mockBackend) Register(_ context.Context, username, email, _ string) (Identity, error) {
	for _, u := range b.users {
		if u.Email == email {
			return Identity{}, &gateway.AuthError{Message: "Email already registered"}
		}
	}
	user := seed.User{ID: len(b.users) + 1, Username: username, Email: email}
	b.users = append(b.users, user)
	return identityFromSeed(user), nil
}

func identityFromSeed(u seed.User) Identity {
	friends := make([]string, 0, len(u.Friends))
	for _, f := range u.Friends {
		friends = append(friends, strconv.Itoa(f))
	}
	return Identity{
		ID:        strconv.Itoa(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		FriendIDs: friends,
	}
}

type countingBackend struct {
	*mockBackend
	calls int
}

func (b *countingBackend) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	b.calls++
	return b.mockBackend.Authenticate(ctx, email, password)
}

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestLoginPersistsAndHydrates(t *testing.T) {
	path := sessionPath(t)
	store := NewStore(path, newMockBackend(), nil)

	id, err := store.Login(context.Background(), "trail@example.com", "longenough")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.ID != "1" || id.Username != "trailblazer" {
		t.Fatalf("unexpected identity %+v", id)
	}
	if len(id.FriendIDs) != 2 || id.FriendIDs[0] != "2" {
		t.Fatalf("friend ids not carried: %v", id.FriendIDs)
	}

	// A fresh store over the same file sees the session.
	rehydrated := NewStore(path, newMockBackend(), nil)
	rehydrated.Hydrate()
	got, ok := rehydrated.Current()
	if !ok || got.ID != "1" {
		t.Fatalf("hydrate lost the session: %+v ok=%v", got, ok)
	}
}

func TestPasswordFloorBlocksBackendCall(t *testing.T) {
	backend := &countingBackend{mockBackend: newMockBackend()}
	store := NewStore(sessionPath(t), backend, nil)

	_, err := store.Login(context.Background(), "trail@example.com", "short")
	var aerr *gateway.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if backend.calls != 0 {
		t.Fatalf("short password must never reach the backend")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	store := NewStore(sessionPath(t), newMockBackend(), nil)
	_, err := store.Login(context.Background(), "nobody@example.com", "longenough")
	var aerr *gateway.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if _, ok := store.Current(); ok {
		t.Fatalf("failed login must not set a session")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := NewStore(sessionPath(t), newMockBackend(), nil)
	_, err := store.Signup(context.Background(), "copycat", "trail@example.com", "longenough")
	var aerr *gateway.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError for duplicate email, got %v", err)
	}
}

func TestSignupCreatesSession(t *testing.T) {
	store := NewStore(sessionPath(t), newMockBackend(), nil)
	id, err := store.Signup(context.Background(), "newbie", "new@example.com", "longenough")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if id.ID == "" || id.Username != "newbie" {
		t.Fatalf("unexpected identity %+v", id)
	}
	if got, ok := store.Current(); !ok || got.ID != id.ID {
		t.Fatalf("session not set after signup")
	}
}

func TestLogoutClearsSessionAndFile(t *testing.T) {
	path := sessionPath(t)
	store := NewStore(path, newMockBackend(), nil)
	if _, err := store.Login(context.Background(), "trail@example.com", "longenough"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := store.Current(); ok {
		t.Fatalf("logout must clear the session")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("logout must remove the session file")
	}
	// Logging out twice is fine.
	if err := store.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestHydrateMissingFile(t *testing.T) {
	store := NewStore(sessionPath(t), newMockBackend(), nil)
	store.Hydrate()
	if _, ok := store.Current(); ok {
		t.Fatalf("no file means no session")
	}
}

func TestHydrateCorruptFile(t *testing.T) {
	path := sessionPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewStore(path, newMockBackend(), nil)
	store.Hydrate()
	if _, ok := store.Current(); ok {
		t.Fatalf("corrupt file must be discarded, not trusted")
	}
}

func TestUpdateUserPersists(t *testing.T) {
	path := sessionPath(t)
	store := NewStore(path, newMockBackend(), nil)
	if _, err := store.Login(context.Background(), "trail@example.com", "longenough"); err != nil {
		t.Fatalf("login: %v", err)
	}
	id, _ := store.Current()
	id.AvatarURL = "https://images.example/new-avatar.jpg"
	if err := store.UpdateUser(id); err != nil {
		t.Fatalf("update: %v", err)
	}

	rehydrated := NewStore(path, newMockBackend(), nil)
	rehydrated.Hydrate()
	got, _ := rehydrated.Current()
	if got.AvatarURL != "https://images.example/new-avatar.jpg" {
		t.Fatalf("update not persisted: %+v", got)
	}

	if err := store.UpdateUser(Identity{}); err == nil {
		t.Fatalf("empty id must be rejected")
	}
}
