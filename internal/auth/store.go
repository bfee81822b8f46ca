// Package auth owns the current session: who is logged in, persisted
// across runs in a small JSON file (the browser-localStorage analog).
// The store is an explicit, injectable object with a defined hydrate and
// teardown, never package-level state.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/trailhead/trailhead/internal/gateway"
)

// Backend resolves credentials to an Identity. The HTTP gateway is the
// only production implementation; offline mode points the same gateway at
// an in-process server.
type Backend interface {
	Authenticate(ctx context.Context, email, password string) (Identity, error)
	Register(ctx context.Context, username, email, password string) (Identity, error)
}

type Store struct {
	path    string
	backend Backend
	log     *zap.Logger

	mu      sync.Mutex
	current *Identity
}

func NewStore(path string, backend Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, backend: backend, log: log}
}

// DefaultSessionPath resolves the session file under the user's home
// dot-directory, falling back to the working directory.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".trailhead", "session.json")
	}
	return filepath.Join(home, ".trailhead", "session.json")
}

// Hydrate loads a persisted identity if one exists. A missing or corrupt
// session file means nobody is logged in; it is not an error.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var id Identity
	if err := json.Unmarshal(data, &id); err != nil || id.ID == "" {
		s.log.Warn("discarding unreadable session file", zap.String("path", s.path))
		return
	}
	s.current = &id
}

// Current returns the logged-in identity, if any.
func (s *Store) Current() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Identity{}, false
	}
	return *s.current, true
}

// Login authenticates and persists the session. The password floor is
// checked before the backend is contacted.
func (s *Store) Login(ctx context.Context, email, password string) (Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Identity{}, &gateway.AuthError{Message: "Email is required"}
	}
	if len(password) < MinPasswordLen {
		return Identity{}, &gateway.AuthError{Message: "Password must be at least 7 characters"}
	}

	id, err := s.backend.Authenticate(ctx, email, password)
	if err != nil {
		return Identity{}, err
	}
	if err := s.setCurrent(id); err != nil {
		return Identity{}, err
	}
	s.log.Info("logged in", zap.String("user_id", id.ID))
	return id, nil
}

// Signup registers a new account and persists the session.
func (s *Store) Signup(ctx context.Context, username, email, password string) (Identity, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return Identity{}, &gateway.AuthError{Message: "Username and email are required"}
	}
	if len(password) < MinPasswordLen {
		return Identity{}, &gateway.AuthError{Message: "Password must be at least 7 characters"}
	}

	id, err := s.backend.Register(ctx, username, email, password)
	if err != nil {
		return Identity{}, err
	}
	if err := s.setCurrent(id); err != nil {
		return Identity{}, err
	}
	s.log.Info("signed up", zap.String("user_id", id.ID))
	return id, nil
}

// UpdateUser replaces the persisted identity after a profile edit.
func (s *Store) UpdateUser(id Identity) error {
	if id.ID == "" {
		return errors.New("identity id required")
	}
	return s.setCurrent(id)
}

// Logout clears the session and removes the persisted file.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) setCurrent(id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &id

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
