package social

import (
	"context"

	"go.uber.org/zap"
)

// DefaultActivityLimit caps a feed fetch when the caller does not say.
const DefaultActivityLimit = 20

// Gateway is the slice of the backend client the social service needs.
type Gateway interface {
	ListFriends(ctx context.Context) ([]map[string]any, error)
	AddFriend(ctx context.Context, username string) error
	RemoveFriend(ctx context.Context, friendID string) error
	ListFriendActivity(ctx context.Context, friendID string, limit int) ([]map[string]any, error)
	ImageOrigin() string
}

type Service struct {
	gw  Gateway
	log *zap.Logger
}

func NewService(gw Gateway, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gw: gw, log: log}
}

// Friends fetches the current user's friend list, normalized.
func (s *Service) Friends(ctx context.Context) ([]Friend, error) {
	raw, err := s.gw.ListFriends(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeFriends(raw), nil
}

// Add adds a friend by username and returns the refreshed list, so the
// caller's view reflects the backend's authoritative list rather than a
// local guess.
func (s *Service) Add(ctx context.Context, username string) ([]Friend, error) {
	if err := s.gw.AddFriend(ctx, username); err != nil {
		return nil, err
	}
	return s.Friends(ctx)
}

// Remove removes a friend by user id and returns the refreshed list.
func (s *Service) Remove(ctx context.Context, friendID string) ([]Friend, error) {
	if err := s.gw.RemoveFriend(ctx, friendID); err != nil {
		return nil, err
	}
	return s.Friends(ctx)
}

// Activity fetches a friend's recent reviews. Limit defaults when <= 0.
func (s *Service) Activity(ctx context.Context, friendID string, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	raw, err := s.gw.ListFriendActivity(ctx, friendID, limit)
	if err != nil {
		return nil, err
	}
	return normalizeActivities(raw, s.gw.ImageOrigin()), nil
}
