package review

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/trailhead/trailhead/internal/gateway"
)

// Gateway is the slice of the backend client the review service needs.
type Gateway interface {
	ListReviews(ctx context.Context, trailID string) (gateway.ReviewPage, error)
	CreateReview(ctx context.Context, trailID string, rating float64, comment string) (map[string]any, error)
	ToggleUpvote(ctx context.Context, reviewID string) (gateway.UpvoteResult, error)
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

// Fetch loads a trail's reviews into the screen's list state and returns
// the aggregate. The state is reset, so tokens from before the fetch die.
func (s *Service) Fetch(ctx context.Context, state *ListState, trailID, currentUserID string) (Aggregate, error) {
	page, err := s.gw.ListReviews(ctx, trailID)
	if err != nil {
		return Aggregate{}, err
	}
	state.Reset(NormalizeList(page.Reviews, s.gw.ImageOrigin(), currentUserID))
	return Aggregate{AverageRating: page.AverageRating, TotalReviews: page.TotalReviews}, nil
}

// Submit validates and posts a new review, then reconciles the confirmed
// review into the list. One submission in flight at a time; a concurrent
// call fails fast instead of queueing.
func (s *Service) Submit(ctx context.Context, state *ListState, trailID string, rating float64, comment, currentUserID string) (Review, error) {
	if err := validRating(rating); err != nil {
		return Review{}, err
	}
	if strings.TrimSpace(comment) == "" {
		return Review{}, &gateway.ValidationError{Message: "Please write a review comment"}
	}

	token, ok := state.BeginSubmit()
	if !ok {
		return Review{}, &gateway.ValidationError{Message: "A review is already being submitted"}
	}

	raw, err := s.gw.CreateReview(ctx, trailID, rating, strings.TrimSpace(comment))
	if err != nil {
		state.FailSubmit(token)
		return Review{}, err
	}
	created := Normalize(raw, s.gw.ImageOrigin(), currentUserID)
	state.ConfirmSubmit(token, created)
	return created, nil
}

// Upvote toggles the current user's vote on a review, confirm-then-apply:
// the gateway call goes out immediately, local state changes only once the
// server has answered, and a failure leaves the list untouched.
func (s *Service) Upvote(ctx context.Context, state *ListState, reviewID, currentUserID string) error {
	token := state.BeginUpvote(reviewID)
	res, err := s.gw.ToggleUpvote(ctx, reviewID)
	if err != nil {
		state.FailUpvote(token, reviewID)
		return err
	}
	if !state.ConfirmUpvote(token, reviewID, res.Upvotes, res.Upvoted, currentUserID) {
		s.log.Debug("stale upvote confirmation dropped", zap.String("review_id", reviewID))
	}
	return nil
}

// validRating enforces 0.5 increments in (0, 5].
func validRating(rating float64) error {
	if rating <= 0 || rating > 5 {
		return &gateway.ValidationError{Message: "Rating must be between 0.5 and 5"}
	}
	doubled := rating * 2
	if math.Abs(doubled-math.Round(doubled)) > 1e-9 {
		return &gateway.ValidationError{Message: "Rating must use half-star increments"}
	}
	return nil
}
