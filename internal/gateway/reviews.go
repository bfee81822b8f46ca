package gateway

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/trailhead/trailhead/internal/shared/payload"
)

// ReviewPage is a review listing plus its aggregate.
type ReviewPage struct {
	Reviews       []map[string]any
	AverageRating float64
	TotalReviews  int
}

// ListReviews fetches the reviews for a trail. The backend has emitted both
// a bare array and a {reviews, averageRating, totalReviews} wrapper; both
// are tolerated, with zero aggregates for the bare form.
func (c *Client) ListReviews(ctx context.Context, trailID string) (ReviewPage, error) {
	resp, err := c.get(ctx, "/api/reviews?hikeId="+url.QueryEscape(trailID))
	if err != nil {
		return ReviewPage{}, transportError("list reviews", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ReviewPage{}, c.fetchError("list reviews", resp, "Failed to fetch reviews")
	}

	var raw any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return ReviewPage{}, &FetchError{Op: "list reviews", Status: resp.StatusCode, Message: "Failed to fetch reviews"}
	}
	switch v := raw.(type) {
	case []any:
		page := ReviewPage{Reviews: make([]map[string]any, 0, len(v))}
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				page.Reviews = append(page.Reviews, m)
			}
		}
		return page, nil
	case map[string]any:
		return ReviewPage{
			Reviews:       payload.List(v, "reviews"),
			AverageRating: payload.Num(v, "averageRating", "average_rating"),
			TotalReviews:  payload.Int(v, "totalReviews", "total_reviews"),
		}, nil
	}
	return ReviewPage{}, &FetchError{Op: "list reviews", Status: resp.StatusCode, Message: "Failed to fetch reviews"}
}

// CreateReview posts a new review and returns the created raw payload.
func (c *Client) CreateReview(ctx context.Context, trailID string, rating float64, comment string) (map[string]any, error) {
	resp, err := c.postJSON(ctx, "/api/reviews", map[string]any{
		"hikeId":  idValue(trailID),
		"rating":  rating,
		"comment": comment,
	})
	if err != nil {
		return nil, transportError("create review", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ValidationError{Message: errorMessage(resp, "Failed to create review")}
	}
	obj, err := decodeObject(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: "create review", Status: resp.StatusCode, Message: "Failed to create review"}
	}
	return obj, nil
}

// UpvoteResult is the server-confirmed state after an upvote toggle.
type UpvoteResult struct {
	ReviewID string
	Upvotes  int
	Upvoted  bool
}

// ToggleUpvote flips the current user's upvote on a review and returns the
// confirmed count and direction.
func (c *Client) ToggleUpvote(ctx context.Context, reviewID string) (UpvoteResult, error) {
	resp, err := c.postJSON(ctx, "/api/reviews/upvote", map[string]any{
		"reviewId": idValue(reviewID),
	})
	if err != nil {
		return UpvoteResult{}, transportError("upvote review", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return UpvoteResult{}, c.fetchError("upvote review", resp, "Failed to upvote review")
	}
	obj, err := decodeObject(resp.Body)
	if err != nil {
		return UpvoteResult{}, &FetchError{Op: "upvote review", Status: resp.StatusCode, Message: "Failed to upvote review"}
	}
	return UpvoteResult{
		ReviewID: payload.Str(obj, "reviewId", "review_id"),
		Upvotes:  payload.Int(obj, "upvotes", "upvotes_count"),
		Upvoted:  payload.Bool(obj, "upvoted"),
	}, nil
}
