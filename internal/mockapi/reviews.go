package mockapi

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/trailhead/trailhead/internal/seed"
	"github.com/trailhead/trailhead/internal/shared/payload"
)

// Reviews are served in camelCase, unlike the snake_case trail listing.
func reviewItem(r seed.Review, username string, currentUser int) fiber.Map {
	upvoted := false
	for _, id := range r.UpvotedBy {
		if id == currentUser && currentUser != 0 {
			upvoted = true
		}
	}
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return fiber.Map{
		"id":                   r.ID,
		"hikeId":               r.HikeID,
		"userId":               r.UserID,
		"username":             username,
		"rating":               r.Rating,
		"comment":              r.Comment,
		"upvotes":              r.Upvotes,
		"upvotedByCurrentUser": upvoted,
		"images":               images,
		"createdAt":            r.CreatedAt,
	}
}

func (s *Server) handleListReviews(c *fiber.Ctx) error {
	hikeID, err := strconv.Atoi(c.Query("hikeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hikeId is required"})
	}
	current := s.currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]fiber.Map, 0)
	var sum float64
	for _, r := range s.reviews {
		if r.HikeID != hikeID {
			continue
		}
		items = append(items, reviewItem(r, s.usernameOf(r.UserID), current))
		sum += r.Rating
	}
	avg := 0.0
	if len(items) > 0 {
		avg = math.Round(sum/float64(len(items))*10) / 10
	}
	return c.JSON(fiber.Map{
		"hikeId":        hikeID,
		"averageRating": avg,
		"totalReviews":  len(items),
		"reviews":       items,
	})
}

func (s *Server) handleCreateReview(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	hikeID, err := strconv.Atoi(payload.Str(body, "hikeId", "hike_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hikeId is required"})
	}
	rating := payload.Num(body, "rating")
	comment := payload.Str(body, "comment")
	if rating <= 0 || rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 0 and 5"})
	}
	if comment == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Comment is required"})
	}
	current := s.currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, t := range s.trails {
		if t.ID == hikeID {
			found = true
		}
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "hike not found"})
	}
	r := seed.Review{
		ID:        s.nextReview,
		HikeID:    hikeID,
		UserID:    current,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: nowRFC3339(),
	}
	s.nextReview++
	s.reviews = append(s.reviews, r)
	return c.Status(fiber.StatusCreated).JSON(reviewItem(r, s.usernameOf(current), current))
}

func (s *Server) handleUpvote(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	reviewID, err := strconv.Atoi(payload.Str(body, "reviewId", "review_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "reviewId is required"})
	}
	current := s.currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		r := &s.reviews[i]
		if r.ID != reviewID {
			continue
		}
		removed := false
		for j, id := range r.UpvotedBy {
			if id == current {
				r.UpvotedBy = append(r.UpvotedBy[:j], r.UpvotedBy[j+1:]...)
				r.Upvotes--
				removed = true
				break
			}
		}
		if !removed {
			r.UpvotedBy = append(r.UpvotedBy, current)
			r.Upvotes++
		}
		return c.JSON(fiber.Map{
			"reviewId": r.ID,
			"upvotes":  r.Upvotes,
			"upvoted":  !removed,
		})
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "review not found"})
}
