package mockapi

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/trailhead/trailhead/internal/hike"
	"github.com/trailhead/trailhead/internal/seed"
)

// The listing and detail endpoints intentionally disagree on field names
// and shapes, matching the production backend the client was written
// against.

func trailListItem(t seed.Trail) fiber.Map {
	thumb := ""
	if len(t.Images) > 0 {
		thumb = t.Images[0]
	}
	return fiber.Map{
		"hike_id":        t.ID,
		"name":           t.Name,
		"location_text":  t.Location,
		"difficulty":     t.Difficulty,
		"distance":       t.Distance,
		"description":    t.Description,
		"thumbnail_url":  thumb,
		"average_rating": t.AverageRating,
		"total_ratings":  t.TotalRatings,
		"created_by":     t.CreatedBy,
		"created_at":     t.CreatedAt,
	}
}

func trailDetail(t seed.Trail) fiber.Map {
	return fiber.Map{
		"id":             t.ID,
		"name":           t.Name,
		"location":       t.Location,
		"difficulty":     t.Difficulty,
		"length":         t.Distance,
		"description":    t.Description,
		"images":         t.Images,
		"average_rating": t.AverageRating,
		"total_reviews":  t.TotalRatings,
		"created_by":     t.CreatedBy,
		"created_at":     t.CreatedAt,
	}
}

func (s *Server) handleListHikes(c *fiber.Ctx) error {
	text := strings.ToLower(c.Query("q"))
	difficulty := c.Query("difficulty")
	minLength := queryFloat(c, "min_length", 0)
	maxLength := queryFloat(c, "max_length", 0)
	minRating := queryFloat(c, "min_rating", 0)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]fiber.Map, 0, len(s.trails))
	for _, t := range s.trails {
		if text != "" &&
			!strings.Contains(strings.ToLower(t.Name), text) &&
			!strings.Contains(strings.ToLower(t.Location), text) {
			continue
		}
		if difficulty != "" && string(hike.TierOf(t.Difficulty)) != difficulty {
			continue
		}
		if minLength > 0 && t.Distance < minLength {
			continue
		}
		if maxLength > 0 && t.Distance > maxLength {
			continue
		}
		if minRating > 0 && t.AverageRating < minRating {
			continue
		}
		out = append(out, trailListItem(t))
	}
	return c.JSON(out)
}

func (s *Server) handleGetHike(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "hike not found"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trails {
		if t.ID == id {
			return c.JSON(trailDetail(t))
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "hike not found"})
}

func (s *Server) handleAddHike(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form data"})
	}
	name := formValue(form.Value, "name")
	location := formValue(form.Value, "location")
	description := formValue(form.Value, "description")
	if name == "" || location == "" || description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}
	distance, err := strconv.ParseFloat(formValue(form.Value, "distance"), 64)
	if err != nil || distance <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid length"})
	}
	difficulty, err := strconv.ParseFloat(formValue(form.Value, "difficulty"), 64)
	if err != nil {
		difficulty = 2.5
	}

	// Files are not persisted; each upload is assigned a stable relative
	// path so the client exercises its URL rewriting.
	var images []string
	for _, fh := range form.File["images"] {
		images = append(images, "/uploads/"+uuid.NewString()+"-"+fh.Filename)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t := seed.Trail{
		ID:          s.nextTrail,
		Name:        name,
		Location:    location,
		Difficulty:  difficulty,
		Distance:    distance,
		Description: description,
		Images:      images,
		CreatedBy:   s.currentUser(c),
		CreatedAt:   nowRFC3339(),
	}
	s.nextTrail++
	s.trails = append(s.trails, t)
	return c.Status(fiber.StatusCreated).JSON(trailDetail(t))
}

func formValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func queryFloat(c *fiber.Ctx, key string, fallback float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
