package mockapi

import (
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleListFriends(c *fiber.Ctx) error {
	current := s.currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	edges := s.friends[current]
	ids := make([]int, 0, len(edges))
	for id := range edges {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	items := make([]fiber.Map, 0, len(ids))
	for _, id := range ids {
		u, ok := s.userByID(id)
		if !ok {
			continue
		}
		items = append(items, fiber.Map{
			"userId":       u.ID,
			"username":     u.Username,
			"email":        u.Email,
			"profileImage": u.AvatarURL,
			"friendsSince": edges[id],
		})
	}
	followers := 0
	for id, e := range s.friends {
		if id == current {
			continue
		}
		if _, ok := e[current]; ok {
			followers++
		}
	}
	return c.JSON(fiber.Map{
		"userId":         current,
		"totalFriends":   len(items),
		"totalFollowers": followers,
		"friends":        items,
	})
}

func (s *Server) handleAddFriend(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&body); err != nil || body.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username is required"})
	}
	current := s.currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	var target int
	for _, u := range s.users {
		if u.Username == body.Username {
			target = u.ID
		}
	}
	if target == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	if target == current {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot add yourself"})
	}
	if _, ok := s.friends[current][target]; ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "already friends"})
	}
	since := nowRFC3339()
	s.addEdge(current, target, since)
	s.addEdge(target, current, since)
	return c.JSON(fiber.Map{"status": "success"})
}

func (s *Server) handleRemoveFriend(c *fiber.Ctx) error {
	target, err := strconv.Atoi(c.Query("friendUserId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "friendUserId is required"})
	}
	current := s.currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.friends[current][target]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not friends"})
	}
	delete(s.friends[current], target)
	delete(s.friends[target], current)
	return c.JSON(fiber.Map{"status": "success"})
}

func (s *Server) handleFriendActivity(c *fiber.Ctx) error {
	target, err := strconv.Atoi(c.Query("friendUserId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "friendUserId is required"})
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	current := s.currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.friends[current][target]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not friends"})
	}
	username := s.usernameOf(target)

	items := make([]fiber.Map, 0)
	for _, r := range s.reviews {
		if r.UserID != target {
			continue
		}
		hikeName := ""
		for _, t := range s.trails {
			if t.ID == r.HikeID {
				hikeName = t.Name
			}
		}
		images := r.Images
		if images == nil {
			images = []string{}
		}
		items = append(items, fiber.Map{
			"type":      "review",
			"id":        r.ID,
			"hikeId":    r.HikeID,
			"hikeName":  hikeName,
			"rating":    r.Rating,
			"comment":   r.Comment,
			"images":    images,
			"username":  username,
			"createdAt": r.CreatedAt,
		})
	}
	// newest first
	sort.Slice(items, func(i, j int) bool {
		return items[i]["createdAt"].(string) > items[j]["createdAt"].(string)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return c.JSON(fiber.Map{
		"friendUserId":    target,
		"friendUsername":  username,
		"totalActivities": len(items),
		"activities":      items,
	})
}
