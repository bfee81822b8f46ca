package mockapi

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/trailhead/trailhead/internal/seed"
)

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Seeded accounts have no stored hash and accept any password of
// sufficient length. Accounts created through signup get a real bcrypt
// check.
func (s *Server) checkPassword(email, password string) bool {
	if hash, ok := s.creds[email]; ok {
		return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
	}
	return len(password) >= 7
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var body credentials
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail", "message": "Invalid request body",
		})
	}
	email := trimLower(body.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if trimLower(u.Email) != email {
			continue
		}
		if !s.checkPassword(u.Email, body.Password) {
			break
		}
		if err := s.setSessionCookie(c, u.ID); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"status": "success", "user_id": u.ID})
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status": "fail", "message": "Invalid email or password",
	})
}

func (s *Server) handleSignup(c *fiber.Ctx) error {
	var body credentials
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail", "message": "Invalid request body",
		})
	}
	if body.Username == "" || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail", "message": "Missing required fields",
		})
	}
	email := trimLower(body.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if trimLower(u.Email) == email {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"status": "fail", "message": "Email already registered",
			})
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := seed.User{ID: s.nextUser, Username: body.Username, Email: body.Email}
	s.nextUser++
	s.users = append(s.users, user)
	s.creds[user.Email] = hash

	if err := s.setSessionCookie(c, user.ID); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "user_id": user.ID})
}
