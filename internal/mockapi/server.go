// Package mockapi is an in-process stand-in for the trail backend. It
// serves the seeded dataset over the same routes and (deliberately
// inconsistent) payload shapes the real backend uses, so the client can
// run fully offline and the gateway can be tested against real HTTP.
package mockapi

import (
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/trailhead/trailhead/internal/seed"
)

const sessionCookieName = "session"

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type Server struct {
	App    *fiber.App
	secret []byte
	ln     net.Listener

	mu      sync.Mutex
	users   []seed.User
	creds   map[string][]byte // email -> bcrypt hash for signup-created accounts
	trails  []seed.Trail
	reviews []seed.Review
	// friendship edges, both directions, with the since timestamp
	friends    map[int]map[int]string
	nextUser   int
	nextTrail  int
	nextReview int
}

func New(secret string) *Server {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	s := &Server{
		App:     app,
		secret:  []byte(secret),
		users:   seed.Users(),
		creds:   make(map[string][]byte),
		trails:  seed.Trails(),
		reviews: seed.Reviews(),
		friends: make(map[int]map[int]string),
	}
	for _, u := range s.users {
		for _, f := range u.Friends {
			s.addEdge(u.ID, f, "2024-01-01T00:00:00Z")
		}
	}
	s.nextUser = len(s.users) + 1
	s.nextTrail = len(s.trails) + 1
	s.nextReview = len(s.reviews) + 1

	s.registerRoutes()
	return s
}

// Listen starts the server on a loopback port and returns its base URL.
func (s *Server) Listen() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	s.ln = ln
	go func() {
		_ = s.App.Listener(ln)
	}()
	return "http://" + ln.Addr().String(), nil
}

func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

func (s *Server) registerRoutes() {
	s.App.Post("/api/login", s.handleLogin)
	s.App.Post("/api/signup", s.handleSignup)
	s.App.Get("/api/hikes", s.handleListHikes)
	s.App.Get("/api/hikes/:id", s.handleGetHike)
	s.App.Post("/api/hikes/add", s.requireUser, s.handleAddHike)
	s.App.Get("/api/reviews", s.handleListReviews)
	s.App.Post("/api/reviews", s.requireUser, s.handleCreateReview)
	s.App.Post("/api/reviews/upvote", s.requireUser, s.handleUpvote)
	s.App.Get("/api/friends", s.requireUser, s.handleListFriends)
	s.App.Post("/api/friends", s.requireUser, s.handleAddFriend)
	s.App.Delete("/api/friends", s.requireUser, s.handleRemoveFriend)
	s.App.Get("/api/friends/activity", s.requireUser, s.handleFriendActivity)
}

func (s *Server) signSession(userID int) (string, error) {
	claims := Claims{
		UserID: strconv.Itoa(userID),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// currentUser resolves the session cookie to a user id, 0 when absent or
// invalid.
func (s *Server) currentUser(c *fiber.Ctx) int {
	cookie := c.Cookies(sessionCookieName)
	if cookie == "" {
		return 0
	}
	parsed, err := jwt.ParseWithClaims(cookie, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return 0
	}
	id, err := strconv.Atoi(claims.UserID)
	if err != nil {
		return 0
	}
	return id
}

func (s *Server) requireUser(c *fiber.Ctx) error {
	if s.currentUser(c) == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	return c.Next()
}

func (s *Server) setSessionCookie(c *fiber.Ctx, userID int) error {
	token, err := s.signSession(userID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	})
	return nil
}

func (s *Server) addEdge(a, b int, since string) {
	if s.friends[a] == nil {
		s.friends[a] = make(map[int]string)
	}
	s.friends[a][b] = since
}

func (s *Server) userByID(id int) (seed.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return seed.User{}, false
}

func (s *Server) usernameOf(id int) string {
	if u, ok := s.userByID(id); ok {
		return u.Username
	}
	return ""
}

func trimLower(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
