// Package gateway is the typed client for the trail backend's REST API.
// Each backend operation is exactly one method; transport details never
// leak past this boundary except as a typed value or a typed error. The
// session cookie rides along implicitly via the client's cookie jar.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trailhead/trailhead/internal/shared/payload"
)

type Client struct {
	base string
	hc   *http.Client
	log  *zap.Logger
}

// New builds a client for the backend at baseURL. The cookie jar holds the
// session cookie set by login/signup so every later request carries it.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Jar: jar, Timeout: timeout},
		log:  log,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.base }

const sessionCookieName = "session"

// SessionToken returns the backend's session cookie from the jar, "" when
// not logged in. Callers persist it so a later process can resume the
// session without re-authenticating.
func (c *Client) SessionToken() string {
	u, err := url.Parse(c.base)
	if err != nil {
		return ""
	}
	for _, cookie := range c.hc.Jar.Cookies(u) {
		if cookie.Name == sessionCookieName {
			return cookie.Value
		}
	}
	return ""
}

// SetSessionToken primes the jar with a previously persisted session
// cookie.
func (c *Client) SetSessionToken(token string) {
	if token == "" {
		return
	}
	u, err := url.Parse(c.base)
	if err != nil {
		return
	}
	c.hc.Jar.SetCookies(u, []*http.Cookie{{Name: sessionCookieName, Value: token, Path: "/"}})
}

// ImageOrigin is the origin used to absolutize relative image paths: the
// base URL with its first "/api" segment removed and no trailing slash.
func (c *Client) ImageOrigin() string {
	origin := strings.Replace(c.base, "/api", "", 1)
	return strings.TrimRight(origin, "/")
}

func (c *Client) get(ctx context.Context, pathAndQuery string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+pathAndQuery, nil)
	if err != nil {
		return nil, err
	}
	return c.hc.Do(req)
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.hc.Do(req)
}

func (c *Client) delete(ctx context.Context, pathAndQuery string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+pathAndQuery, nil)
	if err != nil {
		return nil, err
	}
	return c.hc.Do(req)
}

func decodeObject(body io.Reader) (map[string]any, error) {
	var obj map[string]any
	if err := json.NewDecoder(body).Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// errorMessage extracts an {error|message} field from a non-2xx body,
// falling back when the body is absent or unparseable.
func errorMessage(resp *http.Response, fallback string) string {
	obj, err := decodeObject(resp.Body)
	if err != nil {
		return fallback
	}
	if msg := payload.Str(obj, "error", "message"); msg != "" {
		return msg
	}
	return fallback
}

func (c *Client) fetchError(op string, resp *http.Response, fallback string) *FetchError {
	msg := errorMessage(resp, fallback)
	c.log.Warn("backend request failed",
		zap.String("op", op), zap.Int("status", resp.StatusCode), zap.String("message", msg))
	return &FetchError{Op: op, Status: resp.StatusCode, Message: msg}
}

func transportError(op string, err error) *FetchError {
	return &FetchError{Op: op, Message: fmt.Sprintf("%s: %v", op, err)}
}

// idValue renders a canonical string id the way the backend expects it in a
// JSON body: numeric when it parses as an integer, string otherwise.
func idValue(id string) any {
	if n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64); err == nil {
		return n
	}
	return id
}
