package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

// TrailQuery holds the server-side filter parameters for the trail listing.
// Nil or empty fields are omitted from the query string entirely rather
// than sent as empty values.
type TrailQuery struct {
	Text       string
	Difficulty string
	MinLength  *float64
	MaxLength  *float64
	MinRating  *float64
}

func (q TrailQuery) encode() string {
	values := url.Values{}
	if q.Text != "" {
		values.Set("q", q.Text)
	}
	if q.Difficulty != "" {
		values.Set("difficulty", q.Difficulty)
	}
	setFloat := func(key string, v *float64) {
		if v != nil {
			values.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	setFloat("min_length", q.MinLength)
	setFloat("max_length", q.MaxLength)
	setFloat("min_rating", q.MinRating)
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// ListTrails fetches the trail listing as raw payload objects.
func (c *Client) ListTrails(ctx context.Context, q TrailQuery) ([]map[string]any, error) {
	resp, err := c.get(ctx, "/api/hikes"+q.encode())
	if err != nil {
		return nil, transportError("list hikes", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fetchError("list hikes", resp, "Failed to fetch hikes")
	}

	var raw []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &FetchError{Op: "list hikes", Status: resp.StatusCode, Message: "Failed to fetch hikes"}
	}
	return raw, nil
}

// GetTrail fetches one trail. A 404 is a valid "does not exist" result and
// yields (nil, nil), not an error.
func (c *Client) GetTrail(ctx context.Context, id string) (map[string]any, error) {
	resp, err := c.get(ctx, "/api/hikes/"+url.PathEscape(id))
	if err != nil {
		return nil, transportError("get hike", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fetchError("get hike", resp, "Failed to fetch hike")
	}
	obj, err := decodeObject(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: "get hike", Status: resp.StatusCode, Message: "Failed to fetch hike"}
	}
	return obj, nil
}

// NewTrail carries the multipart fields for trail creation. Difficulty is
// the numeric score encoding of the chosen tier.
type NewTrail struct {
	Name        string
	Location    string
	Difficulty  float64
	Distance    float64
	Description string
}

// ImageFile is one "images" file part.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

// CreateTrail posts a multipart form with the trail fields and image parts
// and returns the created raw trail payload.
func (c *Client) CreateTrail(ctx context.Context, fields NewTrail, images []ImageFile) (map[string]any, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", fields.Name)
	_ = mw.WriteField("location", fields.Location)
	_ = mw.WriteField("difficulty", strconv.FormatFloat(fields.Difficulty, 'f', -1, 64))
	_ = mw.WriteField("distance", strconv.FormatFloat(fields.Distance, 'f', -1, 64))
	_ = mw.WriteField("description", fields.Description)
	for _, img := range images {
		part, err := mw.CreateFormFile("images", img.Name)
		if err != nil {
			return nil, transportError("create hike", err)
		}
		if _, err := io.Copy(part, img.Reader); err != nil {
			return nil, transportError("create hike", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, transportError("create hike", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/hikes/add", &buf)
	if err != nil {
		return nil, transportError("create hike", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, transportError("create hike", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ValidationError{Message: errorMessage(resp, "Failed to create hike")}
	}
	obj, err := decodeObject(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: "create hike", Status: resp.StatusCode, Message: "Failed to create hike"}
	}
	return obj, nil
}
