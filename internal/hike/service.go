package hike

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/trailhead/trailhead/internal/gateway"
)

// Gateway is the slice of the backend client the hike service needs.
type Gateway interface {
	ListTrails(ctx context.Context, q gateway.TrailQuery) ([]map[string]any, error)
	GetTrail(ctx context.Context, id string) (map[string]any, error)
	CreateTrail(ctx context.Context, fields gateway.NewTrail, images []gateway.ImageFile) (map[string]any, error)
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

// List fetches trails matching the filter. Filtering is pushed to the
// backend; the returned list is already normalized. Each call rebuilds the
// list from scratch: nothing is cached between calls.
func (s *Service) List(ctx context.Context, f Filter) ([]Trail, error) {
	q := gateway.TrailQuery{Text: f.Text, Difficulty: string(f.Tier)}
	if f.MinLength > 0 {
		v := f.MinLength
		q.MinLength = &v
	}
	if f.MaxLength > 0 {
		v := f.MaxLength
		q.MaxLength = &v
	}
	if f.MinRating > 0 {
		v := f.MinRating
		q.MinRating = &v
	}

	raw, err := s.gw.ListTrails(ctx, q)
	if err != nil {
		return nil, err
	}
	s.log.Debug("trails fetched", zap.Int("count", len(raw)))
	return NormalizeList(raw, s.gw.ImageOrigin()), nil
}

// Get fetches one trail. (nil, nil) means the trail does not exist.
func (s *Service) Get(ctx context.Context, id string) (*Trail, error) {
	raw, err := s.gw.GetTrail(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	t := Normalize(raw, s.gw.ImageOrigin())
	return &t, nil
}

// NewTrailInput is the create form as the user fills it in.
type NewTrailInput struct {
	Name        string
	Location    string
	Difficulty  Tier
	LengthMiles float64
	Description string
	Images      []gateway.ImageFile
}

// Create validates the form client-side, encodes the tier to its numeric
// score, and posts the multipart request.
func (s *Service) Create(ctx context.Context, input NewTrailInput) (Trail, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Location) == "" ||
		strings.TrimSpace(input.Description) == "" {
		return Trail{}, &gateway.ValidationError{Message: "Please fill in all required fields"}
	}
	if input.LengthMiles <= 0 {
		return Trail{}, &gateway.ValidationError{Message: "Please enter a valid length"}
	}
	if len(input.Images) == 0 {
		return Trail{}, &gateway.ValidationError{Message: "Please add at least one image"}
	}

	raw, err := s.gw.CreateTrail(ctx, gateway.NewTrail{
		Name:        strings.TrimSpace(input.Name),
		Location:    strings.TrimSpace(input.Location),
		Difficulty:  input.Difficulty.Score(),
		Distance:    input.LengthMiles,
		Description: strings.TrimSpace(input.Description),
	}, input.Images)
	if err != nil {
		return Trail{}, err
	}
	return Normalize(raw, s.gw.ImageOrigin()), nil
}
