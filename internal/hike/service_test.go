package hike

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/trailhead/trailhead/internal/gateway"
)

// fakeGateway records the queries it receives and replays canned payloads,
// standing in for the HTTP client the way a storage double stands in for a
// database.
type fakeGateway struct {
	listQuery   gateway.TrailQuery
	listResult  []map[string]any
	getResult   map[string]any
	createInput gateway.NewTrail
	createFiles int
	err         error
}

func (f *fakeGateway) ListTrails(_ context.Context, q gateway.TrailQuery) ([]map[string]any, error) {
	f.listQuery = q
	return f.listResult, f.err
}

func (f *fakeGateway) GetTrail(_ context.Context, _ string) (map[string]any, error) {
	return f.getResult, f.err
}

func (f *fakeGateway) CreateTrail(_ context.Context, fields gateway.NewTrail, images []gateway.ImageFile) (map[string]any, error) {
	f.createInput = fields
	f.createFiles = len(images)
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"hike_id": float64(9), "name": fields.Name, "difficulty": fields.Difficulty}, nil
}

func (f *fakeGateway) ImageOrigin() string { return "http://backend:8080" }

func TestListPushesOnlySetFilters(t *testing.T) {
	gw := &fakeGateway{listResult: []map[string]any{{"hike_id": float64(1), "difficulty": 1.0}}}
	svc := NewService(gw, nil)

	trails, err := svc.List(context.Background(), Filter{Text: "zion", MinRating: 4})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trails) != 1 || trails[0].Difficulty != TierEasy {
		t.Fatalf("unexpected trails %+v", trails)
	}
	q := gw.listQuery
	if q.Text != "zion" || q.MinRating == nil || *q.MinRating != 4 {
		t.Fatalf("set filters not forwarded: %+v", q)
	}
	if q.MinLength != nil || q.MaxLength != nil || q.Difficulty != "" {
		t.Fatalf("unset filters must be omitted: %+v", q)
	}
}

func TestGetMissingTrailIsNil(t *testing.T) {
	svc := NewService(&fakeGateway{}, nil)
	tr, err := svc.Get(context.Background(), "999")
	if err != nil {
		t.Fatalf("missing trail must not be an error: %v", err)
	}
	if tr != nil {
		t.Fatalf("expected nil trail, got %+v", tr)
	}
}

func TestCreateValidation(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, nil)

	cases := []NewTrailInput{
		{Location: "Utah", Description: "d", LengthMiles: 2, Images: oneImage()},
		{Name: "Trail", Description: "d", LengthMiles: 2, Images: oneImage()},
		{Name: "Trail", Location: "Utah", LengthMiles: 2, Images: oneImage()},
		{Name: "Trail", Location: "Utah", Description: "d", Images: oneImage()},
		{Name: "Trail", Location: "Utah", Description: "d", LengthMiles: 2},
		{Name: "  ", Location: "Utah", Description: "d", LengthMiles: 2, Images: oneImage()},
	}
	for i, input := range cases {
		_, err := svc.Create(context.Background(), input)
		var verr *gateway.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
	if gw.createFiles != 0 {
		t.Fatalf("rejected input must never reach the gateway")
	}
}

func TestCreateEncodesTier(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, nil)

	created, err := svc.Create(context.Background(), NewTrailInput{
		Name:        "Bright Angel Trail",
		Location:    "Grand Canyon National Park, Arizona",
		Difficulty:  TierHard,
		LengthMiles: 12,
		Description: "A challenging descent into the canyon.",
		Images:      oneImage(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if gw.createInput.Difficulty != 4 {
		t.Fatalf("Hard must encode to 4, got %v", gw.createInput.Difficulty)
	}
	if gw.createFiles != 1 {
		t.Fatalf("image parts not forwarded")
	}
	if created.ID != "9" || created.Difficulty != TierHard {
		t.Fatalf("created trail not normalized round-trip: %+v", created)
	}
}

func oneImage() []gateway.ImageFile {
	return []gateway.ImageFile{{Name: "trail.jpg", Reader: strings.NewReader("jpegdata")}}
}
