package review

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/trailhead/trailhead/internal/gateway"
)

func seedState() *ListState {
	s := NewListState()
	s.Reset([]Review{
		{ID: "1", AuthorID: "2", AuthorName: "mountaineer", Rating: 5, Comment: "Breathtaking!", Upvotes: 24, Upvoters: []string{"1", "3", "4"}, CreatedAt: "2024-01-16T15:30:00Z"},
		{ID: "2", AuthorID: "3", AuthorName: "adventurer", Rating: 4.5, Comment: "Crowded.", Upvotes: 18, Upvoters: []string{"1"}, CreatedAt: "2024-01-18T11:20:00Z"},
	})
	return s
}

func TestConfirmUpvotePatchesOnlyCountAndVoters(t *testing.T) {
	s := seedState()
	before := s.Reviews()

	token := s.BeginUpvote("2")
	if s.UpvoteState("2") != StatePending {
		t.Fatalf("expected pending state")
	}
	if !s.ConfirmUpvote(token, "2", 19, true, "7") {
		t.Fatalf("confirmation rejected")
	}

	after := s.Reviews()
	if after[1].Upvotes != 19 || !after[1].UpvotedBy("7") {
		t.Fatalf("patch not applied: %+v", after[1])
	}
	// Every other field of the patched review is untouched.
	patched := after[1]
	patched.Upvotes = before[1].Upvotes
	patched.Upvoters = before[1].Upvoters
	if !reflect.DeepEqual(patched, before[1]) {
		t.Fatalf("fields beyond count/voters changed: %+v vs %+v", after[1], before[1])
	}
	// The other review is untouched entirely.
	if !reflect.DeepEqual(after[0], before[0]) {
		t.Fatalf("unrelated review changed: %+v", after[0])
	}
	if s.UpvoteState("2") != StateConfirmed {
		t.Fatalf("expected confirmed state")
	}
}

func TestConfirmUpvoteRemovesVoterOnUntoggle(t *testing.T) {
	s := seedState()
	token := s.BeginUpvote("1")
	s.ConfirmUpvote(token, "1", 23, false, "3")
	got := s.Reviews()[0]
	if got.UpvotedBy("3") || got.Upvotes != 23 {
		t.Fatalf("untoggle not reconciled: %+v", got)
	}
	if !got.UpvotedBy("1") || !got.UpvotedBy("4") {
		t.Fatalf("other voters must survive: %v", got.Upvoters)
	}
}

func TestFailedUpvoteLeavesListUnchanged(t *testing.T) {
	s := seedState()
	before := s.Reviews()
	token := s.BeginUpvote("1")
	s.FailUpvote(token, "1")
	if !reflect.DeepEqual(before, s.Reviews()) {
		t.Fatalf("failure must not touch the list")
	}
	if s.UpvoteState("1") != StateFailed {
		t.Fatalf("expected failed state")
	}
}

func TestConfirmUpvoteUnknownReviewFailsMutation(t *testing.T) {
	s := seedState()
	before := s.Reviews()

	token := s.BeginUpvote("999")
	if s.ConfirmUpvote(token, "999", 5, true, "1") {
		t.Fatalf("confirmation for a missing review must be rejected")
	}
	if s.UpvoteState("999") != StateFailed {
		t.Fatalf("missing review must fail the mutation, got state %v", s.UpvoteState("999"))
	}
	if !reflect.DeepEqual(s.Reviews(), before) {
		t.Fatalf("list changed on a rejected confirmation")
	}
}

func TestStaleConfirmationDroppedAfterRefetch(t *testing.T) {
	s := seedState()
	token := s.BeginUpvote("1")

	// Screen re-fetches while the toggle is outstanding.
	s.Reset([]Review{{ID: "1", Upvotes: 30, Upvoters: []string{}}})

	if s.ConfirmUpvote(token, "1", 25, true, "7") {
		t.Fatalf("stale confirmation must be dropped")
	}
	if got := s.Reviews()[0]; got.Upvotes != 30 || len(got.Upvoters) != 0 {
		t.Fatalf("stale merge corrupted refetched list: %+v", got)
	}
}

// Two in-flight toggles whose responses land out of issue order: the later
// confirmation wins because counts are server snapshots, not local deltas.
// The count never double-applies.
func TestReorderedResponsesLastSnapshotWins(t *testing.T) {
	s := seedState()
	tokenFirst := s.BeginUpvote("1")
	tokenSecond := s.BeginUpvote("1")

	// Second toggle's response (un-vote, count 24) arrives first...
	s.ConfirmUpvote(tokenSecond, "1", 24, false, "7")
	// ...then the first toggle's response (vote, count 25) lands late.
	s.ConfirmUpvote(tokenFirst, "1", 25, true, "7")

	got := s.Reviews()[0]
	if got.Upvotes != 25 || !got.UpvotedBy("7") {
		t.Fatalf("expected the last-applied snapshot, got %+v", got)
	}
}

func TestConfirmSubmitAppendsAtEnd(t *testing.T) {
	s := seedState()
	token, ok := s.BeginSubmit()
	if !ok {
		t.Fatalf("first submit must acquire the slot")
	}
	if _, ok := s.BeginSubmit(); ok {
		t.Fatalf("concurrent submit must be refused")
	}
	s.ConfirmSubmit(token, Review{ID: "9", Upvotes: 99})
	got := s.Reviews()
	if got[len(got)-1].ID != "9" {
		t.Fatalf("confirmed review must append at the end, got %v", got)
	}
	if _, ok := s.BeginSubmit(); !ok {
		t.Fatalf("slot must free after confirmation")
	}
}

func TestFailSubmitReleasesSlot(t *testing.T) {
	s := seedState()
	before := s.Reviews()
	token, _ := s.BeginSubmit()
	s.FailSubmit(token)
	if !reflect.DeepEqual(before, s.Reviews()) {
		t.Fatalf("failed submit must leave the list unchanged")
	}
	if _, ok := s.BeginSubmit(); !ok {
		t.Fatalf("slot must free after failure so the user can retry")
	}
}

// Service-level double for confirm-then-apply behavior.
type fakeReviewGateway struct {
	mu      sync.Mutex
	page    gateway.ReviewPage
	upvote  gateway.UpvoteResult
	created map[string]any
	err     error
	calls   int
}

func (f *fakeReviewGateway) ListReviews(context.Context, string) (gateway.ReviewPage, error) {
	return f.page, f.err
}

func (f *fakeReviewGateway) CreateReview(context.Context, string, float64, string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func (f *fakeReviewGateway) ToggleUpvote(context.Context, string) (gateway.UpvoteResult, error) {
	if f.err != nil {
		return gateway.UpvoteResult{}, f.err
	}
	return f.upvote, nil
}

func (f *fakeReviewGateway) ImageOrigin() string { return "http://backend:8080" }

func TestUpvoteConfirmThenApply(t *testing.T) {
	gw := &fakeReviewGateway{upvote: gateway.UpvoteResult{ReviewID: "1", Upvotes: 25, Upvoted: true}}
	svc := NewService(gw, nil)
	s := seedState()

	if err := svc.Upvote(context.Background(), s, "1", "7"); err != nil {
		t.Fatalf("upvote: %v", err)
	}
	got := s.Reviews()[0]
	if got.Upvotes != 25 || !got.UpvotedBy("7") {
		t.Fatalf("confirmed result not applied: %+v", got)
	}
}

func TestUpvoteFailureSurfacesError(t *testing.T) {
	gw := &fakeReviewGateway{err: errors.New("boom")}
	svc := NewService(gw, nil)
	s := seedState()
	before := s.Reviews()

	if err := svc.Upvote(context.Background(), s, "1", "7"); err == nil {
		t.Fatalf("expected error")
	}
	if !reflect.DeepEqual(before, s.Reviews()) {
		t.Fatalf("failed toggle must not mutate the list")
	}
}

func TestSubmitValidation(t *testing.T) {
	gw := &fakeReviewGateway{created: map[string]any{"id": "9"}}
	svc := NewService(gw, nil)
	s := seedState()

	var verr *gateway.ValidationError
	if _, err := svc.Submit(context.Background(), s, "1", 0, "fine trail", "7"); !errors.As(err, &verr) {
		t.Fatalf("zero rating must be rejected, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), s, "1", 4.3, "fine trail", "7"); !errors.As(err, &verr) {
		t.Fatalf("non half-star rating must be rejected, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), s, "1", 4.5, "   ", "7"); !errors.As(err, &verr) {
		t.Fatalf("blank comment must be rejected, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatalf("rejected input must never reach the gateway")
	}

	if _, err := svc.Submit(context.Background(), s, "1", 4.5, "Great trail!", "7"); err != nil {
		t.Fatalf("valid submit: %v", err)
	}
	got := s.Reviews()
	if got[len(got)-1].ID != "9" {
		t.Fatalf("created review not appended: %v", got)
	}
}
