package review

import "sync"

// MutationState tracks one in-flight optimistic mutation.
type MutationState int

const (
	StateIdle MutationState = iota
	StatePending
	StateConfirmed
	StateFailed
)

// ListState holds the review list one screen fetched, plus the per-mutation
// state machine used to reconcile server-confirmed results back into it.
//
// Upvotes are confirm-then-apply: nothing is changed locally until the
// server answers, and the confirmed answer patches only the one review's
// count and voter set. Stale answers are fenced by a generation token so a
// response that lands after the screen re-fetched is ignored instead of
// merged into the wrong list. Response reordering between two in-flight
// upvotes on the same list remains possible; the last confirmation wins
// because counts are server snapshots, never local deltas.
type ListState struct {
	mu         sync.Mutex
	gen        uint64
	reviews    []Review
	submitting bool
	upvotes    map[string]MutationState
}

func NewListState() *ListState {
	return &ListState{upvotes: make(map[string]MutationState)}
}

// Reset replaces the list with a fresh fetch. The generation bump
// invalidates every token handed out before, and all mutation state clears.
func (s *ListState) Reset(reviews []Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.reviews = make([]Review, len(reviews))
	copy(s.reviews, reviews)
	s.submitting = false
	s.upvotes = make(map[string]MutationState)
}

// Generation returns the current fetch generation.
func (s *ListState) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Reviews returns a snapshot in fetch order. Voter sets are copied too so
// later reconciliations cannot reach into a snapshot already handed out.
func (s *ListState) Reviews() []Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Review, len(s.reviews))
	copy(out, s.reviews)
	for i := range out {
		voters := make([]string, len(out[i].Upvoters))
		copy(voters, out[i].Upvoters)
		out[i].Upvoters = voters
	}
	return out
}

// Sorted returns a snapshot sorted for display, descending by upvotes,
// ties in fetch order.
func (s *ListState) Sorted() []Review {
	return SortByUpvotes(s.Reviews())
}

// UpvoteState reports the mutation state for one review.
func (s *ListState) UpvoteState(reviewID string) MutationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upvotes[reviewID]
}

// BeginUpvote marks an upvote in flight and returns the token the eventual
// confirmation must carry. The UI is not blocked while pending.
func (s *ListState) BeginUpvote(reviewID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upvotes[reviewID] = StatePending
	return s.gen
}

// ConfirmUpvote merges a server-confirmed upvote result. Only the matched
// review's Upvotes and Upvoters change; every other field and every other
// review is left untouched. A stale token means the list was re-fetched
// while the call was outstanding; the result is dropped. A review missing
// from the list fails the mutation instead of leaving it pending.
func (s *ListState) ConfirmUpvote(token uint64, reviewID string, upvotes int, upvoted bool, currentUserID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.gen {
		return false
	}
	for i := range s.reviews {
		if s.reviews[i].ID != reviewID {
			continue
		}
		if upvotes < 0 {
			upvotes = 0
		}
		s.reviews[i].Upvotes = upvotes
		s.reviews[i].Upvoters = patchVoters(s.reviews[i].Upvoters, currentUserID, upvoted)
		s.upvotes[reviewID] = StateConfirmed
		return true
	}
	// The review vanished from the list; the mutation cannot stay pending.
	s.upvotes[reviewID] = StateFailed
	return false
}

// FailUpvote records a failed toggle. The list is unchanged; the caller
// surfaces the error.
func (s *ListState) FailUpvote(token uint64, reviewID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.gen {
		return
	}
	s.upvotes[reviewID] = StateFailed
}

// BeginSubmit claims the single submit slot. A second call before the first
// completes returns false, preventing concurrent duplicate submissions.
func (s *ListState) BeginSubmit() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return 0, false
	}
	s.submitting = true
	return s.gen, true
}

// ConfirmSubmit appends the server-confirmed review at the end of the list;
// display ordering is the sort projection's job. Stale tokens release the
// submit slot without appending.
func (s *ListState) ConfirmSubmit(token uint64, r Review) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if token != s.gen {
		return false
	}
	s.reviews = append(s.reviews, r)
	return true
}

// FailSubmit releases the submit slot so the user can retry. The list is
// unchanged.
func (s *ListState) FailSubmit(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

func patchVoters(voters []string, userID string, upvoted bool) []string {
	if userID == "" {
		return voters
	}
	if upvoted {
		for _, id := range voters {
			if id == userID {
				return voters
			}
		}
		return append(voters, userID)
	}
	out := make([]string, 0, len(voters))
	for _, id := range voters {
		if id != userID {
			out = append(out, id)
		}
	}
	return out
}
