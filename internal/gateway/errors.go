package gateway

// AuthError covers invalid credentials and rejected signups.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ValidationError covers field values the backend (or the client-side
// pre-check) rejected. Message carries the backend's wording when present.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// FetchError covers network failures and non-2xx responses with no more
// specific meaning. Status is 0 for transport-level failures.
type FetchError struct {
	Op      string
	Status  int
	Message string
}

func (e *FetchError) Error() string { return e.Message }
