package scoring

import "errors"

var (
	// ErrInvalidTopN indicates a top-N request with n below 1.
	ErrInvalidTopN = errors.New("top must be at least 1")

	// ErrStaleCandidate indicates the candidate vanished mid-computation.
	// It is handled per candidate and never fails a whole ranking batch.
	ErrStaleCandidate = errors.New("stale candidate")

	// ErrNotConfigured indicates the service is missing a dependency.
	ErrNotConfigured = errors.New("scoring service not configured")
)

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeNotFound   = "NOT_FOUND"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)
