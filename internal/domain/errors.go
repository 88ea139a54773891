package domain

import "errors"

var (
	// ErrInvalidProfile is returned when body profile inputs fall outside the accepted domain
	ErrInvalidProfile = errors.New("invalid body profile")

	// ErrInvalidPortion is returned when a portion is zero, negative or not a number
	ErrInvalidPortion = errors.New("portion must be greater than zero")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrProfileNotFound is returned when no profile is stored for a user
	ErrProfileNotFound = errors.New("profile not found")

	// ErrStoreUnavailable is returned when the profile store cannot be reached
	ErrStoreUnavailable = errors.New("profile store unavailable")

	// ErrInvalidCatalog is returned when the food catalog cannot be loaded
	ErrInvalidCatalog = errors.New("invalid food catalog")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
