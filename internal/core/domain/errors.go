package domain

import "errors"

// Failure taxonomy for the public operations. Handlers map each of these to
// exactly one HTTP status; anything else is treated as ErrStoreUnavailable.
var (
	// ErrUnauthorized: no valid caller identity was presented.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUserNotFound: the caller proved identity but no account exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrPriceNotFound: no subscription price is configured.
	ErrPriceNotFound = errors.New("price not found")

	// ErrStoreUnavailable: an infrastructure failure; the cause is logged
	// server-side and never echoed to the client.
	ErrStoreUnavailable = errors.New("store unavailable")
)
