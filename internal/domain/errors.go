package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired signals a 401 from the API, or a missing/expired token
	// detected before the call was made.
	ErrAuthRequired = errors.New("authentication required")

	// ErrDurationUnavailable signals a duration bucket whose rate is zero or
	// unset for the selected product.
	ErrDurationUnavailable = errors.New("duration not offered for this product")

	// Coupon pre-check failures, raised before any network call.
	ErrEmptyCouponCode  = errors.New("coupon code is empty")
	ErrEmptyOrder       = errors.New("cannot apply a coupon to an empty order")
	ErrCouponBelowMin   = errors.New("order total is below the coupon minimum")
	ErrInvalidOrExpired = errors.New("coupon is invalid or expired")
)

// ValidationError is a client-side precondition failure. It always blocks the
// action before a network call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// ServerError carries a non-2xx API response. Message is the server's message
// field when present, or a generic fallback.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Message)
}

// IsServerRejection reports whether err is a 4xx/5xx surfaced from the API.
func IsServerRejection(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}
