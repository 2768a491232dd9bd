package store

import "errors"

var (
	// ErrNotFound is returned when a product or order id has no match.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus is returned for a status outside the four-value enum.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrMissingCustomerFields is returned when a normalized order payload
	// is missing the customer name, phone, address or city.
	ErrMissingCustomerFields = errors.New("missing required customer fields")

	// ErrConfigUnavailable is returned when config.json is absent or
	// malformed. Callers must treat this as a hard failure; authentication
	// never proceeds without a readable config.
	ErrConfigUnavailable = errors.New("store config unavailable")
)
