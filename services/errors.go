package services

import "errors"

// Validation errors surfaced to the presentation layer. State is never
// mutated when one of these is returned.
var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNotEligible     = errors.New("ordering is not available right now")
	ErrDuplicateName   = errors.New("an item with this name already exists")
	ErrUnknownToken    = errors.New("unknown or expired confirmation token")
)
