package inventory

import "errors"

// Domain-specific errors for the inventory package.
var (
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrDuplicateName     = errors.New("inventory name already exists")
	ErrInvalidStrategy   = errors.New("invalid giveaway strategy")
	ErrInvalidColor      = errors.New("invalid shirt color")
	// ErrEmptyCollection is a caller bug: the most-recent strategy needs stock.
	ErrEmptyCollection = errors.New("inventory has no shirts")
)
