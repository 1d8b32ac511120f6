package catalog

import "errors"

// Catalog errors.
var (
	ErrNotFound    = errors.New("prompt not found")
	ErrDuplicateID = errors.New("duplicate prompt id")
	ErrInvalid     = errors.New("invalid catalog")
)
