package index

import "errors"

var (
	ErrEmptyName        = errors.New("collection name must not be empty")
	ErrEndpointNotFound = errors.New("endpoint not found")
)
