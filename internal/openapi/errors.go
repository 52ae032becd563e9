package openapi

import "errors"

var (
	ErrInvalidDocument = errors.New("invalid api document")
	ErrFetchFailed     = errors.New("failed to fetch api document")
)
