package textutil

import "errors"

var (
	// ErrInvalidShingleLength is returned when a shingle length is not positive.
	ErrInvalidShingleLength = errors.New("shingle length must be positive")

	// ErrUnknownMethod is returned when a similarity method name is not recognized.
	ErrUnknownMethod = errors.New("unknown similarity method")
)
