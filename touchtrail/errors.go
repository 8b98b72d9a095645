package touchtrail

import "github.com/pkg/errors"

var (
	// ErrInvalidGeometry is returned for bounding boxes with negative extents or non-finite fields
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrIdentifierExhausted is returned when no free identifier could be generated within the retry limit
	ErrIdentifierExhausted = errors.New("identifier space exhausted")
	// ErrInvalidIdentifier is returned when an object is registered under uuid.Nil
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrNotImplemented marks extension points without defined behavior
	ErrNotImplemented = errors.New("not implemented")
)
