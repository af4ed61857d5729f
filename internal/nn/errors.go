package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidTopology       = errors.New("invalid topology")
	ErrInputLayoutMismatch   = errors.New("input layout mismatch")
	ErrTargetLayoutMismatch  = errors.New("target layout mismatch")
	ErrConnectionOutOfBounds = errors.New("connection index out of bounds")
)

// LayoutError describes a length disagreement between a vector handed to the
// network and the layer that receives it.
type LayoutError struct {
	Kind     error  // One of the sentinel errors above
	Op       string // Operation that detected the mismatch (e.g. "evaluate")
	Expected int
	Got      int
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: %v: expected %d values, got %d", e.Op, e.Kind, e.Expected, e.Got)
}

// Unwrap lets errors.Is match the sentinel kind.
func (e *LayoutError) Unwrap() error {
	return e.Kind
}

func layoutError(kind error, op string, expected, got int) error {
	return &LayoutError{Kind: kind, Op: op, Expected: expected, Got: got}
}
