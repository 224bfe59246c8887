package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is returned when a request cannot be realized as a valid solid.
	ErrInfeasible = errors.New("infeasible geometry")

	// ErrUnsupported is returned for operations outside the modeled solid class.
	ErrUnsupported = errors.New("unsupported geometry operation")
)

// Error describes a failed construction step.
type Error struct {
	Op     string // e.g. "box", "cut", "chamfer"
	Reason string
	kind   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("geom: %s: %s", e.Op, e.Reason)
}

// Unwrap exposes the error class (ErrInfeasible or ErrUnsupported).
func (e *Error) Unwrap() error {
	return e.kind
}

func infeasible(op, format string, args ...any) error {
	return &Error{Op: op, Reason: fmt.Sprintf(format, args...), kind: ErrInfeasible}
}

func unsupported(op, format string, args ...any) error {
	return &Error{Op: op, Reason: fmt.Sprintf(format, args...), kind: ErrUnsupported}
}
