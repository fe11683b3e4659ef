package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition marks an out-of-range column/base or parameter handed
	// to a matrix operation.
	ErrPrecondition = errors.New("precondition violated")

	// ErrAllocation marks a matrix whose buffers cannot be allocated.
	ErrAllocation = errors.New("allocation failure")
)

// PreconditionError carries the offending operation and indices.
type PreconditionError struct {
	Op     string
	Col    int
	Base   int
	Detail string
}

func (e *PreconditionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("%s: col=%d base=%d out of range", e.Op, e.Col, e.Base)
}

// Is lets errors.Is(err, ErrPrecondition) match.
func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }
