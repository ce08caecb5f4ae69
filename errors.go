package primer

import (
	"errors"
	"fmt"
)

// Causes carried by a StructuralError.
var (
	// ErrDuplicateKey reports a key requested more than once in one cycle
	// while the scene is in debug mode.
	ErrDuplicateKey = errors.New("key requested twice in one cycle")
	// ErrKindChanged reports a name re-requested with a different node kind
	// in the same cycle.
	ErrKindChanged = errors.New("node kind changed mid-cycle")
	// ErrGroupCountMismatch reports two transition states with a different
	// number of groups.
	ErrGroupCountMismatch = errors.New("can't transition from states with different amount of groups")
	// ErrNodeNotInScope reports an operation on a node the container does not
	// manage.
	ErrNodeNotInScope = errors.New("node is not managed by this container")
)

// StructuralError is a caller bug that would corrupt animation state if it
// were allowed to continue. It is raised as a panic value by the reconciler
// and returned by Classify.
type StructuralError struct {
	// Op is the operation that failed (e.g. "Container.NextOrCreate").
	Op string
	// Detail names the offending key or sizes.
	Detail string
	// Err is the underlying cause, one of the Err* values above.
	Err error
}

func (e *StructuralError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("primer: %s: %v (%s)", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("primer: %s: %v", e.Op, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

func structuralPanic(op string, err error, format string, args ...any) {
	panic(&StructuralError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)})
}
