package domain

import (
	"errors"
	"fmt"
)

// ErrScopeMismatch is returned when a scope handle is popped (or mutated)
// while it is not the innermost open scope. This is a programming error in
// the caller's push/pop discipline.
var ErrScopeMismatch = errors.New("scope handle is not the innermost scope")

// ErrNodeNotFound is returned when a node ID cannot be found in the tree.
var ErrNodeNotFound = errors.New("node not found")

// ErrTrailNotFound is returned when a timeline trail does not exist in the store.
var ErrTrailNotFound = errors.New("trail not found")

// ValidationError reports invalid caller-supplied values (for example a
// negative duration). Invalid values are rejected, never clamped.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
