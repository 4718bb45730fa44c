package scope

import "github.com/avezina/kinetic/pkg/domain"

// Kind identifies which collaborator opened a scope. The resolver gives the
// kinds different precedence regardless of nesting order.
type Kind string

const (
	// KindTransaction is a low-level batching scope (begin/commit).
	KindTransaction Kind = "transaction"
	// KindBlock is a declarative animation-block scope.
	KindBlock Kind = "block"
	// KindOverride is the animator's explicit per-call traits scope.
	KindOverride Kind = "override"
)

// Scope is one ambient frame. All policy fields are optional: a nil field
// means "not specified here, inherit from enclosing scopes". A scope opened
// without timing simply falls through to its parent for those fields.
type Scope struct {
	Kind Kind

	// DisableActions is tri-state. Only a scope that explicitly sets the
	// flag participates in the disable decision; override scopes leave it
	// nil so an enclosing disabled transaction still vetoes.
	DisableActions *bool

	Duration *float64
	Delay    *float64
	Curve    *domain.Curve
}

// Bool, Float and CurveOf are small helpers for building scopes with
// optional fields.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// CurveOf returns a pointer to c.
func CurveOf(c domain.Curve) *domain.Curve { return &c }

// Handle identifies one pushed frame. The zero Handle never matches.
type Handle struct {
	id    uint64
	depth int
}

// Depth returns the 1-based stack depth at which the handle was issued.
func (h Handle) Depth() int { return h.depth }
