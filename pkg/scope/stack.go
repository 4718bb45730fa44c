package scope

import (
	"fmt"
	"log/slog"

	"github.com/avezina/kinetic/internal/logging"
	"github.com/avezina/kinetic/pkg/domain"
)

type frame struct {
	scope Scope
	id    uint64
}

// Stack is the ambient scope stack. It is exclusively owned by the goroutine
// that mutates the render tree; it performs no locking of its own.
type Stack struct {
	frames []frame
	nextID uint64
	logger *slog.Logger
}

// Option configures the Stack.
type Option func(*Stack)

// WithLogger configures a logger for degraded-mode recovery events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stack) {
		s.logger = logger
	}
}

// NewStack creates an empty scope stack.
func NewStack(opts ...Option) *Stack {
	s := &Stack{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push opens sc as the new innermost scope and returns its handle.
func (s *Stack) Push(sc Scope) Handle {
	s.nextID++
	s.frames = append(s.frames, frame{scope: sc, id: s.nextID})
	return Handle{id: s.nextID, depth: len(s.frames)}
}

// Pop closes the scope identified by h. If h is not the innermost frame the
// pop is a nesting bug: Pop returns domain.ErrScopeMismatch and, rather than
// leaving the stack corrupted, force-pops every frame above h (and h itself)
// when h is still present.
func (s *Stack) Pop(h Handle) error {
	if n := len(s.frames); n > 0 && s.frames[n-1].id == h.id {
		s.frames = s.frames[:n-1]
		return nil
	}

	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].id == h.id {
			s.logger.Error("scope popped out of order; discarding inner frames",
				"depth", h.depth, "discarded", len(s.frames)-i)
			s.frames = s.frames[:i]
			return fmt.Errorf("pop at depth %d: %w", h.depth, domain.ErrScopeMismatch)
		}
	}
	return fmt.Errorf("pop of closed scope (depth %d): %w", h.depth, domain.ErrScopeMismatch)
}

// SetDisable sets the disable-actions flag on the scope identified by h.
// Only the innermost scope can be mutated.
func (s *Stack) SetDisable(h Handle, disabled bool) error {
	top, err := s.top(h)
	if err != nil {
		return err
	}
	top.scope.DisableActions = Bool(disabled)
	return nil
}

// SetTiming sets explicit duration and curve on the scope identified by h.
// Only the innermost scope can be mutated.
func (s *Stack) SetTiming(h Handle, duration float64, curve domain.Curve) error {
	if duration < 0 {
		return &domain.ValidationError{Field: "duration", Reason: fmt.Sprintf("must be >= 0, got %v", duration)}
	}
	top, err := s.top(h)
	if err != nil {
		return err
	}
	// Fresh pointers on every write: snapshots taken earlier keep the
	// values they saw.
	top.scope.Duration = Float(duration)
	top.scope.Curve = CurveOf(curve)
	return nil
}

func (s *Stack) top(h Handle) (*frame, error) {
	n := len(s.frames)
	if n == 0 || s.frames[n-1].id != h.id {
		return nil, domain.ErrScopeMismatch
	}
	return &s.frames[n-1], nil
}

// Depth returns the number of open scopes.
func (s *Stack) Depth() int { return len(s.frames) }

// IsOpen reports whether any scope is open.
func (s *Stack) IsOpen() bool { return len(s.frames) > 0 }

// Disabled returns the effective disable-actions flag: the innermost scope
// that explicitly sets it wins; false when no scope sets it.
func (s *Stack) Disabled() bool {
	return s.Snapshot().Disabled()
}

// Timing returns the nearest explicitly specified duration and curve,
// resolved independently per field, with process baselines as defaults.
// This is the stack's own plain accessor; kind-aware precedence lives in the
// timing resolver.
func (s *Stack) Timing() (float64, domain.Curve) {
	duration, curve := domain.BaselineDuration, domain.CurveEase
	durationSet, curveSet := false, false
	for i := len(s.frames) - 1; i >= 0; i-- {
		sc := s.frames[i].scope
		if !durationSet && sc.Duration != nil {
			duration, durationSet = *sc.Duration, true
		}
		if !curveSet && sc.Curve != nil {
			curve, curveSet = *sc.Curve, true
		}
		if durationSet && curveSet {
			break
		}
	}
	return duration, curve
}

// Snapshot returns an immutable copy of the stack, innermost scope first.
// Scope pointer fields are never written through after a push (mutators
// replace the pointers), so sharing the pointees is safe.
func (s *Stack) Snapshot() Snapshot {
	scopes := make([]Scope, 0, len(s.frames))
	for i := len(s.frames) - 1; i >= 0; i-- {
		scopes = append(scopes, s.frames[i].scope)
	}
	return Snapshot{scopes: scopes}
}
