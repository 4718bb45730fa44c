package timing

import (
	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/scope"
)

// Decision is the outcome of resolving one scope snapshot.
type Decision struct {
	// Disabled reports a hard veto: no animation may be produced,
	// regardless of providers or explicit traits.
	Disabled bool

	// Override reports that an explicit-traits scope was active. Mutations
	// under an override animate even on nodes outside any render tree.
	Override bool

	// Timing is the effective duration, delay and curve.
	Timing domain.Traits
}

// Resolver computes effective animation timing from scope snapshots. It is
// stateless apart from its configured baselines: resolving the same snapshot
// twice yields the same decision.
type Resolver struct {
	baselineDuration float64
	baselineCurve    domain.Curve
}

// Option configures the Resolver.
type Option func(*Resolver)

// WithBaseline overrides the process-wide default duration and curve used
// when no scope specifies timing.
func WithBaseline(duration float64, curve domain.Curve) Option {
	return func(r *Resolver) {
		r.baselineDuration = duration
		r.baselineCurve = curve
	}
}

// NewResolver creates a resolver with the standard baselines.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		baselineDuration: domain.BaselineDuration,
		baselineCurve:    domain.CurveEase,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// fields accumulates the first explicitly specified value per scope kind
// during the innermost-to-outermost walk.
type fields struct {
	duration *float64
	delay    *float64
	curve    *domain.Curve
}

func (f *fields) absorb(sc scope.Scope) {
	if f.duration == nil && sc.Duration != nil {
		f.duration = sc.Duration
	}
	if f.delay == nil && sc.Delay != nil {
		f.delay = sc.Delay
	}
	if f.curve == nil && sc.Curve != nil {
		f.curve = sc.Curve
	}
}

// Resolve computes the decision for one snapshot. It is a total function: it
// cannot fail, only decide.
func (r *Resolver) Resolve(snap scope.Snapshot) Decision {
	if snap.Disabled() {
		return Decision{Disabled: true}
	}

	var override, transaction, block fields
	for _, sc := range snap.Scopes() {
		switch sc.Kind {
		case scope.KindOverride:
			override.absorb(sc)
		case scope.KindTransaction:
			transaction.absorb(sc)
		case scope.KindBlock:
			block.absorb(sc)
		}
	}

	// Each field resolves independently through the kind precedence chain.
	pick := func(get func(*fields) *float64, baseline float64) float64 {
		for _, f := range []*fields{&override, &transaction, &block} {
			if v := get(f); v != nil {
				return *v
			}
		}
		return baseline
	}

	timing := domain.Traits{
		Duration: pick(func(f *fields) *float64 { return f.duration }, r.baselineDuration),
		Delay:    pick(func(f *fields) *float64 { return f.delay }, 0),
		Curve:    r.baselineCurve,
	}
	for _, f := range []*fields{&override, &transaction, &block} {
		if f.curve != nil {
			timing.Curve = *f.curve
			break
		}
	}

	return Decision{
		Override: snap.Has(scope.KindOverride),
		Timing:   timing,
	}
}
