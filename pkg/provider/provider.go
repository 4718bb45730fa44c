package provider

import "github.com/avezina/kinetic/pkg/domain"

// Provider produces or vetoes an animation for a single property mutation.
// The timing argument is the ambient timing already resolved from the scope
// stack; a provider may use it as-is, adjust it, or veto the animation by
// returning false.
type Provider interface {
	Action(key string, from, to any, timing domain.Traits) (*domain.Animation, bool)
}

// ActionFunc adapts a function to the Provider interface.
type ActionFunc func(key string, from, to any, timing domain.Traits) (*domain.Animation, bool)

// Action calls fn.
func (fn ActionFunc) Action(key string, from, to any, timing domain.Traits) (*domain.Animation, bool) {
	return fn(key, from, to, timing)
}

type noneProvider struct{}

func (noneProvider) Action(string, any, any, domain.Traits) (*domain.Animation, bool) {
	return nil, false
}

type basicProvider struct{}

func (basicProvider) Action(key string, from, to any, timing domain.Traits) (*domain.Animation, bool) {
	return &domain.Animation{
		Key:      key,
		From:     from,
		To:       to,
		Duration: timing.Duration,
		Delay:    timing.Delay,
		Curve:    timing.Curve,
	}, true
}

// None returns a provider that never animates. Attaching it to a node
// suppresses implicit animations for that node entirely.
func None() Provider { return noneProvider{} }

// Basic returns the default provider: it materializes an animation with the
// ambient timing unchanged. The returned provider is stateless; one instance
// may be shared across nodes, which is how the animator's shared provider is
// built.
func Basic() Provider { return basicProvider{} }

// Func returns a custom provider backed by fn.
func Func(fn ActionFunc) Provider { return fn }
