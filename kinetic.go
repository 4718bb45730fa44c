package kinetic

import (
	"context"
	"io"
	"log/slog"

	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/layer"
	"github.com/avezina/kinetic/pkg/observability"
	"github.com/avezina/kinetic/pkg/ports"
	"github.com/avezina/kinetic/pkg/provider"
	"github.com/avezina/kinetic/pkg/scope"
	"github.com/avezina/kinetic/pkg/timing"
)

// Version is the current release of kinetic.
const Version = "0.4.1"

// Re-exported domain types so typical callers only import the root package.
type Traits = domain.Traits

// Curve is the easing specification used by Traits.
type Curve = domain.Curve

// Common curves.
var (
	CurveLinear    = domain.CurveLinear
	CurveEase      = domain.CurveEase
	CurveEaseIn    = domain.CurveEaseIn
	CurveEaseOut   = domain.CurveEaseOut
	CurveEaseInOut = domain.CurveEaseInOut
)

// Animator is the high-level entry point. It owns the scope stack and the
// render tree, wires the resolver, and exposes the three ways of opening
// scopes: Begin (transaction), Run (declarative block) and Animate (explicit
// per-call traits).
//
// All methods must be called from the single goroutine that owns the render
// tree; see the package documentation on the concurrency model.
type Animator struct {
	stack    *scope.Stack
	tree     *layer.Tree
	resolver *timing.Resolver
	shared   provider.Provider
	logger   *slog.Logger

	recorder ports.TimelineStore
	trail    string
	metrics  *observability.Metrics
	hooks    domain.LifecycleHooks

	baselineDuration float64
	baselineCurve    domain.Curve
}

// Option defines a functional option for configuring the Animator.
type Option func(*Animator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Animator) {
		a.logger = logger
	}
}

// WithHooks registers observability callbacks fired on every resolution.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Animator) {
		a.hooks = hooks
	}
}

// WithRecorder persists every resolution outcome to the given timeline trail.
func WithRecorder(store ports.TimelineStore, trail string) Option {
	return func(a *Animator) {
		a.recorder = store
		a.trail = trail
	}
}

// WithMetrics wires Prometheus collectors into the resolution path.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *Animator) {
		a.metrics = m
	}
}

// WithBaseline overrides the default duration and curve used when no scope
// specifies timing.
func WithBaseline(duration float64, curve domain.Curve) Option {
	return func(a *Animator) {
		a.baselineDuration = duration
		a.baselineCurve = curve
	}
}

// New initializes an Animator.
func New(opts ...Option) *Animator {
	a := &Animator{
		shared:           provider.Basic(),
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		baselineDuration: domain.BaselineDuration,
		baselineCurve:    domain.CurveEase,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.stack = scope.NewStack(scope.WithLogger(a.logger))
	a.resolver = timing.NewResolver(timing.WithBaseline(a.baselineDuration, a.baselineCurve))
	a.tree = layer.NewTree(a.stack, a.resolver,
		layer.WithLogger(a.logger),
		layer.WithHooks(a.composeHooks()),
	)
	return a
}

// Tree returns the render tree.
func (a *Animator) Tree() *layer.Tree { return a.tree }

// Attach creates a node and adds it to the active tree.
func (a *Animator) Attach(id string) *layer.Node {
	n := layer.NewNode(id)
	a.tree.Attach(n)
	return n
}

// Node looks up a known node by ID.
func (a *Animator) Node(id string) (*layer.Node, error) { return a.tree.Node(id) }

// Nodes returns every known node, sorted by ID.
func (a *Animator) Nodes() []*layer.Node { return a.tree.Nodes() }

// Set mutates a property on a node through the render tree.
func (a *Animator) Set(n *layer.Node, key string, value any) {
	a.tree.Set(n, key, value)
}

// Shared returns the animator's shareable, stateless provider. Attaching it
// to a node is an explicit per-node relation; it gives headless nodes
// implicit-animation behavior without tree membership.
func (a *Animator) Shared() provider.Provider { return a.shared }

// Animate runs body with an explicit-traits override scope open. The
// override supersedes ambient transaction and block timing, but it cannot
// re-enable actions: an enclosing disabled scope still vetoes.
//
// The override scope is popped on every exit path, including panics
// propagating out of body.
func (a *Animator) Animate(traits Traits, body func()) (err error) {
	tr, err := domain.NewTraits(traits.Duration, traits.Delay, traits.Curve)
	if err != nil {
		return err
	}

	h := a.stack.Push(scope.Scope{
		Kind:     scope.KindOverride,
		Duration: scope.Float(tr.Duration),
		Delay:    scope.Float(tr.Delay),
		Curve:    scope.CurveOf(tr.Curve),
	})
	defer func() {
		if perr := a.stack.Pop(h); perr != nil && err == nil {
			err = perr
		}
	}()

	body()
	return nil
}

// Run runs body with a declarative block scope open. Block timing applies
// only when no transaction specifies timing; see the timing package for the
// precedence rules.
func (a *Animator) Run(duration, delay float64, curve Curve, body func()) (err error) {
	tr, err := domain.NewTraits(duration, delay, curve)
	if err != nil {
		return err
	}

	h := a.stack.Push(scope.Scope{
		Kind:     scope.KindBlock,
		Duration: scope.Float(tr.Duration),
		Delay:    scope.Float(tr.Delay),
		Curve:    scope.CurveOf(tr.Curve),
	})
	defer func() {
		if perr := a.stack.Pop(h); perr != nil && err == nil {
			err = perr
		}
	}()

	body()
	return nil
}

// Trails lists the recorded timeline trails. Empty without a recorder.
func (a *Animator) Trails(ctx context.Context) ([]string, error) {
	if a.recorder == nil {
		return nil, nil
	}
	return a.recorder.Trails(ctx)
}

// Trail returns one recorded trail's records.
func (a *Animator) Trail(ctx context.Context, name string) ([]domain.Record, error) {
	if a.recorder == nil {
		return nil, domain.ErrTrailNotFound
	}
	return a.recorder.List(ctx, name)
}

// composeHooks fans a resolution event out to the recorder, the metrics
// collectors, and the caller's hooks, in that order.
func (a *Animator) composeHooks() domain.LifecycleHooks {
	user := a.hooks

	onOutcome := func(next func(*domain.ResolveEvent)) func(*domain.ResolveEvent) {
		return func(ev *domain.ResolveEvent) {
			a.record(ev)
			if a.metrics != nil {
				a.metrics.ObserveResolve(ev)
			}
			if next != nil {
				next(ev)
			}
		}
	}

	return domain.LifecycleHooks{
		OnResolve: onOutcome(user.OnResolve),
		OnVeto:    onOutcome(user.OnVeto),
		OnSkip:    onOutcome(user.OnSkip),
		OnCommit: func(ev *domain.CommitEvent) {
			if a.metrics != nil {
				a.metrics.ObserveCommit(ev)
			}
			if user.OnCommit != nil {
				user.OnCommit(ev)
			}
		},
	}
}

func (a *Animator) record(ev *domain.ResolveEvent) {
	if a.recorder == nil {
		return
	}
	rec := domain.Record{
		Timestamp: ev.Timestamp,
		Node:      ev.Node,
		Key:       ev.Key,
		Outcome:   ev.Outcome,
		Animation: ev.Animation,
	}
	if err := a.recorder.Append(context.Background(), a.trail, rec); err != nil {
		a.logger.Error("failed to record resolution", "trail", a.trail, "err", err)
	}
}
