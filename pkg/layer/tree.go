package layer

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/avezina/kinetic/internal/logging"
	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/provider"
	"github.com/avezina/kinetic/pkg/scope"
	"github.com/avezina/kinetic/pkg/timing"
)

// ScopeSource supplies the ambient scope stack snapshot at write time.
// *scope.Stack satisfies it.
type ScopeSource interface {
	Snapshot() scope.Snapshot
}

// write is one pending property mutation with the scope snapshot captured
// when it was issued.
type write struct {
	node  *Node
	key   string
	value any
	snap  scope.Snapshot
}

// Tree owns the render nodes and mediates every property mutation. Writes
// issued while a transaction scope is open are batched until Commit; outside
// any transaction the ambient top-level transaction commits each write
// immediately.
type Tree struct {
	scopes   ScopeSource
	resolver *timing.Resolver
	implicit provider.Provider // installed by tree membership
	hooks    domain.LifecycleHooks
	logger   *slog.Logger

	nodes   map[string]*Node
	pending []write
}

// Option configures the Tree.
type Option func(*Tree)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithHooks registers observability hooks fired on every resolution and commit.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(t *Tree) {
		t.hooks = hooks
	}
}

// WithImplicitProvider replaces the provider installed by tree membership
// (default: provider.Basic()).
func WithImplicitProvider(p provider.Provider) Option {
	return func(t *Tree) {
		t.implicit = p
	}
}

// NewTree creates a tree resolving against the given scope source.
func NewTree(scopes ScopeSource, resolver *timing.Resolver, opts ...Option) *Tree {
	t := &Tree{
		scopes:   scopes,
		resolver: resolver,
		implicit: provider.Basic(),
		logger:   logging.NewNop(),
		nodes:    make(map[string]*Node),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Attach adds the node to the active tree. Membership installs the implicit
// default provider unless the node carries an explicit one.
func (t *Tree) Attach(n *Node) {
	n.attached = true
	t.nodes[n.id] = n
}

// Detach removes the node from the tree. The implicit provider no longer
// applies; an explicitly attached provider stays with the node. The node
// remains known to the tree for inspection.
func (t *Tree) Detach(n *Node) {
	n.attached = false
}

// Node looks up a known node by ID.
func (t *Tree) Node(id string) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %q: %w", id, domain.ErrNodeNotFound)
	}
	return n, nil
}

// Nodes returns every node the tree has seen, sorted by ID.
func (t *Tree) Nodes() []*Node {
	ids := make([]string, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.nodes[id])
	}
	return out
}

// Set mutates a property. The scope snapshot is captured here, at issue
// time, and travels with the write; a transaction scope closing before
// Commit does not change the timing this write resolves with.
//
// Re-writing a key with a batch pending updates the batched write in place:
// the key resolves once per commit, with the timing of its latest mutation.
func (t *Tree) Set(n *Node, key string, value any) {
	if _, known := t.nodes[n.id]; !known {
		t.nodes[n.id] = n
	}

	snap := t.scopes.Snapshot()
	if !snap.Has(scope.KindTransaction) {
		// Ambient top-level transaction: commits immediately.
		ev := t.resolve(write{node: n, key: key, value: value, snap: snap})
		t.fire(ev)
		return
	}

	for i := range t.pending {
		if t.pending[i].node == n && t.pending[i].key == key {
			t.pending[i].value = value
			t.pending[i].snap = snap
			return
		}
	}
	t.pending = append(t.pending, write{node: n, key: key, value: value, snap: snap})
}

// Pending returns the number of batched writes.
func (t *Tree) Pending() int { return len(t.pending) }

// Commit flushes the batched writes in issue order, resolving each against
// its captured snapshot.
func (t *Tree) Commit() domain.CommitEvent {
	batch := t.pending
	t.pending = nil

	ev := domain.CommitEvent{Timestamp: time.Now(), Writes: len(batch)}
	for _, w := range batch {
		rev := t.resolve(w)
		t.fire(rev)
		switch rev.Outcome {
		case domain.OutcomeResolved:
			ev.Resolved++
		case domain.OutcomeVetoed:
			ev.Vetoed++
		case domain.OutcomeSkipped:
			ev.Skipped++
		}
	}

	if t.hooks.OnCommit != nil {
		t.hooks.OnCommit(&ev)
	}
	return ev
}

// resolve applies one write and decides its animation.
func (t *Tree) resolve(w write) *domain.ResolveEvent {
	dec := t.resolver.Resolve(w.snap)
	from := w.node.values[w.key]
	w.node.values[w.key] = w.value

	ev := &domain.ResolveEvent{
		Timestamp: time.Now(),
		Node:      w.node.id,
		Key:       w.key,
	}

	if dec.Disabled {
		ev.Outcome = domain.OutcomeVetoed
		return ev
	}

	p := w.node.provider
	if p == nil {
		switch {
		case w.node.attached:
			p = t.implicit
		case dec.Override:
			// The coordinator installed explicit timing before this
			// mutation; tree membership is not required.
			p = t.implicit
		default:
			ev.Outcome = domain.OutcomeSkipped
			return ev
		}
	}

	anim, ok := p.Action(w.key, from, w.value, dec.Timing)
	if !ok || anim == nil {
		ev.Outcome = domain.OutcomeSkipped
		return ev
	}

	w.node.put(*anim)
	ev.Outcome = domain.OutcomeResolved
	ev.Animation = anim
	return ev
}

func (t *Tree) fire(ev *domain.ResolveEvent) {
	t.logger.Debug("mutation resolved",
		"node", ev.Node, "key", ev.Key, "outcome", ev.Outcome)

	switch ev.Outcome {
	case domain.OutcomeResolved:
		if t.hooks.OnResolve != nil {
			t.hooks.OnResolve(ev)
		}
	case domain.OutcomeVetoed:
		if t.hooks.OnVeto != nil {
			t.hooks.OnVeto(ev)
		}
	case domain.OutcomeSkipped:
		if t.hooks.OnSkip != nil {
			t.hooks.OnSkip(ev)
		}
	}
}
