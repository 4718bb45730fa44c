package layer_test

import (
	"testing"

	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/layer"
	"github.com/avezina/kinetic/pkg/provider"
	"github.com/avezina/kinetic/pkg/scope"
	"github.com/avezina/kinetic/pkg/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(opts ...layer.Option) (*layer.Tree, *scope.Stack) {
	stack := scope.NewStack()
	tree := layer.NewTree(stack, timing.NewResolver(), opts...)
	return tree, stack
}

func attachedNode(t *layer.Tree, id string) *layer.Node {
	n := layer.NewNode(id)
	t.Attach(n)
	return n
}

func TestSet_NoScopeUsesBaseline(t *testing.T) {
	tree, _ := newTree()
	n := attachedNode(tree, "card")

	tree.Set(n, "opacity", 1.0)

	anim, ok := n.Animation("opacity")
	require.True(t, ok, "tree-attached node must animate implicitly")
	assert.InEpsilon(t, domain.BaselineDuration, anim.Duration, domain.DefaultEpsilon)
	assert.Equal(t, domain.CurveEase, anim.Curve)
	assert.Equal(t, 1.0, n.Value("opacity"))
}

func TestSet_FromValueIsCommittedValue(t *testing.T) {
	tree, _ := newTree()
	n := attachedNode(tree, "card")

	tree.Set(n, "opacity", 0.5)
	tree.Set(n, "opacity", 1.0)

	anim, ok := n.Animation("opacity")
	require.True(t, ok)
	assert.Equal(t, 0.5, anim.From)
	assert.Equal(t, 1.0, anim.To)
}

func TestSet_BatchesWhileTransactionOpen(t *testing.T) {
	tree, stack := newTree()
	n := attachedNode(tree, "card")

	h := stack.Push(scope.Scope{Kind: scope.KindTransaction, Duration: scope.Float(0.3)})
	tree.Set(n, "opacity", 1.0)

	assert.Equal(t, 1, tree.Pending())
	assert.Nil(t, n.Value("opacity"), "write must not apply before commit")
	_, ok := n.Animation("opacity")
	assert.False(t, ok)

	require.NoError(t, stack.Pop(h))
	ev := tree.Commit()

	assert.Equal(t, 1, ev.Writes)
	assert.Equal(t, 1, ev.Resolved)
	anim, ok := n.Animation("opacity")
	require.True(t, ok)
	assert.Equal(t, 0.3, anim.Duration, "timing captured at write time must survive scope closure")
}

func TestSet_SameKeyCoalescesInBatch(t *testing.T) {
	tree, stack := newTree()
	n := attachedNode(tree, "card")

	h := stack.Push(scope.Scope{Kind: scope.KindTransaction, Duration: scope.Float(0.3)})
	tree.Set(n, "opacity", 0.5)
	require.NoError(t, stack.SetTiming(h, 0.9, domain.CurveLinear))
	tree.Set(n, "opacity", 1.0)
	require.NoError(t, stack.Pop(h))

	assert.Equal(t, 1, tree.Pending(), "one key resolves once per commit")
	tree.Commit()

	anim, ok := n.Animation("opacity")
	require.True(t, ok)
	assert.Equal(t, 1.0, anim.To)
	assert.Equal(t, 0.9, anim.Duration, "latest mutation's timing wins")
}

func TestSet_HeadlessNodeNeverAnimates(t *testing.T) {
	tree, _ := newTree()
	n := layer.NewNode("ghost")

	tree.Set(n, "opacity", 1.0)

	assert.Empty(t, n.AnimationKeys())
	assert.Equal(t, 1.0, n.Value("opacity"), "the value still applies")
}

func TestSet_HeadlessNodeAnimatesUnderOverride(t *testing.T) {
	tree, stack := newTree()
	n := layer.NewNode("ghost")

	h := stack.Push(scope.Scope{
		Kind:     scope.KindOverride,
		Duration: scope.Float(1.0),
		Curve:    scope.CurveOf(domain.CurveEaseInOut),
	})
	tree.Set(n, "opacity", 1.0)
	require.NoError(t, stack.Pop(h))

	anim, ok := n.Animation("opacity")
	require.True(t, ok, "explicit traits drive headless nodes")
	assert.InEpsilon(t, 1.0, anim.Duration, domain.DefaultEpsilon)
}

func TestSet_NoneProviderVetoesEvenUnderOverride(t *testing.T) {
	tree, stack := newTree()
	n := attachedNode(tree, "static")
	n.SetProvider(provider.None())

	h := stack.Push(scope.Scope{Kind: scope.KindOverride, Duration: scope.Float(1.0)})
	tree.Set(n, "opacity", 1.0)
	require.NoError(t, stack.Pop(h))

	assert.Empty(t, n.AnimationKeys())
}

func TestSet_DisabledScopeVetoes(t *testing.T) {
	tree, stack := newTree()
	n := attachedNode(tree, "card")

	h := stack.Push(scope.Scope{
		Kind:           scope.KindTransaction,
		DisableActions: scope.Bool(true),
	})
	tree.Set(n, "opacity", 1.0)
	require.NoError(t, stack.Pop(h))
	ev := tree.Commit()

	assert.Equal(t, 1, ev.Vetoed)
	assert.Empty(t, n.AnimationKeys())
	assert.Equal(t, 1.0, n.Value("opacity"), "vetoing the animation still applies the value")
}

func TestSet_SupersedeReplacesRunningAnimation(t *testing.T) {
	tree, _ := newTree()
	n := attachedNode(tree, "card")

	tree.Set(n, "opacity", 0.5)
	first, _ := n.Animation("opacity")

	tree.Set(n, "opacity", 1.0)
	second, ok := n.Animation("opacity")

	require.True(t, ok)
	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{"opacity"}, n.AnimationKeys(), "replace, not merge")
}

func TestDetach_StopsImplicitAnimation(t *testing.T) {
	tree, _ := newTree()
	n := attachedNode(tree, "card")
	tree.Detach(n)

	tree.Set(n, "opacity", 1.0)
	assert.Empty(t, n.AnimationKeys())
}

func TestDetach_ExplicitProviderStays(t *testing.T) {
	tree, _ := newTree()
	n := attachedNode(tree, "card")
	n.SetProvider(provider.Basic())
	tree.Detach(n)

	tree.Set(n, "opacity", 1.0)
	assert.NotEmpty(t, n.AnimationKeys())
}

func TestNodeLookup(t *testing.T) {
	tree, _ := newTree()
	attachedNode(tree, "b")
	attachedNode(tree, "a")

	n, err := tree.Node("a")
	require.NoError(t, err)
	assert.Equal(t, "a", n.ID())

	_, err = tree.Node("missing")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)

	nodes := tree.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "a", nodes[0].ID())
	assert.Equal(t, "b", nodes[1].ID())
}

func TestRemoveAllAnimations(t *testing.T) {
	tree, _ := newTree()
	n := attachedNode(tree, "card")
	tree.Set(n, "opacity", 1.0)
	tree.Set(n, "bounds", 200)
	require.Len(t, n.AnimationKeys(), 2)

	n.RemoveAllAnimations()
	assert.Empty(t, n.AnimationKeys())
}

func TestHooks_FireByOutcome(t *testing.T) {
	var resolved, vetoed, skipped int
	var commits int
	tree, stack := newTree(layer.WithHooks(domain.LifecycleHooks{
		OnResolve: func(*domain.ResolveEvent) { resolved++ },
		OnVeto:    func(*domain.ResolveEvent) { vetoed++ },
		OnSkip:    func(*domain.ResolveEvent) { skipped++ },
		OnCommit:  func(*domain.CommitEvent) { commits++ },
	}))

	attached := attachedNode(tree, "card")
	ghost := layer.NewNode("ghost")

	tree.Set(attached, "opacity", 1.0) // resolved (ambient commit, no commit event)
	tree.Set(ghost, "opacity", 1.0)    // skipped

	h := stack.Push(scope.Scope{Kind: scope.KindTransaction, DisableActions: scope.Bool(true)})
	tree.Set(attached, "bounds", 100) // vetoed at commit
	require.NoError(t, stack.Pop(h))
	tree.Commit()

	assert.Equal(t, 1, resolved)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, vetoed)
	assert.Equal(t, 1, commits)
}
