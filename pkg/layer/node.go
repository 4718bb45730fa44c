package layer

import (
	"sort"

	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/provider"
)

// Node is one render node: a bag of committed property values, an optional
// explicit action provider, and the animations currently running against it.
//
// A node starts headless (no tree membership, no provider). Direct mutations
// on a headless node never implicitly animate; the animator's explicit
// override can still drive it.
type Node struct {
	id       string
	attached bool
	provider provider.Provider

	values     map[string]any
	animations map[string]domain.Animation
}

// NewNode creates a detached node with no provider.
func NewNode(id string) *Node {
	return &Node{
		id:         id,
		values:     make(map[string]any),
		animations: make(map[string]domain.Animation),
	}
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Attached reports tree membership.
func (n *Node) Attached() bool { return n.attached }

// SetProvider attaches an explicit action provider. Passing nil clears it,
// reverting the node to the implicit default (when attached) or headless
// behavior.
func (n *Node) SetProvider(p provider.Provider) { n.provider = p }

// Provider returns the explicitly attached provider, or nil.
func (n *Node) Provider() provider.Provider { return n.provider }

// Value returns the committed value for key, or nil when never set.
func (n *Node) Value(key string) any { return n.values[key] }

// Values returns a copy of the committed property map.
func (n *Node) Values() map[string]any {
	out := make(map[string]any, len(n.values))
	for k, v := range n.values {
		out[k] = v
	}
	return out
}

// Animation returns the running animation for key, if any.
func (n *Node) Animation(key string) (domain.Animation, bool) {
	a, ok := n.animations[key]
	return a, ok
}

// AnimationKeys returns the keys with running animations, sorted. Empty when
// none are running.
func (n *Node) AnimationKeys() []string {
	keys := make([]string, 0, len(n.animations))
	for k := range n.animations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Animations returns the running animations in key order.
func (n *Node) Animations() []domain.Animation {
	out := make([]domain.Animation, 0, len(n.animations))
	for _, k := range n.AnimationKeys() {
		out = append(out, n.animations[k])
	}
	return out
}

// RemoveAllAnimations drops every running animation.
func (n *Node) RemoveAllAnimations() {
	n.animations = make(map[string]domain.Animation)
}

// put replaces the running animation for a key. Supersession is replace,
// not merge.
func (n *Node) put(a domain.Animation) {
	n.animations[a.Key] = a
}
