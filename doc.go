/*
Package kinetic decides whether and how property mutations on render nodes
become animations. It implements the implicit-animation resolution policy of
a motion layer: nested ambient scopes (transactions, declarative blocks, and
explicit per-call overrides) are resolved into one deterministic timing per
mutation.

# Concept

Callers open scopes around property writes. Each write captures the scope
stack as it stands at that instant; when the enclosing transaction commits,
every changed key is resolved against its captured snapshot into either an
animation or a documented "no animation" outcome. Precedence is fixed: a
disable-actions flag vetoes everything, explicit per-call traits beat
transaction timing, and transaction timing beats declarative block timing no
matter how the scopes nest.

# Usage

	a := kinetic.New()
	card := a.Attach("card")

	// Implicit: a tree-attached node animates with baseline timing.
	a.Set(card, "opacity", 1.0)

	// Explicit: per-call traits override any ambient transaction timing.
	_ = a.Animate(kinetic.Traits{Duration: 1.0, Curve: kinetic.CurveEaseInOut}, func() {
		a.Set(card, "position", 300.0)
	})

	// Batched: transaction timing applies to every write until commit.
	tx := a.Begin()
	_ = tx.SetTiming(0.3, kinetic.CurveLinear)
	a.Set(card, "bounds", 240.0)
	_ = tx.Commit()

The resolution itself is a total function: it cannot fail, only decide. Scope
pop mismatches and invalid traits are the only error paths.
*/
package kinetic
