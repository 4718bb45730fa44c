// Package scope tracks the nested ambient scopes that are open while render
// properties are mutated: transactions, declarative animation blocks, and the
// animator's explicit-traits override.
//
// Scopes form a strict stack. Push returns a Handle; Pop verifies the handle
// against the innermost frame, so nesting mistakes are surfaced instead of
// silently reordering frames. Snapshot produces an immutable copy of the
// stack so that timing captured at mutation time survives scope closure.
package scope
