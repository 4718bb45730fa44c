// Package timing implements the resolution policy that turns a stack of
// ambient scopes into one deterministic animation timing.
//
// Precedence, highest first:
//
//  1. an explicitly set disable-actions flag (nearest wins) vetoes outright
//  2. the animator's explicit-traits override scope
//  3. transaction timing, even when a block scope is nested inside it
//  4. block timing
//  5. process baselines
//
// Rule 3 is the deliberate, counter-intuitive part: low-level transaction
// timing outranks declarative block timing whenever both are present. Only
// an explicit per-call override outranks the transaction.
package timing
