package kinetic

import (
	"fmt"

	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/scope"
)

// Transaction is a low-level batching scope. Property writes issued while it
// is open are held back until Commit; timing and disable settings apply to
// the writes issued inside it (captured per write, so closing the
// transaction never rewrites what a write already resolved to).
//
// Transactions nest. Inner commits only close their own scope; the batch
// flushes when the outermost transaction commits. A top-level ambient
// transaction always exists: writes outside any Begin commit immediately.
type Transaction struct {
	a      *Animator
	handle scope.Handle
	done   bool
}

// Begin opens a transaction scope and returns its controller.
func (a *Animator) Begin() *Transaction {
	h := a.stack.Push(scope.Scope{Kind: scope.KindTransaction})
	return &Transaction{a: a, handle: h}
}

// SetDisableActions sets the disable-actions flag for writes issued in this
// transaction. Only the innermost open scope may be mutated.
func (tx *Transaction) SetDisableActions(disabled bool) error {
	if tx.done {
		return fmt.Errorf("transaction already committed: %w", domain.ErrScopeMismatch)
	}
	return tx.a.stack.SetDisable(tx.handle, disabled)
}

// SetTiming sets explicit duration and curve for writes issued in this
// transaction.
func (tx *Transaction) SetTiming(duration float64, curve Curve) error {
	if tx.done {
		return fmt.Errorf("transaction already committed: %w", domain.ErrScopeMismatch)
	}
	return tx.a.stack.SetTiming(tx.handle, duration, curve)
}

// Commit closes the transaction scope. When no transaction scope remains
// open, the batched writes flush: each changed key resolves against the
// snapshot captured when it was written.
//
// Committing out of nesting order returns domain.ErrScopeMismatch; the stack
// recovers by discarding the inner frames, and the flush still happens if
// this was the last open transaction.
func (tx *Transaction) Commit() error {
	if tx.done {
		return fmt.Errorf("transaction already committed: %w", domain.ErrScopeMismatch)
	}
	tx.done = true

	err := tx.a.stack.Pop(tx.handle)
	if !tx.a.stack.Snapshot().Has(scope.KindTransaction) {
		ev := tx.a.tree.Commit()
		tx.a.logger.Debug("transaction flushed",
			"writes", ev.Writes, "resolved", ev.Resolved, "vetoed", ev.Vetoed, "skipped", ev.Skipped)
	}
	return err
}
