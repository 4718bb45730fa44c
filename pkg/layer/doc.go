// Package layer is the in-process render-tree collaborator: nodes with
// animatable properties, batched property writes, and the commit step that
// turns pending writes into resolved animations.
//
// The load-bearing detail lives in Set: the scope snapshot is captured at the
// moment the write is issued, not at commit time. A scope may close before
// the batch flushes; the timing it dictated must survive that closure.
package layer
