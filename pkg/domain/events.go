package domain

import "time"

// Outcome classifies what the resolver decided for a mutation.
type Outcome string

const (
	// OutcomeResolved means an animation was produced.
	OutcomeResolved Outcome = "resolved"
	// OutcomeVetoed means a disabled-actions scope suppressed the animation.
	OutcomeVetoed Outcome = "vetoed"
	// OutcomeSkipped means no provider applied (headless node, or an
	// explicit no-op provider).
	OutcomeSkipped Outcome = "skipped"
)

// ResolveEvent describes the outcome of resolving one property mutation.
type ResolveEvent struct {
	Timestamp time.Time  `json:"timestamp"`
	Node      string     `json:"node"`
	Key       string     `json:"key"`
	Outcome   Outcome    `json:"outcome"`
	Animation *Animation `json:"animation,omitempty"`
}

// CommitEvent describes a completed flush of batched writes.
type CommitEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Writes    int       `json:"writes"`
	Resolved  int       `json:"resolved"`
	Vetoed    int       `json:"vetoed"`
	Skipped   int       `json:"skipped"`
}

// LifecycleHooks are optional observability callbacks fired by the layer
// tree. All callbacks run synchronously on the mutating goroutine; nil
// callbacks are skipped.
type LifecycleHooks struct {
	OnResolve func(*ResolveEvent)
	OnVeto    func(*ResolveEvent)
	OnSkip    func(*ResolveEvent)
	OnCommit  func(*CommitEvent)
}

// Record is one entry of a recorded animation timeline (see ports.TimelineStore).
type Record struct {
	Timestamp time.Time  `json:"timestamp"`
	Node      string     `json:"node"`
	Key       string     `json:"key"`
	Outcome   Outcome    `json:"outcome"`
	Animation *Animation `json:"animation,omitempty"`
}
