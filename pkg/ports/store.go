package ports

import (
	"context"

	"github.com/avezina/kinetic/pkg/domain"
)

// TimelineStore persists the resolution timeline: every animation the engine
// resolved (or refused) appended to a named trail. Trails power debugging and
// replay without touching the live tree.
type TimelineStore interface {
	// Append adds a record to the end of a trail, creating the trail on
	// first use.
	Append(ctx context.Context, trail string, rec domain.Record) error

	// List returns a trail's records in append order.
	// Returns domain.ErrTrailNotFound if the trail does not exist.
	List(ctx context.Context, trail string) ([]domain.Record, error)

	// Delete removes a trail and its records.
	Delete(ctx context.Context, trail string) error

	// Trails returns the known trail names.
	Trails(ctx context.Context) ([]string, error)
}
