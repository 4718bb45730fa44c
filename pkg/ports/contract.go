package ports

import (
	"context"
	"testing"
	"time"

	"github.com/avezina/kinetic/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTimelineStoreContract runs a suite of tests to verify that a
// TimelineStore implementation adheres to the interface contract.
func RunTimelineStoreContract(t *testing.T, store TimelineStore) {
	ctx := context.Background()
	trail := "contract-trail-" + time.Now().Format("20060102150405")

	rec := func(key string, outcome domain.Outcome) domain.Record {
		r := domain.Record{
			Timestamp: time.Now().UTC().Truncate(time.Millisecond),
			Node:      "card",
			Key:       key,
			Outcome:   outcome,
		}
		if outcome == domain.OutcomeResolved {
			r.Animation = &domain.Animation{
				Key:      key,
				Duration: 0.25,
				Curve:    domain.CurveEase,
			}
		}
		return r
	}

	t.Run("Append and List", func(t *testing.T) {
		require.NoError(t, store.Append(ctx, trail, rec("opacity", domain.OutcomeResolved)))
		require.NoError(t, store.Append(ctx, trail, rec("bounds", domain.OutcomeVetoed)))

		records, err := store.List(ctx, trail)
		require.NoError(t, err)
		require.Len(t, records, 2)

		// Append order is the contract; stores must not reorder.
		assert.Equal(t, "opacity", records[0].Key)
		assert.Equal(t, domain.OutcomeResolved, records[0].Outcome)
		require.NotNil(t, records[0].Animation)
		assert.Equal(t, domain.CurveEase, records[0].Animation.Curve)

		assert.Equal(t, "bounds", records[1].Key)
		assert.Nil(t, records[1].Animation)
	})

	t.Run("List Non-Existent", func(t *testing.T) {
		_, err := store.List(ctx, "non-existent-"+trail)
		assert.ErrorIs(t, err, domain.ErrTrailNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, trail))

		_, err := store.List(ctx, trail)
		assert.ErrorIs(t, err, domain.ErrTrailNotFound, "List after Delete should return ErrTrailNotFound")
	})

	t.Run("Trails", func(t *testing.T) {
		t1 := trail + "-1"
		t2 := trail + "-2"
		require.NoError(t, store.Append(ctx, t1, rec("opacity", domain.OutcomeSkipped)))
		require.NoError(t, store.Append(ctx, t2, rec("opacity", domain.OutcomeSkipped)))

		defer func() {
			_ = store.Delete(ctx, t1)
			_ = store.Delete(ctx, t2)
		}()

		names, err := store.Trails(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, t1)
		assert.Contains(t, names, t2)
	})
}
