package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraits(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tr, err := NewTraits(0.5, 0.1, CurveEaseIn)
		require.NoError(t, err)
		assert.Equal(t, 0.5, tr.Duration)
		assert.Equal(t, 0.1, tr.Delay)
		assert.Equal(t, CurveEaseIn, tr.Curve)
	})

	t.Run("Zero Curve Falls Back To Baseline", func(t *testing.T) {
		tr, err := NewTraits(1.0, 0, Curve{})
		require.NoError(t, err)
		assert.Equal(t, CurveEase, tr.Curve)
	})

	t.Run("Negative Duration Rejected", func(t *testing.T) {
		_, err := NewTraits(-0.1, 0, CurveLinear)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "duration", verr.Field)
	})

	t.Run("Negative Delay Rejected", func(t *testing.T) {
		_, err := NewTraits(0.1, -1, CurveLinear)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "delay", verr.Field)
	})

	t.Run("Zero Duration Is Valid", func(t *testing.T) {
		// Zero duration means "animate instantly", which is distinct from
		// disabling actions. It must not be rejected.
		tr, err := NewTraits(0, 0, CurveLinear)
		require.NoError(t, err)
		assert.Equal(t, 0.0, tr.Duration)
	})
}
