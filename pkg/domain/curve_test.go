package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseCurve(t *testing.T) {
	t.Run("Named", func(t *testing.T) {
		c, err := ParseCurve("ease-in-out")
		require.NoError(t, err)
		assert.Equal(t, CurveEaseInOut, c)
	})

	t.Run("Cubic Bezier", func(t *testing.T) {
		c, err := ParseCurve("cubic-bezier(0.1,0.2,0.3,0.4)")
		require.NoError(t, err)
		assert.Equal(t, CubicBezier(0.1, 0.2, 0.3, 0.4), c)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseCurve("bouncy")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestCurveYAMLRoundTrip(t *testing.T) {
	type doc struct {
		Curve Curve `yaml:"curve"`
	}

	for _, c := range []Curve{CurveLinear, CurveEaseOut, CubicBezier(0.5, 0, 0.5, 1)} {
		data, err := yaml.Marshal(doc{Curve: c})
		require.NoError(t, err)

		var got doc
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, c, got.Curve, "curve %s should survive yaml round trip", c)
	}
}
