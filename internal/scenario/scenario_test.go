package scenario_test

import (
	"context"
	"testing"

	"github.com/avezina/kinetic"
	"github.com/avezina/kinetic/internal/scenario"
	"github.com/avezina/kinetic/pkg/adapters/memory"
	"github.com/avezina/kinetic/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const precedenceScenario = `
name: transaction-beats-block
nodes:
  - id: card
    attached: true
  - id: ghost
steps:
  - type: set
    spec: {node: card, key: opacity, value: 0.5}
  - type: transaction
    spec:
      duration: 0.3
      curve: linear
      steps:
        - type: block
          spec:
            duration: 0.6
            curve: ease-out
            steps:
              - type: set
                spec: {node: card, key: opacity, value: 1.0}
  - type: set
    spec: {node: ghost, key: opacity, value: 1.0}
`

func TestParse(t *testing.T) {
	sc, err := scenario.Parse([]byte(precedenceScenario))
	require.NoError(t, err)

	assert.Equal(t, "transaction-beats-block", sc.Name)
	require.Len(t, sc.Nodes, 2)
	assert.True(t, sc.Nodes[0].Attached)
	assert.False(t, sc.Nodes[1].Attached)
	require.Len(t, sc.Steps, 3)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"Unknown Step Type", "steps:\n  - type: warp\n"},
		{"Set Without Node", "steps:\n  - type: set\n    spec: {key: opacity}\n"},
		{"Duplicate Node", "nodes:\n  - id: a\n  - id: a\n"},
		{"Unknown Provider", "nodes:\n  - id: a\n    provider: magic\n"},
		{"Unknown Curve", "steps:\n  - type: block\n    spec: {duration: 1, curve: bouncy}\n"},
		{"Disable On Block", "steps:\n  - type: block\n    spec: {duration: 1, disable_actions: true}\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.doc))
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestRun_PrecedenceEndToEnd(t *testing.T) {
	sc, err := scenario.Parse([]byte(precedenceScenario))
	require.NoError(t, err)

	store := memory.NewStore()
	a := kinetic.New(kinetic.WithRecorder(store, "run"))
	require.NoError(t, scenario.Run(a, sc))

	card, err := a.Node("card")
	require.NoError(t, err)
	anim, ok := card.Animation("opacity")
	require.True(t, ok)
	assert.InEpsilon(t, 0.3, anim.Duration, domain.DefaultEpsilon,
		"transaction timing outranks the nested block")
	assert.Equal(t, domain.CurveLinear, anim.Curve)

	ghost, err := a.Node("ghost")
	require.NoError(t, err)
	assert.Empty(t, ghost.AnimationKeys(), "headless node stays still")

	records, err := store.List(context.Background(), "run")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.OutcomeResolved, records[0].Outcome)
	assert.Equal(t, domain.OutcomeResolved, records[1].Outcome)
	assert.Equal(t, domain.OutcomeSkipped, records[2].Outcome)
}

func TestRun_DisabledTransaction(t *testing.T) {
	doc := `
nodes:
  - id: card
    attached: true
steps:
  - type: transaction
    spec:
      disable_actions: true
      steps:
        - type: animate
          spec:
            duration: 1.0
            steps:
              - type: set
                spec: {node: card, key: opacity, value: 1.0}
`
	sc, err := scenario.Parse([]byte(doc))
	require.NoError(t, err)

	a := kinetic.New()
	require.NoError(t, scenario.Run(a, sc))

	card, err := a.Node("card")
	require.NoError(t, err)
	assert.Empty(t, card.AnimationKeys(), "disable vetoes even explicit traits")
	assert.Equal(t, 1.0, card.Value("opacity"))
}

func TestRun_SharedProviderNode(t *testing.T) {
	doc := `
nodes:
  - id: opted
    provider: shared
steps:
  - type: set
    spec: {node: opted, key: opacity, value: 1.0}
`
	sc, err := scenario.Parse([]byte(doc))
	require.NoError(t, err)

	a := kinetic.New()
	require.NoError(t, scenario.Run(a, sc))

	opted, err := a.Node("opted")
	require.NoError(t, err)
	assert.NotEmpty(t, opted.AnimationKeys(),
		"shared provider gives headless nodes implicit animations")
}

func TestRun_UnknownNodeInStep(t *testing.T) {
	doc := `
steps:
  - type: set
    spec: {node: missing, key: opacity, value: 1.0}
`
	sc, err := scenario.Parse([]byte(doc))
	require.NoError(t, err)

	err = scenario.Run(kinetic.New(), sc)
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}
