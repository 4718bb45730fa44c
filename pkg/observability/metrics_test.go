package observability_test

import (
	"testing"

	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.ObserveResolve(&domain.ResolveEvent{
		Outcome:   domain.OutcomeResolved,
		Animation: &domain.Animation{Key: "opacity", Duration: 0.25},
	})
	m.ObserveResolve(&domain.ResolveEvent{Outcome: domain.OutcomeVetoed})
	m.ObserveResolve(&domain.ResolveEvent{Outcome: domain.OutcomeVetoed})
	m.ObserveCommit(&domain.CommitEvent{})

	count, err := testutil.GatherAndCount(reg,
		"kinetic_resolutions_total", "kinetic_resolved_duration_seconds", "kinetic_commits_total")
	assert.NoError(t, err)
	assert.Equal(t, 4, count, "two outcome series, one histogram, one commit counter")
}
