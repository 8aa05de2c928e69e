package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStepsTotal_CountsByResult(t *testing.T) {
	StepsTotal.Reset()
	StepsTotal.WithLabelValues("ok").Inc()
	StepsTotal.WithLabelValues("ok").Inc()
	StepsTotal.WithLabelValues("fail").Inc()

	require.Equal(t, float64(2), testutil.ToFloat64(StepsTotal.WithLabelValues("ok")))
	require.Equal(t, float64(1), testutil.ToFloat64(StepsTotal.WithLabelValues("fail")))
}

func TestRegistry_GathersRegisteredCollectors(t *testing.T) {
	mfs, err := Registry.Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	require.Contains(t, names, "graphwalker_steps_total")
	require.Contains(t, names, "graphwalker_run_duration_seconds")
	require.Contains(t, names, "graphwalker_active_runs")
}
