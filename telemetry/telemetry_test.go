package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buswatch.dev/nextbus/telemetry"
)

func TestMetricsRecordUpdate(t *testing.T) {
	metrics := telemetry.NewMetrics(prometheus.NewRegistry())

	metrics.RecordUpdate(16)
	metrics.RecordUpdate(15)

	assert.Equal(t, 2.0, promtest.ToFloat64(metrics.UpdatesTotal))
	assert.Equal(t, 15.0, promtest.ToFloat64(metrics.MinutesUntilDeparture))
	assert.Equal(t, 0.0, promtest.ToFloat64(metrics.RenderErrorsTotal))
}

func TestServerRegistersBuildInfo(t *testing.T) {
	server := telemetry.NewServer("127.0.0.1:0")

	families, err := server.Registry().Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["nextbus_build_info"])
	assert.True(t, names["go_goroutines"])
}

func TestServerStartStop(t *testing.T) {
	server := telemetry.NewServer("127.0.0.1:0")

	require.NoError(t, server.Start())
	require.NoError(t, server.Stop())

	// Stopping an unstarted server is fine too.
	assert.NoError(t, telemetry.NewServer("127.0.0.1:0").Stop())
}
