package process

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/queue-sim/sim"
)

// fixedSampler returns constant durations regardless of rate.
type fixedSampler struct {
	interarrival float64
	service      float64
}

func (s fixedSampler) Interarrival(float64) float64 { return s.interarrival }
func (s fixedSampler) Service(float64) float64      { return s.service }

func TestRunQueue_Saturated_CountsOnlyCompletedServices(t *testing.T) {
	// GIVEN arrivals every 1 and services of 10 until t=50
	cfg := sim.Config{ArrivalRate: 1, ServiceRate: 0.1, Horizon: 50}

	// WHEN the process model runs
	r, err := RunQueue(cfg, fixedSampler{interarrival: 1, service: 10})
	require.NoError(t, err)

	// THEN customers arrive at 1..49 and those admitted at 1, 11, 21, 31, 41
	// waited 0, 9, 18, 27, 36; services finish at 11, 21, 31, 41
	assert.Equal(t, 49, r.TotalCustomers)
	assert.Equal(t, 4, r.ServedCustomers)
	assert.InDelta(t, 90.0/4, r.AverageWaitTime, 1e-9)
	assert.Equal(t, 44, r.MaxQueueLength)
	assert.Equal(t, 50.0, r.SimEndedTime)
}

func TestRunQueue_NoQueueing(t *testing.T) {
	cfg := sim.Config{ArrivalRate: 1, ServiceRate: 2, Horizon: 10.75}
	r, err := RunQueue(cfg, fixedSampler{interarrival: 1, service: 0.5})
	require.NoError(t, err)

	assert.Equal(t, 10, r.TotalCustomers)
	assert.Equal(t, 10, r.ServedCustomers)
	assert.Equal(t, 0.0, r.AverageWaitTime)
	assert.Equal(t, 0, r.MaxQueueLength)
}

func TestRunQueue_ZeroHorizon_EmptyReport(t *testing.T) {
	r, err := RunQueue(sim.Config{ArrivalRate: 1, ServiceRate: 1, Horizon: 0}, sim.NewSeededSampler(1))
	require.NoError(t, err)
	assert.Equal(t, sim.Report{}, r)
}

func TestRunQueue_InvalidRate(t *testing.T) {
	_, err := RunQueue(sim.Config{ArrivalRate: 1, ServiceRate: 0, Horizon: 10}, sim.NewSeededSampler(1))
	assert.True(t, errors.Is(err, sim.ErrInvalidRate))

	_, err = RunQueue(sim.Config{ArrivalRate: 1, ServiceRate: 1, Horizon: 10}, nil)
	assert.Error(t, err)
}

func TestRunQueue_SameSeed_IdenticalReports(t *testing.T) {
	cfg := sim.Config{ArrivalRate: 2, ServiceRate: 3, Horizon: 100}
	a, err := RunQueue(cfg, sim.NewSeededSampler(11))
	require.NoError(t, err)
	b, err := RunQueue(cfg, sim.NewSeededSampler(11))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.LessOrEqual(t, a.ServedCustomers, a.TotalCustomers)
}
