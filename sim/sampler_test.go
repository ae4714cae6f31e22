package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExponentialSampler_MeanMatchesRate(t *testing.T) {
	// GIVEN a seeded sampler and rates 2 (arrivals) and 0.5 (service)
	s := NewSeededSampler(2024)
	const n = 200000

	// WHEN many durations are drawn
	var sumA, sumS float64
	for i := 0; i < n; i++ {
		a := s.Interarrival(2)
		b := s.Service(0.5)
		if a <= 0 || b <= 0 {
			t.Fatalf("draw %d: non-positive duration (%v, %v)", i, a, b)
		}
		sumA += a
		sumS += b
	}

	// THEN the sample means approach 1/rate
	assert.InDelta(t, 0.5, sumA/n, 0.01)
	assert.InDelta(t, 2.0, sumS/n, 0.04)
}

func TestExponentialSampler_StreamsAreIndependent(t *testing.T) {
	// drawing service times must not shift the arrival sequence
	a := NewSeededSampler(9)
	b := NewSeededSampler(9)
	for i := 0; i < 5; i++ {
		b.Service(1)
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Interarrival(1), b.Interarrival(1))
	}
}
