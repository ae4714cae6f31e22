package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler produces the random durations that drive the simulation.
// Implementations must return values > 0 for rates > 0.
type Sampler interface {
	// Interarrival returns the time until the next arrival.
	Interarrival(rate float64) float64
	// Service returns the duration of one service.
	Service(rate float64) float64
}

// ExponentialSampler draws exponentially distributed durations.
// Interarrival and service draws use separate streams, so the arrival
// sequence does not depend on how many services have been sampled.
type ExponentialSampler struct {
	arrivals rand.Source
	service  rand.Source
}

// NewExponentialSampler creates a sampler over the arrival and service
// subsystems of rng.
func NewExponentialSampler(rng *PartitionedRNG) *ExponentialSampler {
	return &ExponentialSampler{
		arrivals: rng.ForSubsystem(SubsystemArrivals),
		service:  rng.ForSubsystem(SubsystemService),
	}
}

// NewSeededSampler is shorthand for NewExponentialSampler(NewPartitionedRNG(NewSimulationKey(seed))).
func NewSeededSampler(seed int64) *ExponentialSampler {
	return NewExponentialSampler(NewPartitionedRNG(NewSimulationKey(seed)))
}

func (s *ExponentialSampler) Interarrival(rate float64) float64 {
	return distuv.Exponential{Rate: rate, Src: s.arrivals}.Rand()
}

func (s *ExponentialSampler) Service(rate float64) float64 {
	return distuv.Exponential{Rate: rate, Src: s.service}.Rand()
}
