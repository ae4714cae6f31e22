package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRate is returned when an arrival or service rate is not a positive finite number.
	ErrInvalidRate = errors.New("invalid rate")
	// ErrInvalidHorizon is returned when the horizon is NaN or infinite.
	ErrInvalidHorizon = errors.New("invalid horizon")
)

// Config holds the parameters of one M/M/1 run.
// A horizon <= 0 is allowed: only the initial arrival at time 0 happens.
type Config struct {
	ArrivalRate float64 `yaml:"arrival_rate"` // λ, customers per time unit (must be > 0)
	ServiceRate float64 `yaml:"service_rate"` // μ, services per time unit (must be > 0)
	Horizon     float64 `yaml:"horizon"`      // arrivals are only scheduled strictly before this time
	Seed        int64   `yaml:"seed"`         // master seed for the exponential sampler
}

// Validate checks the rates and the horizon.
func (c Config) Validate() error {
	if !validRate(c.ArrivalRate) {
		return fmt.Errorf("%w: arrival rate must be > 0, got %v", ErrInvalidRate, c.ArrivalRate)
	}
	if !validRate(c.ServiceRate) {
		return fmt.Errorf("%w: service rate must be > 0, got %v", ErrInvalidRate, c.ServiceRate)
	}
	if math.IsNaN(c.Horizon) || math.IsInf(c.Horizon, 0) {
		return fmt.Errorf("%w: horizon must be finite, got %v", ErrInvalidHorizon, c.Horizon)
	}
	return nil
}

// Utilization returns λ/μ. Values >= 1 mean the queue grows without bound.
func (c Config) Utilization() float64 {
	return c.ArrivalRate / c.ServiceRate
}

func validRate(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
