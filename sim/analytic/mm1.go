// Package analytic computes closed-form steady-state values of the M/M/1 queue.
// The simulator's long-run averages converge to these values when λ < μ.
package analytic

import (
	"fmt"
	"strings"
)

// MM1 holds the steady-state performance measures of an M/M/1 queue.
type MM1 struct {
	Lambda float64 // arrival rate
	Mu     float64 // service rate
	Rho    float64 // utilization λ/μ

	AvgWaitTime    float64 // Wq, time spent queueing
	AvgRespTime    float64 // W = Wq + 1/μ
	AvgServTime    float64 // 1/μ
	AvgQueueLength float64 // Lq
	AvgNumInSystem float64 // L
}

// Solve computes the steady-state measures.
// It returns an error if a rate is not positive or the queue is unstable (ρ >= 1).
func Solve(lambda, mu float64) (*MM1, error) {
	if lambda <= 0 || mu <= 0 {
		return nil, fmt.Errorf("rates must be positive: lambda=%v, mu=%v", lambda, mu)
	}
	m := &MM1{Lambda: lambda, Mu: mu, Rho: lambda / mu}
	if !m.IsStable() {
		return m, fmt.Errorf("unstable queue: rho=%.4f >= 1", m.Rho)
	}
	m.AvgServTime = 1 / mu
	m.AvgWaitTime = m.Rho / (mu - lambda)
	m.AvgRespTime = m.AvgWaitTime + m.AvgServTime
	m.AvgQueueLength = lambda * m.AvgWaitTime
	m.AvgNumInSystem = lambda * m.AvgRespTime
	return m, nil
}

// IsStable reports whether ρ < 1.
func (m *MM1) IsStable() bool {
	return m.Rho < 1
}

func (m *MM1) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "lambda=%v; mu=%v; rho=%v; ", m.Lambda, m.Mu, m.Rho)
	if m.IsStable() {
		fmt.Fprintf(&b, "Wq=%v; W=%v; Lq=%v; L=%v", m.AvgWaitTime, m.AvgRespTime, m.AvgQueueLength, m.AvgNumInSystem)
	} else {
		b.WriteString("unstable")
	}
	return b.String()
}
