// Tracks run-wide statistics: arrivals, completed services and queueing delay.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Counters only grow; Served never exceeds Arrivals when driven by the Simulator.
type Metrics struct {
	Arrivals       int     // Customers accepted into the system
	Served         int     // Departures completed
	TotalWait      float64 // Sum of queueing delays (service time excluded)
	MaxQueueLength int     // Longest wait queue observed
	SimEndedTime   float64 // Clock when the last event was processed
}

// NewMetrics returns zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncrementArrivals counts one accepted arrival.
func (m *Metrics) IncrementArrivals() {
	m.Arrivals++
}

// IncrementServed counts one completed departure.
func (m *Metrics) IncrementServed() {
	m.Served++
}

// RecordWait adds one customer's queueing delay.
// Negative durations indicate a broken clock and panic.
func (m *Metrics) RecordWait(d float64) {
	if d < 0 {
		panic(fmt.Sprintf("RecordWait: negative wait %v", d))
	}
	m.TotalWait += d
}

// ObserveQueueLength updates the high-water mark of the wait queue.
func (m *Metrics) ObserveQueueLength(n int) {
	if n > m.MaxQueueLength {
		m.MaxQueueLength = n
	}
}

// Report is the final result of a run. Both engines produce this shape.
type Report struct {
	ServedCustomers int     `yaml:"served_customers" json:"served_customers"`
	AverageWaitTime float64 `yaml:"average_wait_time" json:"average_wait_time"`
	TotalCustomers  int     `yaml:"total_customers" json:"total_customers"`
	MaxQueueLength  int     `yaml:"max_queue_length" json:"max_queue_length"`
	SimEndedTime    float64 `yaml:"sim_ended_time" json:"sim_ended_time"`
}

// Report derives the final statistics. It does not mutate m.
// AverageWaitTime is 0 when nobody has been served.
func (m *Metrics) Report() Report {
	avg := 0.0
	if m.Served > 0 {
		avg = m.TotalWait / float64(m.Served)
	}
	return Report{
		ServedCustomers: m.Served,
		AverageWaitTime: avg,
		TotalCustomers:  m.Arrivals,
		MaxQueueLength:  m.MaxQueueLength,
		SimEndedTime:    m.SimEndedTime,
	}
}

// Print writes the report in the human-readable CLI format.
func (r Report) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Total customers served : %d\n", r.ServedCustomers)
	fmt.Fprintf(w, "Average wait time      : %.2f\n", r.AverageWaitTime)
	fmt.Fprintf(w, "Total customers arrived: %d\n", r.TotalCustomers)
	fmt.Fprintf(w, "Max queue length       : %d\n", r.MaxQueueLength)
	fmt.Fprintf(w, "Simulation ended at    : %.2f\n", r.SimEndedTime)
}
