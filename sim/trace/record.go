// Package trace provides per-event recording of a simulation run.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures the system state right after one event was handled.
type EventRecord struct {
	Seq         uint64  `yaml:"seq"`
	Time        float64 `yaml:"time"`
	Kind        string  `yaml:"kind"` // "arrival" or "departure"
	Server      string  `yaml:"server"` // "idle" or "busy"
	QueueLength int     `yaml:"queue_length"`
	Arrivals    int     `yaml:"arrivals"`
	Served      int     `yaml:"served"`
	TotalWait   float64 `yaml:"total_wait"`
}
