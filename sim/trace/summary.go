package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents    int
	Arrivals       int
	Departures     int
	MaxQueueLength int
	// Monotonic is false if any record has an earlier time than its predecessor.
	Monotonic bool
	// CouplingViolations counts records with a non-empty queue and an idle server.
	CouplingViolations int
	// CounterViolations counts records where served exceeds arrivals.
	CounterViolations int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields, Monotonic=true).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{Monotonic: true}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for i, ev := range st.Events {
		switch ev.Kind {
		case "arrival":
			summary.Arrivals++
		case "departure":
			summary.Departures++
		}
		if ev.QueueLength > summary.MaxQueueLength {
			summary.MaxQueueLength = ev.QueueLength
		}
		if i > 0 && ev.Time < st.Events[i-1].Time {
			summary.Monotonic = false
		}
		if ev.QueueLength > 0 && ev.Server != "busy" {
			summary.CouplingViolations++
		}
		if ev.Served > ev.Arrivals {
			summary.CounterViolations++
		}
	}

	return summary
}
