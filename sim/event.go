package sim

import "fmt"

// EventKind identifies which handler an Event is dispatched to.
type EventKind int

const (
	// KindArrival is a customer entering the system.
	KindArrival EventKind = iota
	// KindDeparture is the server finishing the customer currently in service.
	KindDeparture
)

// String returns the lowercase name of the kind.
func (k EventKind) String() string {
	switch k {
	case KindArrival:
		return "arrival"
	case KindDeparture:
		return "departure"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is an entry of the future event list.
// Events are ordered by Time; Seq breaks ties among equal times.
type Event struct {
	Time float64   // Simulation time the event fires at
	Kind EventKind // Which handler processes the event
	Seq  uint64    // Assigned by EventQueue.Schedule, strictly increasing per queue
}

func (e Event) String() string {
	return fmt.Sprintf("%s@%.6f#%d", e.Kind, e.Time, e.Seq)
}
