// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queue-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, system state, and the event loop.
type Simulator struct {
	Config
	// RunID identifies this run in logs.
	RunID xid.ID
	// Clock is the time of the event currently being processed.
	Clock float64
	// EventQueue has all pending arrival and departure events
	EventQueue *EventQueue
	Server     *ServerState
	Metrics    *Metrics
	// Trace is nil unless tracing was requested via WithTrace.
	Trace *trace.SimulationTrace

	sampler Sampler
	started bool
	log     *logrus.Entry
}

// NewSimulator validates cfg and returns a simulator that draws durations from sampler.
// Invalid rates are rejected here, never inside the event loop.
func NewSimulator(cfg Config, sampler Sampler) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sampler == nil {
		return nil, fmt.Errorf("sampler must not be nil")
	}
	id := xid.New()
	return &Simulator{
		Config:     cfg,
		RunID:      id,
		EventQueue: NewEventQueue(),
		Server:     NewServerState(),
		Metrics:    NewMetrics(),
		sampler:    sampler,
		log:        logrus.WithField("run", id.String()),
	}, nil
}

// WithTrace enables per-event tracing when cfg asks for it.
func (sim *Simulator) WithTrace(cfg trace.TraceConfig) *Simulator {
	if cfg.Enabled() {
		sim.Trace = trace.NewSimulationTrace(cfg)
	}
	return sim
}

// Run processes events until the event queue is empty and returns the report.
// The horizon only stops new arrivals from being scheduled; departures already
// scheduled still fire, so the run may end after the horizon.
func (sim *Simulator) Run() Report {
	sim.log.Infof("Starting simulation: arrival_rate=%v service_rate=%v horizon=%v utilization=%.3f",
		sim.ArrivalRate, sim.ServiceRate, sim.Horizon, sim.Utilization())
	for sim.Step() {
	}
	sim.log.Infof("[t=%.4f] Simulation ended: served=%d arrived=%d",
		sim.Clock, sim.Metrics.Served, sim.Metrics.Arrivals)
	return sim.Report()
}

// Step processes the next event. It returns false once no events remain.
// The first call seeds the queue with an arrival at time 0.
func (sim *Simulator) Step() bool {
	if !sim.started {
		sim.started = true
		// the first arrival is unconditional, even for a horizon <= 0
		sim.schedule(0, KindArrival)
	}
	if sim.EventQueue.Len() == 0 {
		return false
	}

	ev, err := sim.EventQueue.PopNext()
	if err != nil {
		panic(fmt.Sprintf("Step: %v after non-empty check", err))
	}
	if ev.Time < sim.Clock {
		panic(fmt.Sprintf("Clock went backwards: %v < %v", ev.Time, sim.Clock))
	}
	sim.Clock = ev.Time
	sim.log.Debugf("[t=%.4f] Executing %s", sim.Clock, ev)

	switch ev.Kind {
	case KindArrival:
		sim.handleArrival(ev)
	case KindDeparture:
		sim.handleDeparture(ev)
	default:
		panic(fmt.Sprintf("Step: unknown event kind %v", ev.Kind))
	}

	sim.Metrics.SimEndedTime = sim.Clock
	sim.Metrics.ObserveQueueLength(sim.Server.Waiting.Len())
	if sim.Trace != nil {
		sim.Trace.RecordEvent(trace.EventRecord{
			Seq:         ev.Seq,
			Time:        ev.Time,
			Kind:        ev.Kind.String(),
			Server:      string(sim.Server.Status()),
			QueueLength: sim.Server.Waiting.Len(),
			Arrivals:    sim.Metrics.Arrivals,
			Served:      sim.Metrics.Served,
			TotalWait:   sim.Metrics.TotalWait,
		})
	}
	return true
}

// Report returns the statistics collected so far. It does not mutate state.
func (sim *Simulator) Report() Report {
	return sim.Metrics.Report()
}

// schedule pushes an event at time t. Events are never scheduled in the past.
func (sim *Simulator) schedule(t float64, kind EventKind) {
	if t < sim.Clock {
		panic(fmt.Sprintf("schedule: %s at %v is before clock %v", kind, t, sim.Clock))
	}
	sim.EventQueue.Schedule(Event{Time: t, Kind: kind})
}

// handleArrival schedules the next arrival (if before the horizon), counts the
// customer, and either starts service or queues the customer.
func (sim *Simulator) handleArrival(ev Event) {
	next := sim.Clock + sim.sampler.Interarrival(sim.ArrivalRate)
	if next < sim.Horizon {
		sim.schedule(next, KindArrival)
	}

	sim.Metrics.IncrementArrivals()
	if sim.Server.Admit(ev.Time) {
		sim.schedule(sim.Clock+sim.sampler.Service(sim.ServiceRate), KindDeparture)
		return
	}
	sim.log.Debugf("[t=%.4f] Server busy, waiting %s", sim.Clock, sim.Server.Waiting)
}

// handleDeparture counts the completed service and starts the next waiting
// customer, if any; otherwise the server goes idle.
func (sim *Simulator) handleDeparture(_ Event) {
	sim.Metrics.IncrementServed()
	arrivedAt, ok := sim.Server.Release()
	if !ok {
		return
	}
	sim.Metrics.RecordWait(sim.Clock - arrivedAt)
	sim.schedule(sim.Clock+sim.sampler.Service(sim.ServiceRate), KindDeparture)
}
