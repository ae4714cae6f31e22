package process

import (
	"fmt"

	"github.com/inference-sim/queue-sim/sim"
)

// queueModel is the M/M/1 queue expressed as processes: a generator that
// spawns customers and customers that hold a capacity-1 server.
type queueModel struct {
	cfg     sim.Config
	sampler sim.Sampler
	env     *Environment
	server  *Resource
	metrics *sim.Metrics
}

// RunQueue simulates the single-server queue until cfg.Horizon and reports
// the same statistics as sim.Simulator.
//
// Unlike the event-scheduling engine, the first customer arrives after one
// interarrival time and the run stops at the horizon: customers still queued
// or in service then are not counted as served. Their queueing delay is
// counted once they reach the server.
func RunQueue(cfg sim.Config, sampler sim.Sampler) (sim.Report, error) {
	if err := cfg.Validate(); err != nil {
		return sim.Report{}, err
	}
	if sampler == nil {
		return sim.Report{}, fmt.Errorf("sampler must not be nil")
	}

	env := NewEnvironment()
	m := &queueModel{
		cfg:     cfg,
		sampler: sampler,
		env:     env,
		server:  NewResource(env, 1),
		metrics: sim.NewMetrics(),
	}
	env.Process("generator", m.generateCustomers)
	env.Run(cfg.Horizon)

	m.metrics.ObserveQueueLength(m.server.MaxQueueLength)
	m.metrics.SimEndedTime = env.Now()
	env.log.Debugf("[t=%.4f] Unfinished at horizon: %d in service, %d waiting",
		env.Now(), m.server.Users(), m.server.Waiting())
	return m.metrics.Report(), nil
}

func (m *queueModel) generateCustomers(p *Proc) {
	for {
		p.Timeout(m.sampler.Interarrival(m.cfg.ArrivalRate))
		m.metrics.IncrementArrivals()
		m.env.Process(fmt.Sprintf("customer_%d", m.metrics.Arrivals), m.customer)
	}
}

func (m *queueModel) customer(p *Proc) {
	arrivedAt := m.env.Now()

	m.server.Request(p)
	m.metrics.RecordWait(m.env.Now() - arrivedAt)

	p.Timeout(m.sampler.Service(m.cfg.ServiceRate))
	m.metrics.IncrementServed()
	m.server.Release()
}
