// Package validation cross-checks the event-scheduling engine against the
// process-interaction engine and the closed-form M/M/1 values.
//
// Individual traces of the two engines differ (the process model's first
// arrival is not at time 0 and it stops at the horizon), so agreement is judged
// on the distribution of average wait across seeded replications.
package validation

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/analytic"
	"github.com/inference-sim/queue-sim/sim/process"
)

// EngineStats summarizes one engine over all replications.
type EngineStats struct {
	Engine       string    `yaml:"engine"`
	AverageWaits []float64 `yaml:"-"`
	MeanWait     float64   `yaml:"mean_wait"`
	StdDevWait   float64   `yaml:"stddev_wait"`
	CILow        float64   `yaml:"ci_low"`
	CIHigh       float64   `yaml:"ci_high"`
	MeanServed   float64   `yaml:"mean_served"`
	MeanArrivals float64   `yaml:"mean_arrivals"`
}

// Result is the outcome of Compare.
type Result struct {
	Config       sim.Config  `yaml:"config"`
	Replications int         `yaml:"replications"`
	Confidence   float64     `yaml:"confidence"`
	Event        EngineStats `yaml:"event"`
	Process      EngineStats `yaml:"process"`
	// AnalyticWait is the steady-state Wq, or NaN when ρ >= 1.
	AnalyticWait float64 `yaml:"analytic_wait"`
}

// Agree reports whether the two engines' confidence intervals overlap.
func (r *Result) Agree() bool {
	return r.Event.CILow <= r.Process.CIHigh && r.Process.CILow <= r.Event.CIHigh
}

// Compare runs replications of both engines on cfg. Replication i of both
// engines uses the same seed, derived from cfg.Seed.
func Compare(cfg sim.Config, replications int, confidence float64) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if replications < 2 {
		return nil, fmt.Errorf("replications must be >= 2, got %d", replications)
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("confidence must be in (0, 1), got %v", confidence)
	}

	seeds := ReplicationSeeds(cfg.Seed, replications)
	event := make([]sim.Report, 0, replications)
	proc := make([]sim.Report, 0, replications)
	for i, seed := range seeds {
		s, err := sim.NewSimulator(cfg, sim.NewSeededSampler(seed))
		if err != nil {
			return nil, err
		}
		event = append(event, s.Run())

		r, err := process.RunQueue(cfg, sim.NewSeededSampler(seed))
		if err != nil {
			return nil, err
		}
		proc = append(proc, r)
		logrus.Debugf("replication %d (seed %d): event wait=%.4f process wait=%.4f",
			i, seed, event[i].AverageWaitTime, r.AverageWaitTime)
	}

	res := &Result{
		Config:       cfg,
		Replications: replications,
		Confidence:   confidence,
		Event:        summarize("event", event, confidence),
		Process:      summarize("process", proc, confidence),
		AnalyticWait: math.NaN(),
	}
	m, err := analytic.Solve(cfg.ArrivalRate, cfg.ServiceRate)
	if err != nil {
		logrus.Warnf("no analytic reference for %s: %v", m, err)
	} else {
		res.AnalyticWait = m.AvgWaitTime
		logrus.Infof("analytic reference: %s", m)
	}
	return res, nil
}

// ReplicationSeeds derives n independent seeds from a master seed.
func ReplicationSeeds(master int64, n int) []int64 {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(master))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.ForSubsystem(sim.SubsystemReplication(i)).Int64()
	}
	return seeds
}

func summarize(engine string, reports []sim.Report, confidence float64) EngineStats {
	n := len(reports)
	waits := make([]float64, n)
	served := make([]float64, n)
	arrivals := make([]float64, n)
	for i, r := range reports {
		waits[i] = r.AverageWaitTime
		served[i] = float64(r.ServedCustomers)
		arrivals[i] = float64(r.TotalCustomers)
	}

	mean, std := stat.MeanStdDev(waits, nil)
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(1 - (1-confidence)/2)
	half := t * std / math.Sqrt(float64(n))

	return EngineStats{
		Engine:       engine,
		AverageWaits: waits,
		MeanWait:     mean,
		StdDevWait:   std,
		CILow:        mean - half,
		CIHigh:       mean + half,
		MeanServed:   stat.Mean(served, nil),
		MeanArrivals: stat.Mean(arrivals, nil),
	}
}
