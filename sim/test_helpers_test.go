package sim

import "testing"

// fixedSampler returns constant durations regardless of rate.
type fixedSampler struct {
	interarrival float64
	service      float64
}

func (s fixedSampler) Interarrival(float64) float64 { return s.interarrival }
func (s fixedSampler) Service(float64) float64      { return s.service }

// scriptedSampler replays the given durations in order, then repeats the last one.
type scriptedSampler struct {
	interarrivals []float64
	services      []float64
}

func (s *scriptedSampler) Interarrival(float64) float64 {
	return next(&s.interarrivals)
}

func (s *scriptedSampler) Service(float64) float64 {
	return next(&s.services)
}

func next(vals *[]float64) float64 {
	v := (*vals)[0]
	if len(*vals) > 1 {
		*vals = (*vals)[1:]
	}
	return v
}

func mustSimulator(t testing.TB, cfg Config, s Sampler) *Simulator {
	t.Helper()
	sim, err := NewSimulator(cfg, s)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return sim
}
