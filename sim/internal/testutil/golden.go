// Package testutil provides shared test infrastructure for the queue simulator.
// It holds the golden dataset types and assertion helpers used across
// sim/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one deterministic scenario: constant interarrival and
// service durations, so the expected metrics can be derived by hand.
type GoldenTestCase struct {
	Name         string        `json:"name"`
	Interarrival float64       `json:"interarrival"`
	Service      float64       `json:"service"`
	Horizon      float64       `json:"horizon"`
	Metrics      GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected report of a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	ServedCustomers int `json:"served_customers"`
	TotalCustomers  int `json:"total_customers"`
	MaxQueueLength  int `json:"max_queue_length"`

	// Floating-point metrics
	AverageWaitTime float64 `json:"average_wait_time"`
	SimEndedTime    float64 `json:"sim_ended_time"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
