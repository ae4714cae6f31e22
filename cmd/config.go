package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// FileConfig is the structure of a --config YAML file.
// All fields are optional; a field set on the command line wins over the file.
// Strict parsing (KnownFields) rejects unknown keys so typos cause errors.
type FileConfig struct {
	ArrivalRate  *float64 `yaml:"arrival_rate"`
	ServiceRate  *float64 `yaml:"service_rate"`
	Horizon      *float64 `yaml:"horizon"`
	Seed         *int64   `yaml:"seed"`
	Engine       *string  `yaml:"engine"`
	TraceLevel   *string  `yaml:"trace_level"`
	Replications *int     `yaml:"replications"`
	Confidence   *float64 `yaml:"confidence"`
}

// LoadFileConfig parses a YAML run configuration with strict field checking.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg FileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyFileConfig copies values from the file into the flag variables of
// cmd, skipping flags the user set explicitly.
func applyFileConfig(cmd *cobra.Command, fc *FileConfig) {
	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Lookup(name) != nil && !flags.Changed(name) {
			apply()
		}
	}
	if fc.ArrivalRate != nil {
		set("arrival-rate", func() { arrivalRate = *fc.ArrivalRate })
	}
	if fc.ServiceRate != nil {
		set("service-rate", func() { serviceRate = *fc.ServiceRate })
	}
	if fc.Horizon != nil {
		set("horizon", func() { simulationHorizon = *fc.Horizon })
	}
	if fc.Seed != nil {
		set("seed", func() { seed = *fc.Seed })
	}
	if fc.Engine != nil {
		set("engine", func() { engine = *fc.Engine })
	}
	if fc.TraceLevel != nil {
		set("trace-level", func() { traceLevel = *fc.TraceLevel })
	}
	if fc.Replications != nil {
		set("replications", func() { replications = *fc.Replications })
	}
	if fc.Confidence != nil {
		set("confidence", func() { confidence = *fc.Confidence })
	}
}
