package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/validation"
)

var (
	replications int     // Seeded runs per engine
	confidence   float64 // Confidence level of the reported intervals
)

// compareCmd cross-validates the two engines against each other and the analytic model
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run seeded replications of both engines and compare average wait",
	Long:  "Runs the event-scheduling and process-interaction engines on the same seeds and prints summary statistics as YAML to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCompare(cmd.OutOrStdout(), currentConfig(), replications, confidence); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

func runCompare(w io.Writer, cfg sim.Config, n int, conf float64) error {
	res, err := validation.Compare(cfg, n, conf)
	if err != nil {
		return err
	}
	if !res.Agree() {
		logrus.Warnf("engine confidence intervals do not overlap: event [%.4f, %.4f], process [%.4f, %.4f]",
			res.Event.CILow, res.Event.CIHigh, res.Process.CILow, res.Process.CIHigh)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return enc.Close()
}

func init() {
	compareCmd.Flags().IntVar(&replications, "replications", 30, "Seeded runs per engine")
	compareCmd.Flags().Float64Var(&confidence, "confidence", 0.95, "Confidence level for the intervals")
}
