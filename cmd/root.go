package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/process"
	"github.com/inference-sim/queue-sim/sim/trace"
)

const (
	engineEvent   = "event"
	engineProcess = "process"
)

var (
	arrivalRate       float64 // Customers arriving per time unit
	serviceRate       float64 // Services completed per time unit
	simulationHorizon float64 // No arrivals are scheduled at or after this time
	seed              int64   // Seed for the exponential sampler
	logLevel          string  // Log verbosity level
	engine            string  // "event" or "process"
	traceLevel        string  // "none" or "events"
	configPath        string  // Optional YAML run configuration
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queue-sim",
	Short: "Discrete-event simulator for a single-server M/M/1 queue",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if configPath != "" {
			fc, err := LoadFileConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load config: %v", err)
			}
			applyFileConfig(cmd, fc)
		}
	},
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the queue simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := currentConfig()
		logrus.Infof("Starting %s simulation: arrival_rate=%v service_rate=%v horizon=%v seed=%d",
			engine, cfg.ArrivalRate, cfg.ServiceRate, cfg.Horizon, cfg.Seed)

		startTime := time.Now()
		if err := runSimulation(cmd.OutOrStdout(), cfg, engine, trace.TraceLevel(traceLevel)); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

func currentConfig() sim.Config {
	return sim.Config{
		ArrivalRate: arrivalRate,
		ServiceRate: serviceRate,
		Horizon:     simulationHorizon,
		Seed:        seed,
	}
}

// runSimulation runs cfg on the chosen engine and prints the report (and the
// trace summary when tracing is enabled) to w.
func runSimulation(w io.Writer, cfg sim.Config, engineName string, level trace.TraceLevel) error {
	if !trace.IsValidTraceLevel(string(level)) {
		return fmt.Errorf("unknown trace level %q", level)
	}

	switch engineName {
	case engineEvent:
		s, err := sim.NewSimulator(cfg, sim.NewSeededSampler(cfg.Seed))
		if err != nil {
			return err
		}
		s.WithTrace(trace.TraceConfig{Level: level})
		report := s.Run()
		report.Print(w)
		if s.Trace != nil {
			printTraceSummary(w, trace.Summarize(s.Trace))
		}
		return nil
	case engineProcess:
		if level == trace.TraceLevelEvents {
			logrus.Warnf("Tracing is only supported by the %q engine; ignoring", engineEvent)
		}
		report, err := process.RunQueue(cfg, sim.NewSeededSampler(cfg.Seed))
		if err != nil {
			return err
		}
		report.Print(w)
		return nil
	default:
		return fmt.Errorf("unknown engine %q (want %q or %q)", engineName, engineEvent, engineProcess)
	}
}

func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Event Trace ===")
	fmt.Fprintf(w, "Events dispatched      : %d (%d arrivals, %d departures)\n", s.TotalEvents, s.Arrivals, s.Departures)
	fmt.Fprintf(w, "Time monotonic         : %v\n", s.Monotonic)
	fmt.Fprintf(w, "Coupling violations    : %d\n", s.CouplingViolations)
	fmt.Fprintf(w, "Counter violations     : %d\n", s.CounterViolations)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML run configuration; explicit flags override it")

	rootCmd.PersistentFlags().Float64Var(&arrivalRate, "arrival-rate", 2.0, "Customers arriving per time unit")
	rootCmd.PersistentFlags().Float64Var(&serviceRate, "service-rate", 1.0, "Services completed per time unit")
	rootCmd.PersistentFlags().Float64Var(&simulationHorizon, "horizon", 10.0, "Simulation horizon; no arrivals are scheduled at or after it")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for the exponential sampler")

	runCmd.Flags().StringVar(&engine, "engine", engineEvent, "Simulation engine (event, process)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Event tracing (none, events)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
