package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/fulfillment-sim/fulfillment-sim/sim"
)

var (
	// CLI flags; defaults mirror sim.DefaultConfig and only override the
	// scenario file when explicitly set.
	configPath   string    // optional YAML scenario file
	logLevel     string    // log verbosity level
	seed         int64     // master seed for the whole run
	simTime      float64   // simulated duration of one episode
	episodes     int       // replications per architecture/scenario
	arrivalRate  float64   // Poisson arrival rate λ
	resources    int       // Monolithic worker-pool capacity
	failureProb  float64   // base credit-failure probability
	overrideProb float64   // MAS optimistic-override probability
	outputPath   string    // optional CSV export path
	stressRates  []float64 // arrival rates for the stress sweep
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "fulfillment-sim",
	Short: "Discrete-event simulator comparing order-fulfillment process architectures",
}

// compareCmd runs the three architectures at the configured arrival rate
// and prints the aggregated KPI table with the economic-value projection.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare Monolithic, RPA and MAS at a single arrival rate",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := buildConfig(cmd)

		logrus.Infof("Running comparison: λ=%g, %d workers, %d episodes of %g time units, seed=%d",
			cfg.ArrivalRate, cfg.Resources, cfg.Episodes, cfg.SimTime, cfg.Seed)

		rows, err := sim.RunComparison(cfg)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		PrintResults(os.Stdout, rows, true)
		PrintImprovements(os.Stdout, rows)
		exportCSV(rows, true)
	},
}

// stressCmd sweeps the arrival rate to study scalability under load.
var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Sweep arrival rates to stress-test the three architectures",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := buildConfig(cmd)

		logrus.Infof("Running scalability stress test: rates=%v, %d workers, %d episodes each, seed=%d",
			stressRates, cfg.Resources, cfg.Episodes, cfg.Seed)

		rows, err := sim.RunScalability(cfg, stressRates)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		PrintResults(os.Stdout, rows, false)
		exportCSV(rows, false)
	},
}

// buildConfig assembles the effective configuration: scenario file (if
// given) on top of defaults, then explicitly-set flags on top of that.
// Invalid configuration is fatal before any simulation starts.
func buildConfig(cmd *cobra.Command) sim.Config {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	cfg := sim.DefaultConfig()
	if configPath != "" {
		cfg, err = sim.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("sim-time") {
		cfg.SimTime = simTime
	}
	if flags.Changed("episodes") {
		cfg.Episodes = episodes
	}
	if flags.Changed("rate") {
		cfg.ArrivalRate = arrivalRate
	}
	if flags.Changed("resources") {
		cfg.Resources = resources
	}
	if flags.Changed("failure-prob") {
		cfg.FailureProb = failureProb
	}
	if flags.Changed("override-prob") {
		cfg.OverrideProb = overrideProb
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

func exportCSV(rows []sim.ResultRow, econ bool) {
	if outputPath == "" {
		return
	}
	if err := WriteCSV(outputPath, rows, econ); err != nil {
		logrus.Fatalf("write results: %v", err)
	}
	logrus.Infof("Results saved to %s", outputPath)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultConfig()

	for _, c := range []*cobra.Command{compareCmd, stressCmd} {
		c.Flags().StringVar(&configPath, "config", "", "YAML scenario file (flags override its values)")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().Int64Var(&seed, "seed", defaults.Seed, "Master seed for the whole run")
		c.Flags().Float64Var(&simTime, "sim-time", defaults.SimTime, "Simulated duration of one episode (time units)")
		c.Flags().IntVar(&episodes, "episodes", defaults.Episodes, "Replications per architecture and scenario")
		c.Flags().Float64Var(&arrivalRate, "rate", defaults.ArrivalRate, "Order arrival rate λ (orders per time unit)")
		c.Flags().IntVar(&resources, "resources", defaults.Resources, "Monolithic worker-pool capacity")
		c.Flags().Float64Var(&failureProb, "failure-prob", defaults.FailureProb, "Base credit-check failure probability")
		c.Flags().Float64Var(&overrideProb, "override-prob", defaults.OverrideProb, "MAS optimistic-override probability")
		c.Flags().StringVar(&outputPath, "output", "", "CSV file to write the result table to")
	}

	stressCmd.Flags().Float64SliceVar(&stressRates, "rates", []float64{5, 8}, "Comma-separated arrival rates to sweep")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(stressCmd)
}
