package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is a closed interval for uniform draws.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// StageTimes groups the uniform service-time ranges for the four order
// stages of the stage-chained models (Monolithic and RPA).
type StageTimes struct {
	Credit      Range `yaml:"credit"`
	Inventory   Range `yaml:"inventory"`
	Fulfillment Range `yaml:"fulfillment"`
	Billing     Range `yaml:"billing"`
}

// MASTimes groups the MAS service-time ranges: a credit check followed by
// a single combined pipelined-execution advance that replaces the
// separate inventory/fulfillment/billing stages of the other models.
type MASTimes struct {
	Credit   Range `yaml:"credit"`
	Pipeline Range `yaml:"pipeline"`
}

// Config is the immutable parameter set for a simulation run. It is
// passed by value into episode construction, so independent replications
// can never share mutable configuration state.
type Config struct {
	SimTime     float64 `yaml:"sim_time"`     // simulated duration of one episode
	Episodes    int     `yaml:"episodes"`     // replications per (architecture, scenario)
	ArrivalRate float64 `yaml:"arrival_rate"` // Poisson λ, orders per time unit
	Resources   int     `yaml:"resources"`    // Monolithic worker-pool capacity

	FailureProb  float64 `yaml:"failure_prob"`  // credit-check failure probability
	OverrideProb float64 `yaml:"override_prob"` // MAS optimistic-override probability given a failure

	Seed int64 `yaml:"seed"` // master seed for the whole run

	ValueRange Range `yaml:"value_range"` // order monetary value U(min,max)

	Monolithic StageTimes `yaml:"monolithic"`
	RPA        StageTimes `yaml:"rpa"`
	MAS        MASTimes   `yaml:"mas"`
}

// DefaultConfig returns the baseline parameters from the reference study:
// 1000 time units per episode, 50 replications, λ=5, 10 workers, 10% base
// failure probability and a 60% MAS override policy.
func DefaultConfig() Config {
	return Config{
		SimTime:      1000,
		Episodes:     50,
		ArrivalRate:  5,
		Resources:    10,
		FailureProb:  0.10,
		OverrideProb: 0.60,
		Seed:         42,
		ValueRange:   Range{Min: 100, Max: 5000},
		Monolithic: StageTimes{
			Credit:      Range{Min: 5, Max: 15},
			Inventory:   Range{Min: 3, Max: 8},
			Fulfillment: Range{Min: 5, Max: 12},
			Billing:     Range{Min: 2, Max: 5},
		},
		RPA: StageTimes{
			Credit:      Range{Min: 4, Max: 10},
			Inventory:   Range{Min: 2, Max: 6},
			Fulfillment: Range{Min: 4, Max: 10},
			Billing:     Range{Min: 1, Max: 4},
		},
		MAS: MASTimes{
			Credit:   Range{Min: 6, Max: 12},
			Pipeline: Range{Min: 5, Max: 10},
		},
	}
}

// StagePoolCapacity returns the capacity of each dedicated stage pool for
// the staged models: roughly one quarter of the Monolithic capacity,
// rounded up (capacity 10 → 3 per stage pool).
func (c Config) StagePoolCapacity() int {
	return c.Resources/4 + 1
}

// Validate fails fast on parameters under which the simulation has no
// meaningful behavior.
func (c Config) Validate() error {
	if c.SimTime <= 0 {
		return fmt.Errorf("sim_time must be positive, got %v", c.SimTime)
	}
	if c.Episodes <= 0 {
		return fmt.Errorf("episodes must be positive, got %d", c.Episodes)
	}
	if c.ArrivalRate <= 0 {
		return fmt.Errorf("arrival_rate must be positive, got %v", c.ArrivalRate)
	}
	if c.Resources <= 0 {
		return fmt.Errorf("resources must be positive, got %d", c.Resources)
	}
	if c.FailureProb < 0 || c.FailureProb > 1 {
		return fmt.Errorf("failure_prob must be in [0,1], got %v", c.FailureProb)
	}
	if c.OverrideProb < 0 || c.OverrideProb > 1 {
		return fmt.Errorf("override_prob must be in [0,1], got %v", c.OverrideProb)
	}
	if err := validateRange("value_range", c.ValueRange); err != nil {
		return err
	}
	stageRanges := []struct {
		name string
		r    Range
	}{
		{"monolithic.credit", c.Monolithic.Credit},
		{"monolithic.inventory", c.Monolithic.Inventory},
		{"monolithic.fulfillment", c.Monolithic.Fulfillment},
		{"monolithic.billing", c.Monolithic.Billing},
		{"rpa.credit", c.RPA.Credit},
		{"rpa.inventory", c.RPA.Inventory},
		{"rpa.fulfillment", c.RPA.Fulfillment},
		{"rpa.billing", c.RPA.Billing},
		{"mas.credit", c.MAS.Credit},
		{"mas.pipeline", c.MAS.Pipeline},
	}
	for _, sr := range stageRanges {
		if err := validateRange(sr.name, sr.r); err != nil {
			return err
		}
	}
	return nil
}

func validateRange(name string, r Range) error {
	if r.Min < 0 {
		return fmt.Errorf("%s: min must be non-negative, got %v", name, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s: max %v is below min %v", name, r.Max, r.Min)
	}
	return nil
}

// LoadConfig reads a YAML scenario file on top of DefaultConfig, so a file
// only needs to name the parameters it changes. The merged config is
// validated before being returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
