package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quickConfig keeps aggregation tests fast: fewer, shorter episodes.
func quickConfig() Config {
	cfg := DefaultConfig()
	cfg.Episodes = 10
	cfg.SimTime = 400
	return cfg
}

func TestRunComparison_OneRowPerArchitecture(t *testing.T) {
	rows, err := RunComparison(quickConfig())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Monolithic", rows[0].Architecture)
	assert.Equal(t, "RPA", rows[1].Architecture)
	assert.Equal(t, "MAS", rows[2].Architecture)
	for _, row := range rows {
		assert.Empty(t, row.Scenario)
		assert.Greater(t, row.Throughput, 0.0)
		assert.Greater(t, row.AvgCycleTime, 0.0)
	}
}

func TestRunComparison_Deterministic(t *testing.T) {
	cfg := quickConfig()
	rows1, err := RunComparison(cfg)
	require.NoError(t, err)
	rows2, err := RunComparison(cfg)
	require.NoError(t, err)
	assert.Equal(t, rows1, rows2)
}

func TestRunComparison_SeedChangesResults(t *testing.T) {
	cfg := quickConfig()
	rows1, err := RunComparison(cfg)
	require.NoError(t, err)

	cfg.Seed = 43
	rows2, err := RunComparison(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, rows1, rows2)
}

func TestRunArchitecture_ZeroFailureZeroErrorRate(t *testing.T) {
	cfg := quickConfig()
	cfg.FailureProb = 0
	for _, arch := range Architectures() {
		row, err := RunArchitecture(arch, cfg, "")
		require.NoError(t, err)
		assert.Zerof(t, row.ErrorRatePct, "%s error rate with failure_prob=0", arch)
	}
}

func TestRunArchitecture_OnlyMASAccruesErrors(t *testing.T) {
	cfg := quickConfig()
	for _, arch := range []Architecture{ArchitectureMonolithic, ArchitectureRPA} {
		row, err := RunArchitecture(arch, cfg, "")
		require.NoError(t, err)
		assert.Zerof(t, row.ErrorRatePct, "%s must never accrue errors", arch)
	}
	mas, err := RunArchitecture(ArchitectureMAS, cfg, "")
	require.NoError(t, err)
	assert.Greater(t, mas.ErrorRatePct, 0.0)
}

func TestRunArchitecture_ZeroCompletionEpisodesAverageAsZero(t *testing.T) {
	// Certain failure: Monolithic completes nothing in any episode; the
	// mean-of-means policy reports zeros rather than excluding episodes.
	cfg := quickConfig()
	cfg.FailureProb = 1
	row, err := RunArchitecture(ArchitectureMonolithic, cfg, "")
	require.NoError(t, err)
	assert.Zero(t, row.Throughput)
	assert.Zero(t, row.AvgCycleTime)
	assert.Zero(t, row.ErrorRatePct)
}

func TestRunArchitecture_InvalidConfigFailsFast(t *testing.T) {
	cfg := quickConfig()
	cfg.ArrivalRate = -1
	_, err := RunArchitecture(ArchitectureMAS, cfg, "")
	assert.Error(t, err)
}

func TestRunScalability_RowPerArchitectureAndRate(t *testing.T) {
	cfg := quickConfig()
	cfg.Episodes = 5
	rates := []float64{5, 8}

	rows, err := RunScalability(cfg, rates)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	i := 0
	for _, rate := range rates {
		for _, arch := range Architectures() {
			assert.Equal(t, string(arch), rows[i].Architecture)
			assert.Equal(t, fmt.Sprintf("lambda=%g", rate), rows[i].Scenario)
			i++
		}
	}
}

func TestRunScalability_EmptyRatesError(t *testing.T) {
	_, err := RunScalability(quickConfig(), nil)
	assert.Error(t, err)
}

func TestRunScalability_QueueingDelayGrowsWithLoad(t *testing.T) {
	// Moderate loads below saturation: raising λ from 0.1 to 0.3 pushes
	// the Monolithic pool (10 slots held ~25 units per order) past 70%
	// utilization, so queueing delay and with it the mean cycle time must
	// grow for the lock-based designs, never shrink.
	cfg := DefaultConfig()
	cfg.Episodes = 20

	rows, err := RunScalability(cfg, []float64{0.1, 0.3})
	require.NoError(t, err)
	require.Len(t, rows, 6)

	byKey := make(map[string]ResultRow, len(rows))
	for _, row := range rows {
		byKey[row.Architecture+"/"+row.Scenario] = row
	}

	for _, arch := range []string{"Monolithic", "RPA"} {
		low := byKey[arch+"/lambda=0.1"].AvgCycleTime
		high := byKey[arch+"/lambda=0.3"].AvgCycleTime
		assert.Greaterf(t, high, low, "%s cycle time must grow with load", arch)
	}

	// At light load queueing is negligible and the chains' service times
	// dominate: the global-lock design is strictly slower end to end.
	assert.Greater(t,
		byKey["Monolithic/lambda=0.1"].AvgCycleTime,
		byKey["RPA/lambda=0.1"].AvgCycleTime,
		"monolithic service chain must be slower than RPA's at light load")
}
