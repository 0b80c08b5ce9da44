package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	sim "github.com/fulfillment-sim/fulfillment-sim/sim"
)

// Economic projection constants from the reference study: mean order value
// is the midpoint of U(100, 5000), profit margin 20%, and every dirty
// order costs a manual fix downstream.
const (
	avgOrderValue = 2500.0
	profitMargin  = 0.20
	manualFixCost = 50.0
)

// NetEconomicValue projects the per-episode economic outcome of a result
// row: gross profit on completed orders minus the manual-fix cost of the
// dirty ones.
func NetEconomicValue(row sim.ResultRow) float64 {
	throughput := math.Round(row.Throughput)
	grossProfit := throughput * avgOrderValue * profitMargin
	errorCost := throughput * (row.ErrorRatePct / 100) * manualFixCost
	return grossProfit - errorCost
}

// PrintResults renders the result rows as an aligned console table. The
// economic-value column is a reporting add-on, not an engine output, and
// is shown only when econ is set.
func PrintResults(w io.Writer, rows []sim.ResultRow, econ bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if econ {
		fmt.Fprintln(tw, "System\tThroughput (Orders)\tAvg Cycle Time\tError Rate (%)\tNet Economic Value ($)")
	} else {
		fmt.Fprintln(tw, "Load\tSystem\tThroughput (Orders)\tAvg Cycle Time\tError Rate (%)")
	}
	for _, row := range rows {
		if econ {
			fmt.Fprintf(tw, "%s\t%.0f\t%.2f\t%.2f\t%.0f\n",
				row.Architecture, math.Round(row.Throughput), row.AvgCycleTime, row.ErrorRatePct,
				NetEconomicValue(row))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%.0f\t%.2f\t%.2f\n",
				row.Scenario, row.Architecture, math.Round(row.Throughput), row.AvgCycleTime, row.ErrorRatePct)
		}
	}
	tw.Flush()
}

// PrintImprovements reports pairwise throughput deltas between the three
// architectures of a comparison run. Rows missing an architecture are
// skipped silently (e.g. a filtered table).
func PrintImprovements(w io.Writer, rows []sim.ResultRow) {
	byArch := make(map[string]sim.ResultRow, len(rows))
	for _, row := range rows {
		byArch[row.Architecture] = row
	}
	mono, okM := byArch[string(sim.ArchitectureMonolithic)]
	rpa, okR := byArch[string(sim.ArchitectureRPA)]
	mas, okA := byArch[string(sim.ArchitectureMAS)]
	if !okM || !okR || !okA {
		return
	}

	fmt.Fprintln(w, "\n--- Key Improvements ---")
	fmt.Fprintf(w, "MAS vs Monolithic Throughput: %+.1f%%\n", throughputDelta(mas, mono))
	fmt.Fprintf(w, "RPA vs Monolithic Throughput: %+.1f%%\n", throughputDelta(rpa, mono))
	fmt.Fprintf(w, "MAS vs RPA Throughput: %+.1f%%\n", throughputDelta(mas, rpa))
}

func throughputDelta(a, base sim.ResultRow) float64 {
	if base.Throughput == 0 {
		return 0
	}
	return (a.Throughput - base.Throughput) / base.Throughput * 100
}

// WriteCSV exports the result rows as a flat CSV table, the only
// persistence format the simulator supports.
func WriteCSV(path string, rows []sim.ResultRow, econ bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"system", "scenario", "throughput", "avg_cycle_time", "error_rate_pct"}
	if econ {
		header = append(header, "net_economic_value")
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Architecture,
			row.Scenario,
			fmt.Sprintf("%.2f", row.Throughput),
			fmt.Sprintf("%.2f", row.AvgCycleTime),
			fmt.Sprintf("%.2f", row.ErrorRatePct),
		}
		if econ {
			record = append(record, fmt.Sprintf("%.0f", NetEconomicValue(row)))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
