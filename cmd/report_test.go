package cmd

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sim "github.com/fulfillment-sim/fulfillment-sim/sim"
)

func sampleRows() []sim.ResultRow {
	return []sim.ResultRow{
		{Architecture: "Monolithic", Throughput: 120, AvgCycleTime: 28.51, ErrorRatePct: 0},
		{Architecture: "RPA", Throughput: 150, AvgCycleTime: 19.02, ErrorRatePct: 0},
		{Architecture: "MAS", Throughput: 180, AvgCycleTime: 15.77, ErrorRatePct: 6.1},
	}
}

func TestNetEconomicValue_Formula(t *testing.T) {
	row := sim.ResultRow{Throughput: 100, ErrorRatePct: 10}
	// 100 orders × $2500 × 20% margin, minus 10 dirty orders × $50 fix.
	want := 100*2500*0.20 - 100*0.10*50
	if got := NetEconomicValue(row); got != want {
		t.Errorf("NetEconomicValue = %v, want %v", got, want)
	}
}

func TestPrintResults_EconomicTable(t *testing.T) {
	var buf bytes.Buffer
	PrintResults(&buf, sampleRows(), true)
	out := buf.String()

	for _, want := range []string{"System", "Net Economic Value ($)", "Monolithic", "RPA", "MAS", "28.51"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintResults_ScenarioTable(t *testing.T) {
	rows := sampleRows()
	for i := range rows {
		rows[i].Scenario = "lambda=8"
	}
	var buf bytes.Buffer
	PrintResults(&buf, rows, false)
	out := buf.String()

	if !strings.Contains(out, "Load") || !strings.Contains(out, "lambda=8") {
		t.Errorf("scenario table missing load column:\n%s", out)
	}
	if strings.Contains(out, "Economic") {
		t.Error("scenario table must not carry the economic column")
	}
}

func TestPrintImprovements_PairwiseDeltas(t *testing.T) {
	var buf bytes.Buffer
	PrintImprovements(&buf, sampleRows())
	out := buf.String()

	// MAS vs Monolithic: (180-120)/120 = +50%; RPA vs Monolithic: +25%;
	// MAS vs RPA: +20%.
	for _, want := range []string{"+50.0%", "+25.0%", "+20.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("improvements output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintImprovements_IncompleteRowsSilent(t *testing.T) {
	var buf bytes.Buffer
	PrintImprovements(&buf, sampleRows()[:2])
	if buf.Len() != 0 {
		t.Errorf("expected no output for incomplete rows, got:\n%s", buf.String())
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := WriteCSV(path, sampleRows(), true); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want header + 3 rows", len(records))
	}
	header := strings.Join(records[0], ",")
	if header != "system,scenario,throughput,avg_cycle_time,error_rate_pct,net_economic_value" {
		t.Errorf("unexpected header %q", header)
	}
	if records[1][0] != "Monolithic" || records[3][0] != "MAS" {
		t.Errorf("rows out of order: %v", records)
	}
	if records[1][2] != "120.00" {
		t.Errorf("throughput cell = %q, want 120.00", records[1][2])
	}
}

func TestWriteCSV_NoEconColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := WriteCSV(path, sampleRows(), false); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "net_economic_value") {
		t.Error("econ column present when econ=false")
	}
}
