package main

import (
	"flag"
	"fmt"

	"cell-analyzer/internal/analysis"
	"cell-analyzer/internal/analyzer"
	"cell-analyzer/internal/config"
)

// Demo:
// - Load a preset pack from examples/packs
// - Run the analyzer over it
// - Print per-cell results and the pack summary to show how models fit together
func main() {
	packPath := flag.String("pack", "examples/packs/1_starter_lfp.yaml", "Path to a preset pack YAML")
	seed := flag.Int64("seed", 42, "Seed for reproducible temperature estimates")
	flag.Parse()

	pack, err := config.LoadPackFile(*packPath)
	if err != nil {
		panic(err)
	}
	cells, err := pack.ToModelCells()
	if err != nil {
		panic(err)
	}

	a := analyzer.NewSeeded(*seed)
	results, err := a.Analyze(cells)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Loaded pack %q with %d cells\n\n", pack.Name, len(cells))
	for _, r := range results {
		fmt.Printf(
			"cell %d  type=%-4s v=%4.1fV  i=%5.2fA  temp=%5.1fC  cap=%7.2fWh  range=%5.1f%% (%.1f-%.1fV)\n",
			r.ID,
			string(r.Type),
			r.VoltageV,
			r.CurrentA,
			r.TemperatureC,
			r.CapacityWh,
			r.VoltageRangePct,
			r.MinVoltageV,
			r.MaxVoltageV,
		)
	}

	s := analysis.Summarize(results)
	fmt.Printf("\nDone. Cells=%d  Total capacity=%.2f Wh  Avg temp=%.1f C  Peak voltage=%.1f V\n",
		s.CellCount, s.TotalCapacityWh, s.AvgTemperatureC, s.PeakVoltageV)
	for t, n := range s.CountByType {
		fmt.Printf("  %s: %d\n", string(t), n)
	}
}
