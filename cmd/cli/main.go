package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"cell-analyzer/internal/analysis"
	"cell-analyzer/internal/analyzer"
	"cell-analyzer/internal/config"
	"cell-analyzer/internal/model"
	"cell-analyzer/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "chemistries":
		cmdChemistries()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --config examples/config.yaml --out results/cells.csv [--seed 42]")
	fmt.Println("  cli chemistries")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze prints per-cell voltage/capacity/temperature and a pack summary")
	fmt.Println("  - --seed makes the temperature estimate reproducible")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional output CSV path (e.g. results/cells.csv)")
	seed := fs.Int64("seed", 0, "Optional seed for reproducible temperature estimates (0=time-seeded)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	cells, err := cfg.Pack.ToModelCells()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pack config: %v\n", err)
		os.Exit(1)
	}

	a := analyzer.New()
	if *seed != 0 {
		a = analyzer.NewSeeded(*seed)
	}
	results, err := a.Analyze(cells)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}

	name := cfg.Pack.Name
	if name == "" {
		name = filepath.Base(*cfgPath)
	}
	fmt.Printf("Pack: %s (%d cells)\n\n", name, len(results))
	printResults(results)

	summary := analysis.Summarize(results)
	fmt.Printf("\nTotal capacity=%.2f Wh  Avg temp=%.1f C  Peak voltage=%.1f V\n",
		summary.TotalCapacityWh, summary.AvgTemperatureC, summary.PeakVoltageV)

	if *outPath != "" {
		// ensure output dir exists
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
			os.Exit(1)
		}
		if err := report.WriteResultsCSV(*outPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(results), *outPath)
	}
}

func printResults(results []model.AnalysisResult) {
	fmt.Printf("%-4s %-5s %-9s %-9s %-8s %-12s %-12s\n",
		"cell", "type", "voltage", "current", "temp", "capacity", "range")
	for _, r := range results {
		fmt.Printf("%-4d %-5s %6.1f V  %6.2f A  %5.1f C  %8.2f Wh  %5.1f%%\n",
			r.ID, string(r.Type), r.VoltageV, r.CurrentA, r.TemperatureC, r.CapacityWh, r.VoltageRangePct)
	}
}

func cmdChemistries() {
	fmt.Printf("%-5s %-9s %-13s %s\n", "type", "nominal", "range", "description")
	for _, s := range model.Chemistries() {
		fmt.Printf("%-5s %6.1f V  %4.1f-%4.1f V   %s\n",
			string(s.Type), s.NominalVoltageV, s.MinVoltageV, s.MaxVoltageV, s.Description)
	}
}
