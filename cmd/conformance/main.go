// Command conformance replays a directory of single-step test vectors
// against the cpu package and reports pass/fail per opcode.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/fauxboy/sm83/internal/conformance"
	"github.com/fauxboy/sm83/pkg/log"
)

func main() {
	vectorDir := flag.String("vectors", "", "directory of single-step test vector files")
	workers := flag.Int("workers", 8, "number of opcodes to run concurrently")
	chartPath := flag.String("chart", "", "write a pass-rate bar chart PNG to this path")
	heatmapPath := flag.String("heatmap", "", "write an address access heat map PNG to this path")
	verbose := flag.Bool("v", false, "print every failing case, not just the per-opcode summary")
	flag.Parse()

	logger := log.New()

	if *vectorDir == "" {
		logger.Errorf("conformance: -vectors is required")
		os.Exit(2)
	}

	report, err := conformance.Run(context.Background(), *vectorDir, *workers)
	if err != nil {
		logger.Errorf("conformance: %v", err)
		os.Exit(1)
	}

	var opcodes []string
	for _, o := range report.Opcodes {
		opcodes = append(opcodes, o.Opcode)
	}
	sort.Strings(opcodes)

	byName := map[string]int{}
	for i, o := range report.Opcodes {
		byName[o.Opcode] = i
	}

	color := conformance.IsTerminal()
	failed := 0
	for _, name := range opcodes {
		o := report.Opcodes[byName[name]]
		status := "ok"
		if o.Passed != o.Total {
			status = "FAIL"
			failed++
		}
		if color && status == "FAIL" {
			status = "\033[31mFAIL\033[0m"
		}
		fmt.Printf("%-8s %-4s %d/%d\n", name, status, o.Passed, o.Total)
		if *verbose {
			for _, f := range o.Failures {
				fmt.Printf("    %s: %s\n", f.Case, f.Reason)
			}
		}
	}

	fmt.Printf("\n%d/%d cases passed across %d opcodes (fingerprint %016x)\n",
		report.TotalPassed(), report.TotalCases(), len(report.Opcodes), report.Fingerprint())

	if *chartPath != "" {
		if err := report.SaveChart(*chartPath); err != nil {
			logger.Errorf("conformance: writing chart: %v", err)
		}
	}
	if *heatmapPath != "" {
		if err := report.SaveHeatmap(*heatmapPath); err != nil {
			logger.Errorf("conformance: writing heatmap: %v", err)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
