// Package conformance runs single-step test vectors against a cpu.CPU
// and reports how closely its register/bus behavior matches the
// recorded trace, the way the original single-step-tests harness
// checked it case by case, cycle by cycle.
package conformance

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fauxboy/sm83/internal/cpu"
	"github.com/fauxboy/sm83/internal/testbus"
	"github.com/fauxboy/sm83/internal/vectors"
)

// Failure describes one test case that didn't match its recorded trace.
type Failure struct {
	Opcode string
	Case   string
	Reason string
}

// OpcodeResult is one opcode's worth of cases run against the core.
type OpcodeResult struct {
	Opcode   string
	Total    int
	Passed   int
	Failures []Failure

	// AccessCounts tallies how many times each address was touched
	// across every case run for this opcode, feeding the heat map.
	AccessCounts map[uint16]int
}

// Report aggregates every opcode's OpcodeResult.
type Report struct {
	Opcodes []OpcodeResult
}

// TotalPassed and TotalCases sum across every opcode in the report.
func (r *Report) TotalPassed() int {
	n := 0
	for _, o := range r.Opcodes {
		n += o.Passed
	}
	return n
}

func (r *Report) TotalCases() int {
	n := 0
	for _, o := range r.Opcodes {
		n += o.Total
	}
	return n
}

// Run loads every vector file under dir and replays each case against a
// freshly constructed CPU, fanning the per-opcode work out across
// workers goroutines. An error from loading a vector file aborts the
// whole run; a mismatched test case is recorded as a Failure instead.
func Run(ctx context.Context, dir string, workers int) (*Report, error) {
	files, err := vectors.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	results := make([]OpcodeResult, 0, len(files))
	resultCh := make(chan OpcodeResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for opcode, cases := range files {
		opcode, cases := opcode, cases
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			resultCh <- runOpcode(opcode, cases)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(resultCh)
	for res := range resultCh {
		results = append(results, res)
	}

	return &Report{Opcodes: results}, nil
}

// runOpcode replays every case for a single opcode's vector file.
func runOpcode(opcode string, cases []vectors.Case) OpcodeResult {
	result := OpcodeResult{Opcode: opcode, Total: len(cases), AccessCounts: map[uint16]int{}}

	for _, tc := range cases {
		// A fresh bus per case starts from all-zero memory.
		bus := testbus.New()
		core := cpu.NewCPU(bus)
		for _, slot := range tc.Initial.RAM {
			bus.Load([][2]int{slot})
		}

		core.Reset(&cpu.State{
			A: tc.Initial.A, B: tc.Initial.B, C: tc.Initial.C, D: tc.Initial.D,
			E: tc.Initial.E, F: tc.Initial.F, H: tc.Initial.H, L: tc.Initial.L,
			SP: tc.Initial.SP, PC: tc.Initial.PC,
		})

		cycleIndex := 0
		var failReason string
		core.SetTickFunc(func(c *cpu.CPU) {
			if failReason != "" || cycleIndex >= len(tc.Cycles) {
				return
			}
			expected := tc.Cycles[cycleIndex]
			switch expected.Mode {
			case vectors.CycleRead, vectors.CycleWrite:
				trace := bus.Trace()
				last := trace[len(trace)-1]
				result.AccessCounts[last.Addr]++
				if expected.Mode == vectors.CycleRead && (last.Mode != cpu.AccessRead || int(last.Addr) != expected.Addr) {
					failReason = fmt.Sprintf("cycle %d: got %s @%#04x, want read @%#04x", cycleIndex, last.Mode, last.Addr, expected.Addr)
				}
				if expected.Mode == vectors.CycleWrite && (last.Mode != cpu.AccessWrite || int(last.Addr) != expected.Addr || int(last.Data) != expected.Data) {
					failReason = fmt.Sprintf("cycle %d: got %s @%#04x=%#02x, want write @%#04x=%#02x", cycleIndex, last.Mode, last.Addr, last.Data, expected.Addr, expected.Data)
				}
			}
			cycleIndex++
		})

		err := core.Step()
		core.ClearTickFunc()

		if err != nil {
			result.Failures = append(result.Failures, Failure{Opcode: opcode, Case: tc.Name, Reason: err.Error()})
			continue
		}
		if failReason != "" {
			result.Failures = append(result.Failures, Failure{Opcode: opcode, Case: tc.Name, Reason: failReason})
			continue
		}
		if cycleIndex != len(tc.Cycles) {
			result.Failures = append(result.Failures, Failure{Opcode: opcode, Case: tc.Name,
				Reason: fmt.Sprintf("ran %d cycles, trace has %d", cycleIndex, len(tc.Cycles))})
			continue
		}

		if mismatch := compareFinal(core, tc.Final); mismatch != "" {
			result.Failures = append(result.Failures, Failure{Opcode: opcode, Case: tc.Name, Reason: mismatch})
			continue
		}

		ramMismatch := ""
		for _, slot := range tc.Final.RAM {
			addr, want := uint16(slot[0]), uint8(slot[1])
			if got := bus.Byte(addr); got != want {
				ramMismatch = fmt.Sprintf("ram[%#04x] = %#02x, want %#02x", addr, got, want)
				break
			}
		}
		if ramMismatch != "" {
			result.Failures = append(result.Failures, Failure{Opcode: opcode, Case: tc.Name, Reason: ramMismatch})
			continue
		}

		result.Passed++
	}

	return result
}

func compareFinal(core *cpu.CPU, want vectors.State) string {
	got := core.Snapshot()
	switch {
	case got.A != want.A:
		return fmt.Sprintf("A = %#02x, want %#02x", got.A, want.A)
	case got.B != want.B:
		return fmt.Sprintf("B = %#02x, want %#02x", got.B, want.B)
	case got.C != want.C:
		return fmt.Sprintf("C = %#02x, want %#02x", got.C, want.C)
	case got.D != want.D:
		return fmt.Sprintf("D = %#02x, want %#02x", got.D, want.D)
	case got.E != want.E:
		return fmt.Sprintf("E = %#02x, want %#02x", got.E, want.E)
	case got.F != want.F:
		return fmt.Sprintf("F = %#02x, want %#02x", got.F, want.F)
	case got.H != want.H:
		return fmt.Sprintf("H = %#02x, want %#02x", got.H, want.H)
	case got.L != want.L:
		return fmt.Sprintf("L = %#02x, want %#02x", got.L, want.L)
	case got.SP != want.SP:
		return fmt.Sprintf("SP = %#04x, want %#04x", got.SP, want.SP)
	case got.PC != want.PC:
		return fmt.Sprintf("PC = %#04x, want %#04x", got.PC, want.PC)
	}
	return ""
}
