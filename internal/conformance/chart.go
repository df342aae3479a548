package conformance

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveChart renders a bar chart of each opcode's pass rate (passed cases
// over total cases) and writes it to path as a PNG, the way the performance and
// visualizer views chart a running series with gonum/plot.
func (r *Report) SaveChart(path string) error {
	opcodes := make([]OpcodeResult, len(r.Opcodes))
	copy(opcodes, r.Opcodes)
	sort.Slice(opcodes, func(i, j int) bool { return opcodes[i].Opcode < opcodes[j].Opcode })

	p := plot.New()
	p.Title.Text = "conformance pass rate by opcode"
	p.Y.Label.Text = "fraction of cases passed"

	passed := make(plotter.Values, len(opcodes))
	labels := make([]string, len(opcodes))
	for i, o := range opcodes {
		if o.Total == 0 {
			passed[i] = 0
		} else {
			passed[i] = float64(o.Passed) / float64(o.Total)
		}
		labels[i] = o.Opcode
	}

	bars, err := plotter.NewBarChart(passed, vg.Points(6))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(vg.Length(len(opcodes))*vg.Points(10)+vg.Centimeter*4, 10*vg.Centimeter, path)
}
