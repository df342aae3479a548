// Command inspector opens a window showing a CPU's register file live
// as it steps through a loaded test vector file, one case per button
// press.
package main

import (
	"flag"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fauxboy/sm83/internal/cpu"
	"github.com/fauxboy/sm83/internal/inspector"
	"github.com/fauxboy/sm83/internal/testbus"
	"github.com/fauxboy/sm83/internal/vectors"
)

func main() {
	vectorFile := flag.String("vectors", "", "a single-step test vector file to load")
	flag.Parse()

	bus := testbus.New()
	core := cpu.NewCPU(bus)

	regs := inspector.NewRegisters(core)
	status := widget.NewLabel("ready")

	var cases []vectors.Case
	var index int

	loadFile := func(path string) {
		loaded, err := vectors.LoadFile(path)
		if err != nil {
			status.SetText(fmt.Sprintf("load failed: %v", err))
			return
		}
		cases = loaded
		index = 0
		status.SetText(fmt.Sprintf("loaded %d cases from %s", len(cases), path))
	}
	if *vectorFile != "" {
		loadFile(*vectorFile)
	}

	stepButton := widget.NewButton("Step case", func() {
		if index >= len(cases) {
			status.SetText("no more cases")
			return
		}
		tc := cases[index]
		bus.Reset()
		for _, slot := range tc.Initial.RAM {
			bus.Load([][2]int{slot})
		}
		core.Reset(&cpu.State{
			A: tc.Initial.A, B: tc.Initial.B, C: tc.Initial.C, D: tc.Initial.D,
			E: tc.Initial.E, F: tc.Initial.F, H: tc.Initial.H, L: tc.Initial.L,
			SP: tc.Initial.SP, PC: tc.Initial.PC,
		})
		if err := core.Step(); err != nil {
			status.SetText(fmt.Sprintf("%s: %v", tc.Name, err))
		} else {
			status.SetText(tc.Name)
		}
		regs.Refresh()
		index++
	})

	pick := inspector.PickVectorFileButton(loadFile)
	copyButton := inspector.CopyStateButton(core)

	a := app.New()
	w := a.NewWindow("sm83 inspector")
	w.SetContent(container.NewVBox(regs, status, container.NewHBox(pick, stepButton, copyButton)))
	w.Resize(fyne.NewSize(360, 320))
	w.ShowAndRun()
}
