// Package inspector is a fyne widget that displays a cpu.CPU's register
// file live, with a button to copy the current state to the clipboard
// and a file picker for loading a new test vector to step through.
package inspector

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"

	"github.com/fauxboy/sm83/internal/cpu"
)

// Registers is a widget showing the live register file of a *cpu.CPU.
type Registers struct {
	*cpu.CPU

	widget.BaseWidget

	regA, regB, regC, regD, regE, regH, regL *widget.Label
	regF                                     *widget.Label
	pc, sp                                   *widget.Label
}

// NewRegisters builds a register view bound to c. Call Refresh after
// each Step to update the displayed values.
func NewRegisters(c *cpu.CPU) *Registers {
	r := &Registers{
		CPU:  c,
		regA: widget.NewLabel("0x00"), regB: widget.NewLabel("0x00"),
		regC: widget.NewLabel("0x00"), regD: widget.NewLabel("0x00"),
		regE: widget.NewLabel("0x00"), regH: widget.NewLabel("0x00"),
		regL: widget.NewLabel("0x00"), regF: widget.NewLabel("Z0 N0 H0 C0"),
		pc: widget.NewLabel("0x0000"), sp: widget.NewLabel("0x0000"),
	}
	r.ExtendBaseWidget(r)
	return r
}

func (r *Registers) CreateRenderer() fyne.WidgetRenderer {
	grid := container.NewGridWithColumns(2,
		widget.NewLabel("A:"), r.regA,
		widget.NewLabel("B:"), r.regB,
		widget.NewLabel("C:"), r.regC,
		widget.NewLabel("D:"), r.regD,
		widget.NewLabel("E:"), r.regE,
		widget.NewLabel("H:"), r.regH,
		widget.NewLabel("L:"), r.regL,
		widget.NewLabel("PC:"), r.pc,
		widget.NewLabel("SP:"), r.sp,
		widget.NewLabel("Flags:"), r.regF,
	)
	for _, o := range grid.Objects {
		if label, ok := o.(*widget.Label); ok {
			label.TextStyle.Monospace = true
		}
	}
	return widget.NewSimpleRenderer(grid)
}

// Refresh redraws every register label from the bound CPU's current
// state.
func (r *Registers) Refresh() {
	snap := r.Snapshot()
	r.regA.SetText(fmt.Sprintf("0x%02X", snap.A))
	r.regB.SetText(fmt.Sprintf("0x%02X", snap.B))
	r.regC.SetText(fmt.Sprintf("0x%02X", snap.C))
	r.regD.SetText(fmt.Sprintf("0x%02X", snap.D))
	r.regE.SetText(fmt.Sprintf("0x%02X", snap.E))
	r.regH.SetText(fmt.Sprintf("0x%02X", snap.H))
	r.regL.SetText(fmt.Sprintf("0x%02X", snap.L))
	r.pc.SetText(fmt.Sprintf("0x%04X", snap.PC))
	r.sp.SetText(fmt.Sprintf("0x%04X", snap.SP))
	r.regF.SetText(fmt.Sprintf("Z%s N%s H%s C%s",
		boolBit(snap.F&0x80 != 0), boolBit(snap.F&0x40 != 0),
		boolBit(snap.F&0x20 != 0), boolBit(snap.F&0x10 != 0)))
}

func boolBit(set bool) string {
	if set {
		return "1"
	}
	return "0"
}

// CopyStateButton returns a button that copies the bound CPU's current
// register state, formatted as text, to the system clipboard.
func CopyStateButton(c *cpu.CPU) *widget.Button {
	return widget.NewButton("Copy state", func() {
		snap := c.Snapshot()
		text := fmt.Sprintf("A=%02X B=%02X C=%02X D=%02X E=%02X F=%02X H=%02X L=%02X SP=%04X PC=%04X",
			snap.A, snap.B, snap.C, snap.D, snap.E, snap.F, snap.H, snap.L, snap.SP, snap.PC)
		if err := clipboard.Init(); err != nil {
			return
		}
		clipboard.Write(clipboard.FmtText, []byte(text))
	})
}

// PickVectorFileButton returns a button that opens a native file picker
// for choosing a test vector file to load.
func PickVectorFileButton(onPick func(path string)) *widget.Button {
	return widget.NewButton("Load vectors...", func() {
		path, err := dialog.File().Title("Select a test vector file").Load()
		if err != nil {
			return
		}
		onPick(path)
	})
}
