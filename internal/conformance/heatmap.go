package conformance

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// SaveHeatmap renders a 256x256 grid - one cell per byte address, laid
// out high-byte by low-byte - shaded by how often the conformance run
// touched that address, and writes it to path as a PNG scaled up for
// readability with the same draw.Scaler the original display package
// uses to resize its framebuffer.
func (r *Report) SaveHeatmap(path string) error {
	counts := map[uint16]int{}
	max := 1
	for _, o := range r.Opcodes {
		for addr, n := range o.AccessCounts {
			counts[addr] += n
			if counts[addr] > max {
				max = counts[addr]
			}
		}
	}

	grid := image.NewGray(image.Rect(0, 0, 256, 256))
	for addr, n := range counts {
		hi, lo := addr>>8, addr&0xFF
		shade := uint8(255 * n / max)
		grid.SetGray(int(lo), int(hi), color.Gray{Y: shade})
	}

	scaled := image.NewRGBA(image.Rect(0, 0, 1024, 1024))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), grid, grid.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, scaled)
}
