// Command viewportdemo builds one frame of the viewport pipeline on the
// in-memory render target and reports what it produced. The canvas
// overlay (labels) is written as a PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/grid"
	"github.com/gogpu/viewport/linear"
	"github.com/gogpu/viewport/render"
)

func main() {
	var (
		width   = flag.Int("width", 800, "view width in pixels")
		height  = flag.Int("height", 600, "view height in pixels")
		spacing = flag.Float64("spacing", 50, "grid reference spacing in world units")
		perRef  = flag.Int("perref", 5, "sub-grid divisions per reference line")
		output  = flag.String("output", "overlay.png", "canvas overlay output file")
	)
	flag.Parse()

	vp, err := viewport.New()
	if err != nil {
		log.Fatalf("Failed to create viewport: %v", err)
	}
	defer vp.Dispose()

	extent := float32(*width)
	vp.View = viewport.ViewingSpace{
		Rotation: linear.Mat3FromRows(
			linear.V3(1, 0, 0),
			linear.V3(0, 1, 0),
			linear.V3(0, 0, -1),
		),
		Origin:     linear.V3(-extent/2, -extent/2, extent/2),
		Extents:    linear.V3(extent, extent, extent),
		ViewWidth:  *width,
		ViewHeight: *height,
	}

	vp.AddDecorator(&demoDecorator{
		spacing: float32(*spacing),
		perRef:  *perRef,
	})

	if err := vp.RenderFrame(nil); err != nil {
		log.Fatalf("Failed to render frame: %v", err)
	}

	dec := vp.Decorations()
	lines, batches := 0, 0
	for _, g := range dec.World {
		for _, cmd := range g.Commands() {
			switch cmd.(type) {
			case render.SymbologyCommand:
				batches++
			case render.LineStringCommand:
				lines++
			}
		}
	}
	log.Printf("Frame built on %q target: %d world graphics, %d symbology batches, %d grid lines",
		vp.Target().Name(), len(dec.World), batches, lines)

	overlay := viewport.RenderCanvasDecorations(dec, *width, *height)
	if overlay == nil {
		log.Println("No canvas overlay produced")
		return
	}
	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, overlay); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	log.Printf("Overlay saved to %s (%dx%d)", *output, *width, *height)
}

// demoDecorator draws the standard grid plus a status label.
type demoDecorator struct {
	spacing float32
	perRef  int
}

func (d *demoDecorator) Decorate(dc *viewport.DecorateContext) {
	dc.DrawStandardGrid(grid.Params{
		Origin:   linear.V3(0, 0, 0),
		Rotation: linear.Identity3(),
		Spacing:  [2]float32{d.spacing, d.spacing},
		PerRef:   d.perRef,
	})
	dc.AddCanvasDecoration(viewport.NewLabelDecoration("viewport demo", 10, 20), false)
}

func (d *demoDecorator) UseCachedDecorations() bool {
	return true
}
