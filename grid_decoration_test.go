package viewport

import (
	"testing"

	"github.com/gogpu/viewport/grid"
	"github.com/gogpu/viewport/linear"
	"github.com/gogpu/viewport/render"
)

// topDownView looks straight down at the z=0 plane. One world unit maps
// to one screen pixel.
func topDownView() ViewingSpace {
	return ViewingSpace{
		Rotation: linear.Mat3FromRows(
			linear.V3(1, 0, 0),
			linear.V3(0, 1, 0),
			linear.V3(0, 0, -1),
		),
		Origin:     linear.V3(-50, -50, 50),
		Extents:    linear.V3(100, 100, 100),
		ViewWidth:  100,
		ViewHeight: 100,
	}
}

func xyGridParams(spacing float32) grid.Params {
	return grid.Params{
		Origin:   linear.V3(0, 0, 0),
		Rotation: linear.Identity3(),
		Spacing:  [2]float32{spacing, spacing},
	}
}

func buildGridDecoration(t *testing.T, vp *Viewport, params grid.Params) *render.Decorations {
	t.Helper()
	d := &stubDecorator{decorate: func(dc *DecorateContext) {
		dc.DrawStandardGrid(params)
	}}
	vp.AddDecorator(d)
	defer vp.DropDecorator(d)
	return vp.BuildDecorations().Decorations()
}

func TestDrawStandardGrid(t *testing.T) {
	vp, _ := newTestViewport()
	defer vp.Dispose()
	vp.View = topDownView()

	dec := buildGridDecoration(t, vp, xyGridParams(50))
	if len(dec.World) != 1 {
		t.Fatalf("world decorations = %d, want 1", len(dec.World))
	}
	g := dec.World[0]
	if g.Type() != render.GraphicTypeWorldDecoration {
		t.Fatalf("graphic type = %v, want world decoration", g.Type())
	}
	// Offset one pixel toward the eye, opposite the view forward.
	if !approxVec(g.Transform().Origin, linear.V3(0, 0, 1)) {
		t.Fatalf("offset = %v, want (0 0 1)", g.Transform().Origin)
	}

	cmds := g.Commands()
	if len(cmds) < 4 {
		t.Fatalf("commands = %d, want at least blanking plane plus lines", len(cmds))
	}
	sym, ok := cmds[0].(render.SymbologyCommand)
	if !ok {
		t.Fatalf("first command is %T, want symbology", cmds[0])
	}
	if sym.Symbology.Fill.Transparency != grid.PlaneTransparency {
		t.Fatalf("plane transparency = %d, want %d", sym.Symbology.Fill.Transparency, grid.PlaneTransparency)
	}
	if sym.Symbology.Fill.R != 255 || sym.Symbology.Fill.G != 255 || sym.Symbology.Fill.B != 255 {
		t.Fatalf("plane color = %v, want white against black background", sym.Symbology.Fill)
	}
	shape, ok := cmds[1].(render.ShapeCommand)
	if !ok {
		t.Fatalf("second command is %T, want blanking shape", cmds[1])
	}
	if len(shape.Points) < 4 {
		t.Fatalf("blanking shape points = %d, want >= 4", len(shape.Points))
	}
	refSym, ok := cmds[2].(render.SymbologyCommand)
	if !ok {
		t.Fatalf("third command is %T, want reference-line symbology", cmds[2])
	}
	if refSym.Symbology.Line.Transparency != grid.RefTransparency {
		t.Fatalf("reference transparency = %d, want %d", refSym.Symbology.Line.Transparency, grid.RefTransparency)
	}
	lines := 0
	for _, c := range cmds[3:] {
		if _, ok := c.(render.LineStringCommand); ok {
			lines++
		}
	}
	if lines == 0 {
		t.Fatal("no reference lines emitted")
	}
}

func TestDrawStandardGridFineSpacingDrawsPlaneOnly(t *testing.T) {
	vp, _ := newTestViewport()
	defer vp.Dispose()
	vp.View = topDownView()

	// 10 world units map to 10 pixels, under the separation threshold:
	// lines are suppressed but the blanking plane remains.
	dec := buildGridDecoration(t, vp, xyGridParams(10))
	if len(dec.World) != 1 {
		t.Fatalf("world decorations = %d, want 1", len(dec.World))
	}
	cmds := dec.World[0].Commands()
	if len(cmds) != 2 {
		t.Fatalf("commands = %d, want symbology plus blanking shape only", len(cmds))
	}
	if _, ok := cmds[1].(render.ShapeCommand); !ok {
		t.Fatalf("second command is %T, want blanking shape", cmds[1])
	}
}

func TestDrawStandardGridRedFromBehind(t *testing.T) {
	vp, _ := newTestViewport()
	defer vp.Dispose()
	// Default test view looks along +Z, so the z=0 plane with a +Z normal
	// is seen from behind.

	dec := buildGridDecoration(t, vp, xyGridParams(50))
	if len(dec.World) != 1 {
		t.Fatalf("world decorations = %d, want 1", len(dec.World))
	}
	sym, ok := dec.World[0].Commands()[0].(render.SymbologyCommand)
	if !ok {
		t.Fatal("first command is not symbology")
	}
	fill := sym.Symbology.Fill
	if fill.R != 255 || fill.G != 0 || fill.B != 0 {
		t.Fatalf("blanking color = %v, want red", fill)
	}
	if fill.Transparency != grid.PlaneTransparency {
		t.Fatalf("blanking transparency = %d, want %d", fill.Transparency, grid.PlaneTransparency)
	}
}

func TestDrawStandardGridSkipsEdgeOnOrtho(t *testing.T) {
	vp, _ := newTestViewport()
	defer vp.Dispose()

	// Grid plane normal perpendicular to the view direction.
	params := grid.Params{
		Origin: linear.V3(0, 0, 0),
		Rotation: linear.Mat3FromRows(
			linear.V3(1, 0, 0),
			linear.V3(0, 0, 1),
			linear.V3(0, -1, 0),
		),
		Spacing: [2]float32{50, 50},
	}
	dec := buildGridDecoration(t, vp, params)
	if !dec.IsEmpty() {
		t.Fatal("edge-on grid was drawn")
	}
}

func TestDrawStandardGridSkipsPlaneOutsideFrustum(t *testing.T) {
	vp, _ := newTestViewport()
	defer vp.Dispose()

	params := xyGridParams(50)
	params.Origin = linear.V3(0, 0, 1000)
	dec := buildGridDecoration(t, vp, params)
	if !dec.IsEmpty() {
		t.Fatal("out-of-view grid was drawn")
	}
}

func TestDrawStandardGridIsCacheable(t *testing.T) {
	vp, target := newTestViewport()
	defer vp.Dispose()
	vp.View = topDownView()

	d := &stubDecorator{cached: true, decorate: func(dc *DecorateContext) {
		dc.DrawStandardGrid(xyGridParams(50))
	}}
	vp.AddDecorator(d)

	first := vp.BuildDecorations()
	entry := vp.cache.Get(d)
	if entry == nil || len(entry.items) != 1 {
		t.Fatal("grid decoration was not recorded")
	}
	if got := target.LiveOwners(); got != 1 {
		t.Fatalf("live owners = %d, want 1", got)
	}

	second := vp.BuildDecorations()
	if d.calls != 1 {
		t.Fatalf("calls = %d, want 1", d.calls)
	}
	if second.Decorations().World[0] != first.Decorations().World[0] {
		t.Fatal("replayed grid is not the recorded graphic")
	}
}
