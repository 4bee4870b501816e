package render

import "github.com/gogpu/viewport/linear"

// GraphicBuilder accumulates geometry and symbology calls and yields one
// immutable Graphic on Finish. Builders are created through a Target (see
// Target.CreateGraphicBuilder) so backends can substitute their own
// command encoding later; the recording itself is backend-neutral.
//
// The builder is not safe for concurrent use and must not be used after
// Finish.
type GraphicBuilder struct {
	typ       GraphicType
	transform linear.Transform
	pickID    string
	commands  []Command
	finished  bool
}

// NewGraphicBuilder creates a builder for a graphic of the given type with
// a local-to-world transform. pickID may be empty for non-pickable
// graphics.
func NewGraphicBuilder(typ GraphicType, transform linear.Transform, pickID string) *GraphicBuilder {
	return &GraphicBuilder{
		typ:       typ,
		transform: transform,
		pickID:    pickID,
		commands:  make([]Command, 0, 16),
	}
}

// Type returns the graphic type the builder was created with.
func (b *GraphicBuilder) Type() GraphicType {
	return b.typ
}

// SetSymbology sets the line and fill colors and raster width for
// subsequent geometry.
func (b *GraphicBuilder) SetSymbology(line, fill ColorDef, rasterWidth int) {
	b.checkOpen()
	b.commands = append(b.commands, SymbologyCommand{Symbology: Symbology{
		Line:        line,
		Fill:        fill,
		RasterWidth: rasterWidth,
	}})
}

// AddLineString records an open polyline. Fewer than 2 points is a no-op.
func (b *GraphicBuilder) AddLineString(points []linear.Vec3) {
	b.checkOpen()
	if len(points) < 2 {
		return
	}
	b.commands = append(b.commands, LineStringCommand{Points: clonePoints(points)})
}

// AddShape records a closed filled polygon. Fewer than 3 points is a
// no-op.
func (b *GraphicBuilder) AddShape(points []linear.Vec3) {
	b.checkOpen()
	if len(points) < 3 {
		return
	}
	b.commands = append(b.commands, ShapeCommand{Points: clonePoints(points)})
}

// AddPointString records disconnected points. An empty slice is a no-op.
func (b *GraphicBuilder) AddPointString(points []linear.Vec3) {
	b.checkOpen()
	if len(points) == 0 {
		return
	}
	b.commands = append(b.commands, PointStringCommand{Points: clonePoints(points)})
}

// AddArc2D records a circular arc in the local XY plane. Angles are in
// radians; a non-positive radius is a no-op.
func (b *GraphicBuilder) AddArc2D(center linear.Vec3, radius, start, sweep float32, filled bool) {
	b.checkOpen()
	if radius <= 0 {
		return
	}
	b.commands = append(b.commands, Arc2DCommand{
		Center: center,
		Radius: radius,
		Start:  start,
		Sweep:  sweep,
		Filled: filled,
	})
}

// Finish seals the recording and returns the immutable Graphic. The
// builder must not be used afterward; calling Finish twice panics.
func (b *GraphicBuilder) Finish() *Graphic {
	b.checkOpen()
	b.finished = true
	return &Graphic{
		typ:       b.typ,
		transform: b.transform,
		pickID:    b.pickID,
		commands:  b.commands,
	}
}

func (b *GraphicBuilder) checkOpen() {
	if b.finished {
		panic("render: graphic builder used after Finish")
	}
}

func clonePoints(points []linear.Vec3) []linear.Vec3 {
	out := make([]linear.Vec3, len(points))
	copy(out, points)
	return out
}
