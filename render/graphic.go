package render

import "github.com/gogpu/viewport/linear"

// GraphicType classifies where a graphic is drawn relative to the scene.
type GraphicType uint8

const (
	// GraphicTypeScene renders with the scene, depth-tested against it.
	GraphicTypeScene GraphicType = iota

	// GraphicTypeViewBackground renders behind everything else.
	GraphicTypeViewBackground

	// GraphicTypeWorldDecoration renders in world space with the scene.
	GraphicTypeWorldDecoration

	// GraphicTypeWorldOverlay renders in world space on top of the scene.
	GraphicTypeWorldOverlay

	// GraphicTypeViewOverlay renders in view space on top of everything.
	GraphicTypeViewOverlay
)

// String returns the type name.
func (t GraphicType) String() string {
	switch t {
	case GraphicTypeScene:
		return "scene"
	case GraphicTypeViewBackground:
		return "view-background"
	case GraphicTypeWorldDecoration:
		return "world-decoration"
	case GraphicTypeWorldOverlay:
		return "world-overlay"
	case GraphicTypeViewOverlay:
		return "view-overlay"
	default:
		return "unknown"
	}
}

// Symbology is the drawing state applied to subsequent geometry.
type Symbology struct {
	// Line colors strokes and point strings.
	Line ColorDef

	// Fill colors shape interiors.
	Fill ColorDef

	// RasterWidth is the stroke width in pixels.
	RasterWidth int
}

// Command is one recorded drawing operation. Implementations are the
// *Command structs in this package; the set is closed.
type Command interface {
	isCommand()
}

// SymbologyCommand changes the active symbology.
type SymbologyCommand struct {
	Symbology Symbology
}

// LineStringCommand strokes an open polyline through world points.
type LineStringCommand struct {
	Points []linear.Vec3
}

// ShapeCommand fills (and outlines) a closed planar polygon.
type ShapeCommand struct {
	Points []linear.Vec3
}

// PointStringCommand draws disconnected points.
type PointStringCommand struct {
	Points []linear.Vec3
}

// Arc2DCommand strokes or fills a circular arc in the local XY plane.
type Arc2DCommand struct {
	Center       linear.Vec3
	Radius       float32
	Start, Sweep float32
	Filled       bool
}

func (SymbologyCommand) isCommand()   {}
func (LineStringCommand) isCommand()  {}
func (ShapeCommand) isCommand()       {}
func (PointStringCommand) isCommand() {}
func (Arc2DCommand) isCommand()       {}

// GraphicSink receives the commands of a Graphic during Replay.
type GraphicSink interface {
	Symbology(sym Symbology)
	LineString(points []linear.Vec3)
	Shape(points []linear.Vec3)
	PointString(points []linear.Vec3)
	Arc2D(center linear.Vec3, radius, start, sweep float32, filled bool)
}

// Graphic is an immutable container of recorded drawing commands, produced
// by GraphicBuilder.Finish. It can be replayed to any GraphicSink.
type Graphic struct {
	typ       GraphicType
	transform linear.Transform
	pickID    string
	commands  []Command
}

// Type returns the graphic's render classification.
func (g *Graphic) Type() GraphicType {
	return g.typ
}

// Transform returns the local-to-world transform.
func (g *Graphic) Transform() linear.Transform {
	return g.transform
}

// PickID returns the pickable identifier, empty if not pickable.
func (g *Graphic) PickID() string {
	return g.pickID
}

// IsEmpty reports whether the graphic draws nothing.
func (g *Graphic) IsEmpty() bool {
	for _, cmd := range g.commands {
		if _, ok := cmd.(SymbologyCommand); !ok {
			return false
		}
	}
	return true
}

// Commands returns the recorded commands. The slice must not be modified.
func (g *Graphic) Commands() []Command {
	return g.commands
}

// Replay plays the recorded commands back into sink in recording order.
func (g *Graphic) Replay(sink GraphicSink) {
	for _, cmd := range g.commands {
		switch c := cmd.(type) {
		case SymbologyCommand:
			sink.Symbology(c.Symbology)
		case LineStringCommand:
			sink.LineString(c.Points)
		case ShapeCommand:
			sink.Shape(c.Points)
		case PointStringCommand:
			sink.PointString(c.Points)
		case Arc2DCommand:
			sink.Arc2D(c.Center, c.Radius, c.Start, c.Sweep, c.Filled)
		}
	}
}
