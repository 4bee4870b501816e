package render

import "github.com/gogpu/viewport/linear"

// GraphicOwner controls the resource lifetime of a graphic independently
// of per-frame output. The decoration cache wraps cached graphics in
// owners so the cache, not the frame bundle, decides when backing
// resources are released; the frame bundle holds only a borrowed view.
//
// Dispose releases the resource exactly once. A disposed owner returns a
// nil graphic.
type GraphicOwner struct {
	graphic  *Graphic
	release  func(*Graphic)
	disposed bool
}

// NewGraphicOwner wraps a graphic with a release hook. release may be nil
// when the graphic holds no backing resources. Targets create owners
// through Target.CreateGraphicOwner so the hook matches their resource
// model.
func NewGraphicOwner(g *Graphic, release func(*Graphic)) *GraphicOwner {
	return &GraphicOwner{graphic: g, release: release}
}

// Graphic returns the owned graphic, or nil after Dispose.
func (o *GraphicOwner) Graphic() *Graphic {
	if o.disposed {
		return nil
	}
	return o.graphic
}

// Dispose releases the owned graphic's resources. Safe to call more than
// once; only the first call releases.
func (o *GraphicOwner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	if o.release != nil {
		o.release(o.graphic)
	}
	o.graphic = nil
}

// IsDisposed reports whether Dispose has been called.
func (o *GraphicOwner) IsDisposed() bool {
	return o.disposed
}

// GraphicList is an ordered collection of graphics. Within a frame
// graphics are appended, never removed.
type GraphicList []*Graphic

// Add appends a graphic, ignoring nil.
func (l *GraphicList) Add(g *Graphic) {
	if g == nil {
		return
	}
	*l = append(*l, g)
}

// GraphicBranch groups graphics under optional view-flag overrides. It is
// realized into a single graphic through Target.CreateGraphicBranch.
type GraphicBranch struct {
	Graphics GraphicList

	// FlagOverrides, when non-nil, replaces the view flags while the
	// branch is drawn.
	FlagOverrides *ViewFlags
}

// Add appends a graphic to the branch.
func (b *GraphicBranch) Add(g *Graphic) {
	b.Graphics.Add(g)
}

// IsEmpty reports whether the branch holds no graphics.
func (b *GraphicBranch) IsEmpty() bool {
	return len(b.Graphics) == 0
}

// flatten concatenates the branch's commands into one graphic at the
// given location. Shared by targets that have no native branch support.
func (b *GraphicBranch) flatten(typ GraphicType, location linear.Transform) *Graphic {
	var commands []Command
	for _, g := range b.Graphics {
		commands = append(commands, g.commands...)
	}
	return &Graphic{typ: typ, transform: location, commands: commands}
}
