package viewport

import "github.com/gogpu/viewport/render"

// DynamicsContext collects short-lived animation graphics for one frame.
// Dynamics bypass the decoration cache entirely; every frame replaces the
// previous frame's list.
type DynamicsContext struct {
	RenderContext

	graphics render.GraphicList
}

func newDynamicsContext(rc RenderContext) *DynamicsContext {
	return &DynamicsContext{RenderContext: rc}
}

// AddDynamic appends a dynamics graphic. Nil graphics are ignored.
func (dc *DynamicsContext) AddDynamic(g *render.Graphic) {
	dc.graphics.Add(g)
}

// Graphics returns the collected list.
func (dc *DynamicsContext) Graphics() render.GraphicList {
	return dc.graphics
}

// ChangeDynamics hands the accumulated list to the viewport's dynamics
// slot. Idempotent within a frame; an empty list clears the slot.
func (dc *DynamicsContext) ChangeDynamics() {
	if len(dc.graphics) == 0 {
		dc.vp.dynamics = nil
		return
	}
	dc.vp.dynamics = dc.graphics
}
