package viewport

import (
	"github.com/gogpu/viewport/linear"
	"github.com/gogpu/viewport/render"
)

// RenderContext carries the per-frame state shared by scene building,
// decorating, and dynamics. It captures the viewing space at frame start
// so a frame sees one consistent camera even if the viewport is mutated
// mid-frame.
//
// Contexts are valid only for the frame they were created for; holding
// one across frames is a programming error.
type RenderContext struct {
	vp      *Viewport
	flags   render.ViewFlags
	frustum linear.Frustum
	planes  linear.FrustumPlanes
}

func newRenderContext(vp *Viewport) RenderContext {
	f := vp.View.ComputeFrustum()
	return RenderContext{
		vp:      vp,
		flags:   vp.Flags,
		frustum: f,
		planes:  f.Planes(),
	}
}

// Viewport returns the viewport this context renders for.
func (rc *RenderContext) Viewport() *Viewport {
	return rc.vp
}

// ViewFlags returns the flags captured at frame start.
func (rc *RenderContext) ViewFlags() render.ViewFlags {
	return rc.flags
}

// Frustum returns the world-space view frustum for this frame.
func (rc *RenderContext) Frustum() linear.Frustum {
	return rc.frustum
}

// FrustumPlanes returns the inward-facing bounding planes of the frame's
// frustum.
func (rc *RenderContext) FrustumPlanes() linear.FrustumPlanes {
	return rc.planes
}

// IsPerspective reports whether the frame uses perspective projection.
func (rc *RenderContext) IsPerspective() bool {
	return rc.vp.View.IsPerspective()
}

// EyePoint returns the camera eye for perspective frames.
func (rc *RenderContext) EyePoint() linear.Vec3 {
	return rc.vp.View.EyePoint()
}

// ViewForward returns the unit view direction.
func (rc *RenderContext) ViewForward() linear.Vec3 {
	return rc.vp.View.ViewForward()
}

// PixelSizeAt returns the world size of one screen pixel at p, adjusted
// by the target's level-of-detail bias.
func (rc *RenderContext) PixelSizeAt(p linear.Vec3) float32 {
	return rc.vp.target.AdjustPixelSizeForLOD(rc.vp.View.PixelSizeAt(p))
}

// CreateSceneGraphicBuilder creates a builder for scene-type graphics
// positioned by transform.
func (rc *RenderContext) CreateSceneGraphicBuilder(transform linear.Transform) *render.GraphicBuilder {
	return rc.vp.target.CreateGraphicBuilder(render.GraphicTypeScene, transform, "")
}

// CreateGraphicBuilder creates a builder for graphics of any type.
func (rc *RenderContext) CreateGraphicBuilder(typ render.GraphicType, transform linear.Transform, pickID string) *render.GraphicBuilder {
	return rc.vp.target.CreateGraphicBuilder(typ, transform, pickID)
}
