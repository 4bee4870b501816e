package viewport

import "github.com/gogpu/viewport/linear"

// ViewingSpace is the camera and projection state of a viewport. It is
// owned by the viewport and read-only to the rendering core; contexts
// capture what they need at frame start.
//
// The view volume is a box in view-aligned coordinates: Origin is its
// low corner in world space, Rotation's rows are the view X (right),
// Y (up), and Z (forward) axes, and Extents spans the box along those
// axes. With the camera on, the box's front face is pulled toward the
// eye so the side planes pass through it.
type ViewingSpace struct {
	// CameraOn enables perspective projection.
	CameraOn bool

	// Eye is the camera position. Only meaningful when CameraOn.
	Eye linear.Vec3

	// Rotation orients the view: rows are the right, up, and forward
	// axes, unit length.
	Rotation linear.Mat3

	// Origin is the low corner of the view volume in world space.
	Origin linear.Vec3

	// Extents spans the view volume along the view axes: width, height,
	// depth in world units.
	Extents linear.Vec3

	// ViewWidth and ViewHeight are the on-screen view rectangle size in
	// pixels.
	ViewWidth, ViewHeight int
}

// IsPerspective reports whether the camera is on.
func (vs *ViewingSpace) IsPerspective() bool {
	return vs.CameraOn
}

// EyePoint returns the camera eye.
func (vs *ViewingSpace) EyePoint() linear.Vec3 {
	return vs.Eye
}

// ViewForward returns the unit view Z axis.
func (vs *ViewingSpace) ViewForward() linear.Vec3 {
	return vs.Rotation.Row(2)
}

// WorldToView maps a world point into view-aligned coordinates relative
// to Origin: X right, Y up, Z depth from the front plane.
func (vs *ViewingSpace) WorldToView(p linear.Vec3) linear.Vec3 {
	d := p.Sub(vs.Origin)
	return linear.V3(
		d.Dot(vs.Rotation.Row(0)),
		d.Dot(vs.Rotation.Row(1)),
		d.Dot(vs.Rotation.Row(2)),
	)
}

// ComputeFrustum derives the world-space frustum corners for the current
// camera state. Orthographic views yield the view box itself; with the
// camera on, front corners are pulled toward the eye along the eye rays
// through the matching back corners.
func (vs *ViewingSpace) ComputeFrustum() linear.Frustum {
	x := vs.Rotation.Row(0)
	y := vs.Rotation.Row(1)
	z := vs.Rotation.Row(2)

	var f linear.Frustum
	for i := range f {
		var cx, cy, cz float32
		if i&1 != 0 {
			cx = vs.Extents.X
		}
		if i&2 != 0 {
			cy = vs.Extents.Y
		}
		if i&4 != 0 {
			cz = vs.Extents.Z
		}
		f[i] = vs.Origin.Add(x.Scale(cx)).Add(y.Scale(cy)).Add(z.Scale(cz))
	}

	if !vs.CameraOn {
		return f
	}

	frontCenter := quadCenter(f[linear.CornerLeftBottomFront], f[linear.CornerRightBottomFront],
		f[linear.CornerLeftTopFront], f[linear.CornerRightTopFront])
	backCenter := quadCenter(f[linear.CornerLeftBottomBack], f[linear.CornerRightBottomBack],
		f[linear.CornerLeftTopBack], f[linear.CornerRightTopBack])
	frontDist := frontCenter.Sub(vs.Eye).Dot(z)
	backDist := backCenter.Sub(vs.Eye).Dot(z)
	if frontDist <= 0 || backDist <= frontDist {
		// Degenerate camera placement; keep the box.
		return f
	}

	scale := frontDist / backDist
	for i := 0; i < 4; i++ {
		back := f[i|4]
		f[i] = vs.Eye.Add(back.Sub(vs.Eye).Scale(scale))
	}
	return f
}

// PixelSizeAt approximates the world size of one screen pixel at a world
// point by interpolating the frustum width between the front and back
// planes at the point's depth. Returns 0 when the view rectangle is
// empty.
func (vs *ViewingSpace) PixelSizeAt(p linear.Vec3) float32 {
	if vs.ViewWidth <= 0 {
		return 0
	}
	f := vs.ComputeFrustum()
	frontWidth := f[linear.CornerRightBottomFront].DistanceTo(f[linear.CornerLeftBottomFront])
	backWidth := f[linear.CornerRightBottomBack].DistanceTo(f[linear.CornerLeftBottomBack])

	z := vs.Rotation.Row(2)
	frontCenter := quadCenter(f[linear.CornerLeftBottomFront], f[linear.CornerRightBottomFront],
		f[linear.CornerLeftTopFront], f[linear.CornerRightTopFront])
	backCenter := quadCenter(f[linear.CornerLeftBottomBack], f[linear.CornerRightBottomBack],
		f[linear.CornerLeftTopBack], f[linear.CornerRightTopBack])

	total := backCenter.Sub(frontCenter).Dot(z)
	s := float32(0)
	if total > 0 {
		s = p.Sub(frontCenter).Dot(z) / total
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
	}
	width := frontWidth + (backWidth-frontWidth)*s
	return width / float32(vs.ViewWidth)
}

func quadCenter(a, b, c, d linear.Vec3) linear.Vec3 {
	return a.Add(b).Add(c).Add(d).Scale(0.25)
}
