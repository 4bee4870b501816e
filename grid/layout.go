// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package grid computes reference-grid and sub-grid line positions,
// visibility, thinning, and transparency fade for a planar grid viewed
// through a camera frustum. The package is pure computation: it emits
// line batches in world space and leaves symbology and submission to the
// caller.
package grid

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/viewport/linear"
)

// Behavioral constants. These are fixed for visual parity across
// implementations and are deliberately not configurable.
const (
	// MinSeparation is the screen-space separation, in pixels, below
	// which grid lines are suppressed or faded. A spacing projecting to
	// exactly MinSeparation pixels is not drawn.
	MinSeparation float32 = 20

	// MaxRefLines caps reference-line iteration on axes whose screen
	// direction is too ambiguous for adaptive separation measurement.
	MaxRefLines = 100

	// FadeSteps is the number of opacity steps over which lines fade
	// out once thinning begins.
	FadeSteps = 8

	// RefTransparency is the base transparency of reference lines.
	RefTransparency uint8 = 150

	// LineTransparency is the base transparency of sub-grid lines.
	LineTransparency uint8 = 220

	// PlaneTransparency is the transparency of the blanking plane fill.
	PlaneTransparency uint8 = 225

	// planeSkewTolerance: in orthographic views an eye direction this
	// close to parallel with the grid plane would render the grid as a
	// degenerate sliver, so it is skipped entirely.
	planeSkewTolerance = 0.005

	// unambiguousDot is the minimum |dot| between an axis direction and
	// the view's forward axis for screen-space separation of consecutive
	// lines to be measurable.
	unambiguousDot = 0.25
)

// View exposes the camera state the layout needs. *viewport.DecorateContext
// satisfies it.
type View interface {
	// IsPerspective reports whether the camera is on.
	IsPerspective() bool

	// EyePoint returns the camera eye. Only meaningful in perspective.
	EyePoint() linear.Vec3

	// ViewForward returns the unit view Z axis.
	ViewForward() linear.Vec3

	// PixelSizeAt approximates the world size of one screen pixel at a
	// world point.
	PixelSizeAt(pt linear.Vec3) float32
}

// Params describes the grid to lay out.
type Params struct {
	// Origin is a point on the grid plane where both axes are zero.
	Origin linear.Vec3

	// Rotation orients the grid: rows are the grid X, Y, and Z (normal)
	// axes, unit length.
	Rotation linear.Mat3

	// Spacing is the distance between reference lines per axis.
	Spacing [2]float32

	// PerRef is the number of sub-grid divisions per reference line.
	// Values of 1 or less disable sub-grid lines.
	PerRef int

	// Isometric is reserved and currently ignored.
	Isometric bool
}

// LineBatch is a run of lines sharing one symbology.
type LineBatch struct {
	// Transparency of the batch (0 opaque, 255 invisible).
	Transparency uint8

	// Ref is true for reference lines, false for sub-grid lines.
	Ref bool

	// Lines holds world-space segment endpoints.
	Lines [][2]linear.Vec3
}

// Layout is the computed set of line batches for one grid decoration.
// Batches are ordered reference lines first, then sub-grid lines, each in
// emission order so replaying them reproduces identical draw order.
type Layout struct {
	Batches []LineBatch
}

// IsEmpty reports whether the layout contains no lines.
func (l *Layout) IsEmpty() bool {
	return l == nil || len(l.Batches) == 0
}

// layouter carries the shared state of one Compute call.
type layouter struct {
	view View
	p    Params

	gridX, gridY, gridZ linear.Vec3
	local               []linear.Vec2 // boundary in grid-local 2D
	lo, hi              linear.Vec2   // local bounding box

	perspective bool
	eye         linear.Vec3
	forward     linear.Vec3

	refPixels [2]float32

	// thinLimit[a] is the grid index at which thinning began on axis a,
	// bounding sub-grid generation; thinDir[a] is the walk direction at
	// that point. thinDir of zero means no thinning occurred.
	thinLimit [2]int
	thinDir   [2]int

	out Layout
}

// Compute lays out grid lines inside the boundary polygon, which must be
// the closed outline of the view frustum clipped to the grid plane (see
// linear.Frustum.IntersectPlane). Returns nil when nothing should be
// drawn: a degenerate boundary, an edge-on orthographic view, or spacing
// too fine for the 20-pixel separation threshold on either axis.
func Compute(view View, p Params, boundary []linear.Vec3) *Layout {
	if len(boundary) < 4 || p.Spacing[0] <= 0 || p.Spacing[1] <= 0 {
		return nil
	}

	l := &layouter{
		view:        view,
		p:           p,
		gridX:       p.Rotation.Row(0),
		gridY:       p.Rotation.Row(1),
		gridZ:       p.Rotation.Row(2),
		perspective: view.IsPerspective(),
		forward:     view.ViewForward(),
		thinLimit:   [2]int{math.MaxInt32, math.MaxInt32},
	}

	if l.perspective {
		l.eye = view.EyePoint()
	} else if math32.Abs(l.forward.Dot(l.gridZ)) < planeSkewTolerance {
		// Edge-on orthographic view: the grid would collapse to a sliver.
		return nil
	}

	l.localize(boundary)

	center := l.toWorld(linear.V2((l.lo.X+l.hi.X)/2, (l.lo.Y+l.hi.Y)/2))
	px := view.PixelSizeAt(center)
	if px <= 0 {
		return nil
	}
	l.refPixels[0] = p.Spacing[0] / px
	l.refPixels[1] = p.Spacing[1] / px

	// Reference lines require strictly more than MinSeparation pixels on
	// both axes; exactly MinSeparation is not drawn.
	if !(l.refPixels[0] > MinSeparation && l.refPixels[1] > MinSeparation) {
		return nil
	}

	for axis := 0; axis < 2; axis++ {
		l.walkRefs(axis)
	}
	if l.drawSub() {
		for axis := 0; axis < 2; axis++ {
			l.walkSubs(axis)
		}
	}
	return &l.out
}

// localize converts the boundary to grid-local 2D and records its bounds.
func (l *layouter) localize(boundary []linear.Vec3) {
	l.local = make([]linear.Vec2, len(boundary))
	l.lo = linear.V2(math32.Inf(1), math32.Inf(1))
	l.hi = linear.V2(math32.Inf(-1), math32.Inf(-1))
	for i, p := range boundary {
		d := p.Sub(l.p.Origin)
		pt := linear.V2(d.Dot(l.gridX), d.Dot(l.gridY))
		l.local[i] = pt
		l.lo.X = math32.Min(l.lo.X, pt.X)
		l.lo.Y = math32.Min(l.lo.Y, pt.Y)
		l.hi.X = math32.Max(l.hi.X, pt.X)
		l.hi.Y = math32.Max(l.hi.Y, pt.Y)
	}
}

func (l *layouter) toWorld(pt linear.Vec2) linear.Vec3 {
	return l.p.Origin.Add(l.gridX.Scale(pt.X)).Add(l.gridY.Scale(pt.Y))
}

// drawSub reports whether sub-grid lines survive the separation test.
func (l *layouter) drawSub() bool {
	if l.p.PerRef <= 1 {
		return false
	}
	per := float32(l.p.PerRef)
	return l.refPixels[0]/per > MinSeparation && l.refPixels[1]/per > MinSeparation
}

// coord2 builds a local 2D point with value c on the given axis and t on
// the other.
func coord2(axis int, c, t float32) linear.Vec2 {
	if axis == 0 {
		return linear.V2(c, t)
	}
	return linear.V2(t, c)
}

// clipLine intersects the grid line at local coordinate c on axis with the
// boundary polygon, returning world-space endpoints.
func (l *layouter) clipLine(axis int, c float32) (seg [2]linear.Vec3, mid linear.Vec3, ok bool) {
	origin := coord2(axis, c, 0)
	dir := coord2(axis, 0, 1)
	t0, t1, ok := linear.ClipLineToConvexPolygon2D(origin, dir, l.local)
	if !ok || t1-t0 <= 0 {
		return seg, mid, false
	}
	a := origin.Add(dir.Scale(t0))
	b := origin.Add(dir.Scale(t1))
	seg[0] = l.toWorld(a)
	seg[1] = l.toWorld(b)
	mid = l.toWorld(origin.Add(dir.Scale((t0 + t1) / 2)))
	return seg, mid, true
}

// fadeTransparency maps a fade step onto a transparency ramp above base.
func fadeTransparency(base uint8, step int) uint8 {
	t := int(base) + (255-int(base))*step/FadeSteps
	if t > 254 {
		t = 254
	}
	return uint8(t)
}

// appendLine adds a segment to the current batch, starting a new batch
// whenever the symbology (transparency, line class) changes.
func (l *layouter) appendLine(transparency uint8, ref bool, seg [2]linear.Vec3) {
	n := len(l.out.Batches)
	if n == 0 || l.out.Batches[n-1].Transparency != transparency || l.out.Batches[n-1].Ref != ref {
		l.out.Batches = append(l.out.Batches, LineBatch{Transparency: transparency, Ref: ref})
		n++
	}
	b := &l.out.Batches[n-1]
	b.Lines = append(b.Lines, seg)
}

// walkRefs emits the reference lines of one axis, walking outward from
// the eye so that fading begins where consecutive lines crowd together on
// screen.
func (l *layouter) walkRefs(axis int) {
	spacing := l.p.Spacing[axis]
	first := int(math32.Ceil(pick(l.lo, axis) / spacing))
	last := int(math32.Floor(pick(l.hi, axis) / spacing))
	if first > last {
		return
	}

	// The axis direction is the direction along which this axis's lines
	// are spaced; when it is nearly perpendicular to the view's forward
	// axis the on-screen separation of consecutive lines is ambiguous
	// and only the fixed cutoff applies.
	unambiguous := math32.Abs(l.axisDir(axis).Dot(l.forward)) > unambiguousDot
	measurable := l.perspective && unambiguous

	// Walk from the near side of the range toward the far side.
	step := 1
	start, stop := first, last
	if l.perspective {
		d := l.eye.Sub(l.p.Origin)
		eyeCoord := d.Dot(l.axisDir(axis))
		if eyeCoord > (pick(l.lo, axis)+pick(l.hi, axis))/2 {
			step = -1
			start, stop = last, first
		}
	}

	count := 0
	fadeStep := 0
	for i := start; ; i += step {
		if (step > 0 && i > stop) || (step < 0 && i < stop) {
			break
		}
		seg, mid, ok := l.clipLine(axis, float32(i)*spacing)
		if !ok {
			continue
		}
		count++

		if fadeStep == 0 {
			crowded := measurable && l.screenSeparation(axis, mid, step) < MinSeparation
			if crowded || count > MaxRefLines {
				fadeStep = 1
				l.thinLimit[axis] = i
				l.thinDir[axis] = step
			}
		}

		if fadeStep == 0 {
			l.appendLine(RefTransparency, true, seg)
			continue
		}
		if fadeStep > FadeSteps {
			break
		}
		l.appendLine(fadeTransparency(RefTransparency, fadeStep), true, seg)
		fadeStep++
	}
}

// axisDir returns the world direction along which the axis coordinate
// grows (the in-plane normal of that axis's lines).
func (l *layouter) axisDir(axis int) linear.Vec3 {
	if axis == 0 {
		return l.gridX
	}
	return l.gridY
}

// lineDir returns the world direction the axis's lines run along.
func (l *layouter) lineDir(axis int) linear.Vec3 {
	if axis == 0 {
		return l.gridY
	}
	return l.gridX
}

// screenSeparation estimates the on-screen distance, in pixels, between a
// reference line and its successor. The eye ray through the current line's
// midpoint is intersected with one of two candidate planes containing the
// next line (the cross-axis plane or the screen-parallel plane),
// whichever is more nearly perpendicular to the line's direction, giving a
// stable hit point at the next line's depth. The grid spacing is then
// foreshortened and divided by the pixel footprint at that depth.
func (l *layouter) screenSeparation(axis int, mid linear.Vec3, step int) float32 {
	cross := l.axisDir(axis)
	next := mid.Add(cross.Scale(float32(step) * l.p.Spacing[axis]))

	candidates := [2]linear.Plane{
		linear.PlaneFromNormalPoint(cross, next),
		linear.PlaneFromNormalPoint(l.forward, next),
	}
	lineDir := l.lineDir(axis)
	pl := candidates[0]
	if math32.Abs(candidates[1].Normal.Dot(lineDir)) > math32.Abs(candidates[0].Normal.Dot(lineDir)) {
		pl = candidates[1]
	}

	ray := mid.Sub(l.eye).Normalized()
	t, ok := pl.IntersectRay(l.eye, ray)
	if !ok || t <= 0 {
		return 0
	}
	hit := l.eye.Add(ray.Scale(t))

	px := l.view.PixelSizeAt(hit)
	if px <= 0 {
		return 0
	}
	// Foreshorten the spacing by the component of the cross direction
	// visible on screen.
	along := cross.Dot(ray)
	fore := math32.Sqrt(math32.Max(0, 1-along*along))
	return l.p.Spacing[axis] * fore / px
}

// walkSubs emits sub-grid lines between reference lines the thinning pass
// left untouched. Sub lines nearest the thinning limit ramp toward
// invisible from their own base transparency.
func (l *layouter) walkSubs(axis int) {
	spacing := l.p.Spacing[axis]
	first := int(math32.Ceil(pick(l.lo, axis) / spacing))
	last := int(math32.Floor(pick(l.hi, axis) / spacing))
	limit := l.thinLimit[axis]
	dir := l.thinDir[axis]

	for i := first; i < last; i++ {
		// Both bounding reference lines must be un-thinned.
		if dir > 0 && i+1 >= limit {
			continue
		}
		if dir < 0 && i <= limit {
			continue
		}
		transparency := LineTransparency
		if dir != 0 {
			remain := limit - (i + 1)
			if dir < 0 {
				remain = i - limit
			}
			if remain < FadeSteps {
				transparency = fadeTransparency(LineTransparency, FadeSteps-remain)
			}
		}
		for k := 1; k < l.p.PerRef; k++ {
			c := (float32(i) + float32(k)/float32(l.p.PerRef)) * spacing
			seg, _, ok := l.clipLine(axis, c)
			if !ok {
				continue
			}
			l.appendLine(transparency, false, seg)
		}
	}
}

// pick returns the axis component of a 2D point.
func pick(v linear.Vec2, axis int) float32 {
	if axis == 0 {
		return v.X
	}
	return v.Y
}
