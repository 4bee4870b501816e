// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package linear

// Frustum corner indices. Front is the near plane, back the far plane.
const (
	CornerLeftBottomFront = iota
	CornerRightBottomFront
	CornerLeftTopFront
	CornerRightTopFront
	CornerLeftBottomBack
	CornerRightBottomBack
	CornerLeftTopBack
	CornerRightTopBack
)

// Frustum is an 8-corner view volume. For orthographic views the front and
// back faces are congruent; for perspective views the back face is larger.
// A frustum is captured once per frame and treated as immutable thereafter.
type Frustum [8]Vec3

// Center returns the centroid of the 8 corners.
func (f Frustum) Center() Vec3 {
	var c Vec3
	for _, p := range f {
		c = c.Add(p)
	}
	return c.Scale(1.0 / 8.0)
}

// Diagonal returns the length of the longest volume diagonal, a cheap
// upper bound on the frustum's spatial extent.
func (f Frustum) Diagonal() float32 {
	d := f[CornerLeftBottomFront].DistanceTo(f[CornerRightTopBack])
	if d2 := f[CornerRightBottomFront].DistanceTo(f[CornerLeftTopBack]); d2 > d {
		d = d2
	}
	return d
}

// TransformedBy returns the frustum with every corner mapped through t.
func (f Frustum) TransformedBy(t Transform) Frustum {
	var r Frustum
	for i, p := range f {
		r[i] = t.Apply(p)
	}
	return r
}

// Frustum plane indices for FrustumPlanes.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneFront
	PlaneBack
)

// FrustumPlanes holds the six bounding planes of a frustum with normals
// pointing inward, so a point inside the volume evaluates non-negative
// against every plane.
type FrustumPlanes [6]Plane

// Planes derives the six inward-facing bounding planes from the corners.
// Degenerate faces (collapsed frusta) yield zero planes that accept all
// points, which degrades clipping gracefully rather than failing.
func (f Frustum) Planes() FrustumPlanes {
	faces := [6][3]int{
		PlaneLeft:   {CornerLeftBottomFront, CornerLeftTopFront, CornerLeftBottomBack},
		PlaneRight:  {CornerRightBottomFront, CornerRightBottomBack, CornerRightTopFront},
		PlaneBottom: {CornerLeftBottomFront, CornerLeftBottomBack, CornerRightBottomFront},
		PlaneTop:    {CornerLeftTopFront, CornerRightTopFront, CornerLeftTopBack},
		PlaneFront:  {CornerLeftBottomFront, CornerRightBottomFront, CornerLeftTopFront},
		PlaneBack:   {CornerLeftBottomBack, CornerLeftTopBack, CornerRightBottomBack},
	}

	center := f.Center()
	var planes FrustumPlanes
	for i, face := range faces {
		pl, ok := PlaneFromPoints(f[face[0]], f[face[1]], f[face[2]])
		if !ok {
			continue
		}
		if pl.Evaluate(center) < 0 {
			pl.Normal = pl.Normal.Negated()
			pl.Distance = -pl.Distance
		}
		planes[i] = pl
	}
	return planes
}

// Contains reports whether p lies inside or on the frustum, within tol.
func (fp FrustumPlanes) Contains(p Vec3, tol float32) bool {
	for _, pl := range fp {
		if pl.Normal == (Vec3{}) {
			continue
		}
		if pl.Evaluate(p) < -tol {
			return false
		}
	}
	return true
}
