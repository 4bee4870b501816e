// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package linear

import "github.com/chewxy/math32"

// Plane is an infinite plane in Hessian normal form: points p on the plane
// satisfy Normal · p == Distance. The normal is kept unit length so that
// Evaluate returns a signed Euclidean distance.
type Plane struct {
	Normal   Vec3
	Distance float32
}

// PlaneFromNormalPoint returns the plane with the given normal passing
// through point. The normal is normalized.
func PlaneFromNormalPoint(normal, point Vec3) Plane {
	n := normal.Normalized()
	return Plane{Normal: n, Distance: n.Dot(point)}
}

// PlaneFromPoints returns the plane through three points, with normal
// (b-a) × (c-a) normalized. Returns ok=false for collinear points.
func PlaneFromPoints(a, b, c Vec3) (Plane, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() == 0 {
		return Plane{}, false
	}
	return PlaneFromNormalPoint(n, a), true
}

// Evaluate returns the signed distance from p to the plane. Positive
// values lie on the normal side.
func (pl Plane) Evaluate(p Vec3) float32 {
	return pl.Normal.Dot(p) - pl.Distance
}

// Project returns the closest point to p on the plane.
func (pl Plane) Project(p Vec3) Vec3 {
	return p.Sub(pl.Normal.Scale(pl.Evaluate(p)))
}

// Basis returns two orthonormal vectors spanning the plane.
func (pl Plane) Basis() (u, v Vec3) {
	n := pl.Normal
	// Pick the world axis least aligned with the normal as the seed.
	seed := V3(1, 0, 0)
	if math32.Abs(n.X) > math32.Abs(n.Y) {
		seed = V3(0, 1, 0)
		if math32.Abs(n.Y) > math32.Abs(n.Z) {
			seed = V3(0, 0, 1)
		}
	}
	u = n.Cross(seed).Normalized()
	v = n.Cross(u)
	return u, v
}

// IntersectRay returns the parameter t along origin + t*dir at which the
// ray crosses the plane. Returns ok=false when the ray is parallel to the
// plane (or nearly so).
func (pl Plane) IntersectRay(origin, dir Vec3) (t float32, ok bool) {
	denom := pl.Normal.Dot(dir)
	if math32.Abs(denom) < 1e-8 {
		return 0, false
	}
	return (pl.Distance - pl.Normal.Dot(origin)) / denom, true
}
