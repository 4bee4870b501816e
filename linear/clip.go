// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package linear

import "github.com/chewxy/math32"

// clipTolerance absorbs float32 noise when classifying points against a
// plane during polygon clipping.
const clipTolerance = 1e-5

// ClipConvexPolygon clips a convex polygon against a plane, keeping the
// region on the normal side. The input is an ordered loop without a
// repeated closure point. Returns nil when nothing survives; results with
// fewer than 3 points are collapsed to nil.
func ClipConvexPolygon(poly []Vec3, pl Plane) []Vec3 {
	if len(poly) < 3 {
		return nil
	}

	out := make([]Vec3, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevD := pl.Evaluate(prev)
	for _, cur := range poly {
		curD := pl.Evaluate(cur)
		crosses := (prevD > clipTolerance && curD < -clipTolerance) ||
			(prevD < -clipTolerance && curD > clipTolerance)
		if crosses {
			t := prevD / (prevD - curD)
			out = append(out, prev.Lerp(cur, t))
		}
		if curD >= -clipTolerance {
			out = append(out, cur)
		}
		prev, prevD = cur, curD
	}

	if len(out) < 3 {
		return nil
	}
	return out
}

// IntersectPlane computes the closed polygon outline where the plane
// crosses the frustum. The result is a single convex loop ordered around
// the plane normal, or nil when the plane misses the frustum or the
// intersection is degenerate (fewer than 3 points).
//
// The outline is built by laying a quad on the plane large enough to cover
// the whole frustum and clipping it by each of the six frustum planes.
// Because both shapes are convex the intersection is a single loop; the
// multiple-loop abort case of general clippers cannot arise here.
func (f Frustum) IntersectPlane(pl Plane) []Vec3 {
	center := f.Center()
	half := f.Diagonal()
	if half == 0 {
		return nil
	}

	// Seed quad on the plane, centered under the frustum.
	on := pl.Project(center)
	u, v := pl.Basis()
	poly := []Vec3{
		on.Add(u.Scale(half)).Add(v.Scale(half)),
		on.Sub(u.Scale(half)).Add(v.Scale(half)),
		on.Sub(u.Scale(half)).Sub(v.Scale(half)),
		on.Add(u.Scale(half)).Sub(v.Scale(half)),
	}

	for _, side := range f.Planes() {
		if side.Normal == (Vec3{}) {
			continue
		}
		poly = ClipConvexPolygon(poly, side)
		if poly == nil {
			return nil
		}
	}
	return poly
}

// ClipLineToConvexPolygon2D intersects the infinite 2D line
// origin + t*dir with a convex polygon, returning the parameter range
// [t0, t1] of the inside portion. Returns ok=false when the line misses
// the polygon or the polygon winding cannot be determined.
func ClipLineToConvexPolygon2D(origin, dir Vec2, poly []Vec2) (t0, t1 float32, ok bool) {
	if len(poly) < 3 {
		return 0, 0, false
	}

	// Signed area sign gives the winding, which orients each edge's
	// inward half-plane.
	var area float32
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].Cross(poly[j])
	}
	if area == 0 {
		return 0, 0, false
	}
	sign := float32(1)
	if area < 0 {
		sign = -1
	}

	t0, t1 = math32.Inf(-1), math32.Inf(1)
	for i := range poly {
		j := (i + 1) % len(poly)
		edge := poly[j].Sub(poly[i])
		// Inward normal of this edge.
		normal := Vec2{-edge.Y * sign, edge.X * sign}
		denom := normal.Dot(dir)
		dist := normal.Dot(poly[i].Sub(origin))
		if math32.Abs(denom) < 1e-8 {
			if dist > 0 {
				// Line entirely outside this edge.
				return 0, 0, false
			}
			continue
		}
		t := dist / denom
		if denom > 0 {
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t1 {
				t1 = t
			}
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}
