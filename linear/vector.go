// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package linear implements the float32 vector, matrix, and plane math
// used by the viewport rendering core, including frustum/plane clipping.
package linear

import "github.com/chewxy/math32"

// Vec3 is a 3-component float32 vector, used for both points and
// directions in world space.
type Vec3 struct {
	X, Y, Z float32
}

// V3 returns a new Vec3 with the given components.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns s * v.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

// Negated returns -v.
func (v Vec3) Negated() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns v · w.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// DistanceTo returns the distance between the points v and w.
func (v Vec3) DistanceTo(w Vec3) float32 {
	return v.Sub(w).Length()
}

// Normalized returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp returns the linear interpolation between v and w at fraction t.
func (v Vec3) Lerp(w Vec3, t float32) Vec3 {
	return Vec3{
		v.X + (w.X-v.X)*t,
		v.Y + (w.Y-v.Y)*t,
		v.Z + (w.Z-v.Z)*t,
	}
}

// Vec2 is a 2-component float32 vector used for in-plane coordinates.
type Vec2 struct {
	X, Y float32
}

// V2 returns a new Vec2 with the given components.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns s * v.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{s * v.X, s * v.Y}
}

// Dot returns v · w.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar cross product v × w.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}
