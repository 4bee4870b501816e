package linear

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-4

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= eps
}

func approxVec(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

// boxFrustum returns an axis-aligned orthographic frustum spanning
// [-1,1]^2 in x/y and [0,depth] in z (front at z=0).
func boxFrustum(depth float32) Frustum {
	return Frustum{
		CornerLeftBottomFront:  V3(-1, -1, 0),
		CornerRightBottomFront: V3(1, -1, 0),
		CornerLeftTopFront:     V3(-1, 1, 0),
		CornerRightTopFront:    V3(1, 1, 0),
		CornerLeftBottomBack:   V3(-1, -1, depth),
		CornerRightBottomBack:  V3(1, -1, depth),
		CornerLeftTopBack:      V3(-1, 1, depth),
		CornerRightTopBack:     V3(1, 1, depth),
	}
}

func TestVec3Ops(t *testing.T) {
	v := V3(1, 2, 3)
	w := V3(4, -5, 6)

	if got := v.Add(w); !approxVec(got, V3(5, -3, 9)) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(w); !approxVec(got, V3(-3, 7, -3)) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Dot(w); !approx(got, 1*4-2*5+3*6) {
		t.Errorf("Dot = %v", got)
	}
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); !approxVec(got, V3(0, 0, 1)) {
		t.Errorf("Cross = %v", got)
	}
	if got := V3(3, 4, 0).Length(); !approx(got, 5) {
		t.Errorf("Length = %v", got)
	}
	if got := V3(0, 0, 9).Normalized(); !approxVec(got, V3(0, 0, 1)) {
		t.Errorf("Normalized = %v", got)
	}
	if got := v.Lerp(w, 0.5); !approxVec(got, V3(2.5, -1.5, 4.5)) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestMat3RowsAndMul(t *testing.T) {
	m := Mat3FromRows(V3(0, 1, 0), V3(-1, 0, 0), V3(0, 0, 1))
	if got := m.Row(0); !approxVec(got, V3(0, 1, 0)) {
		t.Errorf("Row(0) = %v", got)
	}
	if got := m.MulVec3(V3(1, 0, 0)); !approxVec(got, V3(0, -1, 0)) {
		t.Errorf("MulVec3 = %v", got)
	}
	// Rotation transpose is its inverse.
	id := m.Mul(m.Transpose())
	if !approxVec(id.Row(0), V3(1, 0, 0)) || !approxVec(id.Row(1), V3(0, 1, 0)) {
		t.Errorf("m * m^T != identity: %v", id)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{
		Rot:    Mat3FromRows(V3(0, 1, 0), V3(-1, 0, 0), V3(0, 0, 1)),
		Origin: V3(10, -2, 3),
	}
	p := V3(1, 2, 3)
	back := tr.Inverse().Apply(tr.Apply(p))
	if !approxVec(back, p) {
		t.Errorf("inverse round trip = %v, want %v", back, p)
	}
	if !IdentityTransform().IsIdentity() {
		t.Error("IdentityTransform should report IsIdentity")
	}
}

func TestPlaneEvaluateProject(t *testing.T) {
	pl := PlaneFromNormalPoint(V3(0, 0, 2), V3(0, 0, 5))
	if !approx(pl.Evaluate(V3(3, 3, 7)), 2) {
		t.Errorf("Evaluate = %v, want 2", pl.Evaluate(V3(3, 3, 7)))
	}
	proj := pl.Project(V3(1, 2, 9))
	if !approxVec(proj, V3(1, 2, 5)) {
		t.Errorf("Project = %v", proj)
	}

	u, v := pl.Basis()
	if !approx(u.Dot(pl.Normal), 0) || !approx(v.Dot(pl.Normal), 0) {
		t.Error("basis vectors must be orthogonal to the normal")
	}
	if !approx(u.Dot(v), 0) {
		t.Error("basis vectors must be mutually orthogonal")
	}
}

func TestPlaneIntersectRay(t *testing.T) {
	pl := PlaneFromNormalPoint(V3(0, 0, 1), V3(0, 0, 4))

	if tt, ok := pl.IntersectRay(V3(0, 0, 0), V3(0, 0, 2)); !ok || !approx(tt, 2) {
		t.Errorf("IntersectRay = %v, %v", tt, ok)
	}
	if _, ok := pl.IntersectRay(V3(0, 0, 0), V3(1, 0, 0)); ok {
		t.Error("parallel ray should not intersect")
	}
}

func TestFrustumPlanesContain(t *testing.T) {
	f := boxFrustum(10)
	planes := f.Planes()

	inside := []Vec3{V3(0, 0, 5), V3(0.9, -0.9, 0.1), V3(0, 0, 9.9)}
	for _, p := range inside {
		if !planes.Contains(p, eps) {
			t.Errorf("point %v should be inside", p)
		}
	}
	outside := []Vec3{V3(2, 0, 5), V3(0, 0, -1), V3(0, 0, 11), V3(0, -3, 5)}
	for _, p := range outside {
		if planes.Contains(p, eps) {
			t.Errorf("point %v should be outside", p)
		}
	}
}

func TestFrustumIntersectPlane(t *testing.T) {
	f := boxFrustum(10)

	t.Run("crossing plane yields quad", func(t *testing.T) {
		pl := PlaneFromNormalPoint(V3(0, 0, 1), V3(0, 0, 5))
		poly := f.IntersectPlane(pl)
		if len(poly) < 4 {
			t.Fatalf("got %d points, want >= 4", len(poly))
		}
		planes := f.Planes()
		for _, p := range poly {
			if !approx(pl.Evaluate(p), 0) {
				t.Errorf("point %v not on plane", p)
			}
			if !planes.Contains(p, 1e-3) {
				t.Errorf("point %v escapes frustum", p)
			}
		}
	})

	t.Run("missing plane yields nil", func(t *testing.T) {
		pl := PlaneFromNormalPoint(V3(0, 0, 1), V3(0, 0, 50))
		if poly := f.IntersectPlane(pl); poly != nil {
			t.Errorf("expected nil, got %d points", len(poly))
		}
	})

	t.Run("tilted plane stays within frustum", func(t *testing.T) {
		pl := PlaneFromNormalPoint(V3(0, 1, 1), V3(0, 0, 5))
		poly := f.IntersectPlane(pl)
		if len(poly) < 3 {
			t.Fatalf("got %d points", len(poly))
		}
		planes := f.Planes()
		for _, p := range poly {
			if !planes.Contains(p, 1e-3) {
				t.Errorf("point %v escapes frustum", p)
			}
		}
	})
}

func TestClipConvexPolygon(t *testing.T) {
	square := []Vec3{V3(-1, -1, 0), V3(1, -1, 0), V3(1, 1, 0), V3(-1, 1, 0)}

	t.Run("keep half", func(t *testing.T) {
		pl := PlaneFromNormalPoint(V3(1, 0, 0), V3(0, 0, 0))
		got := ClipConvexPolygon(square, pl)
		if len(got) != 4 {
			t.Fatalf("got %d points, want 4", len(got))
		}
		for _, p := range got {
			if p.X < -eps {
				t.Errorf("point %v on the clipped side", p)
			}
		}
	})

	t.Run("keep all", func(t *testing.T) {
		pl := PlaneFromNormalPoint(V3(1, 0, 0), V3(-5, 0, 0))
		if got := ClipConvexPolygon(square, pl); len(got) != 4 {
			t.Errorf("got %d points, want 4", len(got))
		}
	})

	t.Run("remove all", func(t *testing.T) {
		pl := PlaneFromNormalPoint(V3(1, 0, 0), V3(5, 0, 0))
		if got := ClipConvexPolygon(square, pl); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestClipLineToConvexPolygon2D(t *testing.T) {
	square := []Vec2{V2(0, 0), V2(4, 0), V2(4, 4), V2(0, 4)}

	t.Run("horizontal line through middle", func(t *testing.T) {
		t0, t1, ok := ClipLineToConvexPolygon2D(V2(-10, 2), V2(1, 0), square)
		if !ok {
			t.Fatal("expected intersection")
		}
		if !approx(t0, 10) || !approx(t1, 14) {
			t.Errorf("t range = [%v, %v], want [10, 14]", t0, t1)
		}
	})

	t.Run("line missing polygon", func(t *testing.T) {
		if _, _, ok := ClipLineToConvexPolygon2D(V2(-10, 8), V2(1, 0), square); ok {
			t.Error("expected miss")
		}
	})

	t.Run("clockwise winding", func(t *testing.T) {
		cw := []Vec2{V2(0, 4), V2(4, 4), V2(4, 0), V2(0, 0)}
		t0, t1, ok := ClipLineToConvexPolygon2D(V2(2, -10), V2(0, 1), cw)
		if !ok || !approx(t0, 10) || !approx(t1, 14) {
			t.Errorf("cw clip = [%v, %v] ok=%v", t0, t1, ok)
		}
	})
}
