//go:build !nogpu

package wgpu

import (
	"testing"

	"github.com/gogpu/viewport/linear"
	"github.com/gogpu/viewport/render"
)

func TestSpirvWords(t *testing.T) {
	// SPIR-V magic number 0x07230203 in little-endian bytes.
	words := spirvWords([]byte{0x03, 0x02, 0x23, 0x07, 0xff, 0x00, 0x00, 0x00})
	if len(words) != 2 {
		t.Fatalf("len = %d, want 2", len(words))
	}
	if words[0] != 0x07230203 {
		t.Errorf("words[0] = %#x, want 0x07230203", words[0])
	}
	if words[1] != 0xff {
		t.Errorf("words[1] = %#x, want 0xff", words[1])
	}
}

// newTestTarget creates a GPU target, skipping when no GPU is present.
func newTestTarget(t *testing.T) *Target {
	t.Helper()
	target, err := New()
	if err != nil {
		t.Skipf("GPU not available: %v", err)
	}
	return target.(*Target)
}

func TestTargetClassifierLifecycle(t *testing.T) {
	target := newTestTarget(t)
	defer target.Dispose()

	c, err := target.CreatePlanarClassifier(render.ClassifierProps{ID: "c1", ModelID: "m1"})
	if err != nil {
		t.Fatalf("CreatePlanarClassifier: %v", err)
	}
	if got := target.PlanarClassifier("c1"); got != c {
		t.Error("retained classifier not returned on lookup")
	}

	c.Dispose()
	c.Dispose() // idempotent
	if !c.(*planarClassifier).disposed {
		t.Error("classifier not marked disposed")
	}
}

func TestTargetDrapeLifecycle(t *testing.T) {
	target := newTestTarget(t)
	defer target.Dispose()

	d, err := target.CreateBackgroundMapDrape("m2", nil)
	if err != nil {
		t.Fatalf("CreateBackgroundMapDrape: %v", err)
	}
	if d.ModelID() != "m2" {
		t.Errorf("ModelID = %q", d.ModelID())
	}
	if got := target.TextureDrape("m2"); got != d {
		t.Error("retained drape not returned on lookup")
	}
}

func TestTargetDisposeReleasesAll(t *testing.T) {
	target := newTestTarget(t)

	c, _ := target.CreatePlanarClassifier(render.ClassifierProps{ID: "c1"})
	d, _ := target.CreateBackgroundMapDrape("m1", nil)

	target.Dispose()
	target.Dispose() // idempotent

	if !c.(*planarClassifier).disposed || !d.(*textureDrape).disposed {
		t.Error("resources not disposed with target")
	}
	if _, err := target.CreatePlanarClassifier(render.ClassifierProps{ID: "c2"}); err != render.ErrTargetDisposed {
		t.Errorf("create after dispose: err = %v, want ErrTargetDisposed", err)
	}
}

func TestCreateGraphicBranchFlattens(t *testing.T) {
	target := newTestTarget(t)
	defer target.Dispose()

	b := target.CreateGraphicBuilder(render.GraphicTypeScene, linear.IdentityTransform(), "")
	b.SetSymbology(render.ColorWhite, render.ColorBlack, 1)
	b.AddLineString([]linear.Vec3{linear.V3(0, 0, 0), linear.V3(1, 0, 0)})

	var branch render.GraphicBranch
	branch.Add(b.Finish())

	g := target.CreateGraphicBranch(branch, linear.IdentityTransform())
	if len(g.Commands()) != 2 {
		t.Errorf("flattened commands = %d, want 2", len(g.Commands()))
	}
}
