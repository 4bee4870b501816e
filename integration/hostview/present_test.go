// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/render"
)

// fakeTexture implements gpucontext.Texture and records premultiplied
// marking and destruction.
type fakeTexture struct {
	width, height int
	data          []byte
	premultiplied bool
	destroyed     bool
}

func (t *fakeTexture) Width() int  { return t.width }
func (t *fakeTexture) Height() int { return t.height }

func (t *fakeTexture) SetPremultiplied(p bool) {
	t.premultiplied = p
}

func (t *fakeTexture) Destroy() {
	t.destroyed = true
}

type fakeCreator struct {
	textures []*fakeTexture
	failNext bool
}

func (c *fakeCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if c.failNext {
		c.failNext = false
		return nil, errors.New("fake texture creation failed")
	}
	tex := &fakeTexture{width: width, height: height, data: data}
	c.textures = append(c.textures, tex)
	return tex, nil
}

// fakeDrawer implements gpucontext.TextureDrawer.
type fakeDrawer struct {
	creator  *fakeCreator
	drawn    []gpucontext.Texture
	drawnX   float32
	drawnY   float32
	failNext bool
}

func (d *fakeDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	if d.failNext {
		d.failNext = false
		return errors.New("fake draw failed")
	}
	d.drawn = append(d.drawn, tex)
	d.drawnX = x
	d.drawnY = y
	return nil
}

func (d *fakeDrawer) TextureCreator() gpucontext.TextureCreator {
	if d.creator == nil {
		return nil
	}
	return d.creator
}

func overlayFixture() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 64, 32))
}

func TestPresentUploadsAndDraws(t *testing.T) {
	creator := &fakeCreator{}
	drawer := &fakeDrawer{}

	tex, err := present(drawer, creator, overlayFixture(), Options{X: 10, Y: 20})
	if err != nil {
		t.Fatalf("present: %v", err)
	}
	if len(creator.textures) != 1 {
		t.Fatalf("textures created = %d, want 1", len(creator.textures))
	}
	created := creator.textures[0]
	if created.width != 64 || created.height != 32 {
		t.Errorf("texture size = %dx%d, want 64x32", created.width, created.height)
	}
	if !created.premultiplied {
		t.Error("texture not marked premultiplied")
	}
	if tex.(*fakeTexture) != created {
		t.Error("returned texture is not the created one")
	}
	if len(drawer.drawn) != 1 || drawer.drawnX != 10 || drawer.drawnY != 20 {
		t.Errorf("draw = %d at (%v,%v), want 1 at (10,20)", len(drawer.drawn), drawer.drawnX, drawer.drawnY)
	}
}

func TestPresentNothingToDraw(t *testing.T) {
	creator := &fakeCreator{}
	drawer := &fakeDrawer{}

	tex, err := present(drawer, creator, nil, DefaultOptions())
	if err != nil || tex != nil {
		t.Fatalf("present(nil image) = (%v, %v), want (nil, nil)", tex, err)
	}
	if len(creator.textures) != 0 || len(drawer.drawn) != 0 {
		t.Fatal("empty overlay reached the GPU")
	}
}

func TestPresentCreationFailure(t *testing.T) {
	creator := &fakeCreator{failNext: true}
	drawer := &fakeDrawer{}

	if _, err := present(drawer, creator, overlayFixture(), DefaultOptions()); err == nil {
		t.Fatal("creation failure not propagated")
	}
	if len(drawer.drawn) != 0 {
		t.Fatal("draw attempted after failed upload")
	}
}

func TestPresentDrawFailureDestroysTexture(t *testing.T) {
	creator := &fakeCreator{}
	drawer := &fakeDrawer{failNext: true}

	if _, err := present(drawer, creator, overlayFixture(), DefaultOptions()); err == nil {
		t.Fatal("draw failure not propagated")
	}
	if len(creator.textures) != 1 || !creator.textures[0].destroyed {
		t.Fatal("failed draw leaked the uploaded texture")
	}
}

func TestHostRetiresPreviousTexture(t *testing.T) {
	h := NewHost(nil)
	old := &fakeTexture{}
	h.texture = old
	h.retire()
	if !old.destroyed {
		t.Fatal("retired texture not destroyed")
	}
	if h.texture != nil {
		t.Fatal("texture reference kept after retire")
	}

	// Close on an empty host is a no-op.
	h.Close()
}

func TestPresentInvalidDrawContext(t *testing.T) {
	vp := viewport.NewWithTarget(render.NewMemoryTarget())
	defer vp.Dispose()

	if err := Present(nil, vp); err != ErrInvalidDrawContext {
		t.Fatalf("err = %v, want ErrInvalidDrawContext", err)
	}
	h := NewHost(vp)
	if err := h.Present(nil); err != ErrInvalidDrawContext {
		t.Fatalf("host err = %v, want ErrInvalidDrawContext", err)
	}
}

// labeledViewport builds a viewport with one canvas label and a rendered
// frame, so presenting it has something to upload.
func labeledViewport(t *testing.T) *viewport.Viewport {
	t.Helper()
	vp := viewport.NewWithTarget(render.NewMemoryTarget())
	vp.View.ViewWidth = 100
	vp.View.ViewHeight = 80
	vp.AddDecorator(labelDecorator{})
	if err := vp.RenderFrame(nil); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	return vp
}

func TestPresentDrawsViewportOverlay(t *testing.T) {
	vp := labeledViewport(t)
	defer vp.Dispose()

	drawer := &fakeDrawer{creator: &fakeCreator{}}
	if err := Present(drawer, vp); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if len(drawer.creator.textures) != 1 {
		t.Fatalf("textures created = %d, want 1", len(drawer.creator.textures))
	}
	tex := drawer.creator.textures[0]
	if tex.Width() != 100 || tex.Height() != 80 {
		t.Errorf("texture size = %dx%d, want view size 100x80", tex.Width(), tex.Height())
	}
	if !tex.premultiplied {
		t.Error("texture not marked premultiplied")
	}
	if len(drawer.drawn) != 1 || drawer.drawnX != 0 || drawer.drawnY != 0 {
		t.Errorf("draw = %d at (%v,%v), want 1 at origin", len(drawer.drawn), drawer.drawnX, drawer.drawnY)
	}
}

func TestPresentNilTextureCreator(t *testing.T) {
	vp := labeledViewport(t)
	defer vp.Dispose()

	drawer := &fakeDrawer{}
	if err := Present(drawer, vp); err != ErrInvalidRenderer {
		t.Fatalf("err = %v, want ErrInvalidRenderer", err)
	}
	h := NewHost(vp)
	if err := h.Present(drawer); err != ErrInvalidRenderer {
		t.Fatalf("host err = %v, want ErrInvalidRenderer", err)
	}
}

func TestHostPresentRetiresAcrossFrames(t *testing.T) {
	vp := labeledViewport(t)
	defer vp.Dispose()

	drawer := &fakeDrawer{creator: &fakeCreator{}}
	h := NewHost(vp)
	h.SetOptions(Options{X: 5, Y: 7})

	if err := h.Present(drawer); err != nil {
		t.Fatalf("first Present: %v", err)
	}
	if err := h.Present(drawer); err != nil {
		t.Fatalf("second Present: %v", err)
	}

	textures := drawer.creator.textures
	if len(textures) != 2 {
		t.Fatalf("textures created = %d, want 2", len(textures))
	}
	if !textures[0].destroyed {
		t.Fatal("previous frame's texture not retired")
	}
	if textures[1].destroyed {
		t.Fatal("current frame's texture destroyed")
	}
	if h.texture != gpucontext.Texture(textures[1]) {
		t.Fatal("host does not hold the latest texture")
	}
	if drawer.drawnX != 5 || drawer.drawnY != 7 {
		t.Fatalf("drawn at (%v,%v), want (5,7)", drawer.drawnX, drawer.drawnY)
	}

	h.Close()
	if !textures[1].destroyed {
		t.Fatal("Close did not retire the held texture")
	}
}

func TestOverlayImageComposesCanvasDecorations(t *testing.T) {
	vp := viewport.NewWithTarget(render.NewMemoryTarget())
	defer vp.Dispose()
	vp.View.ViewWidth = 100
	vp.View.ViewHeight = 80

	if overlayImage(vp) != nil {
		t.Fatal("overlay produced before any frame")
	}

	vp.AddDecorator(labelDecorator{})
	if err := vp.RenderFrame(nil); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	img := overlayImage(vp)
	if img == nil {
		t.Fatal("no overlay for a frame with canvas decorations")
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Fatalf("overlay size = %dx%d, want 100x80", b.Dx(), b.Dy())
	}
	opaque := false
	for _, a := range img.Pix {
		if a != 0 {
			opaque = true
			break
		}
	}
	if !opaque {
		t.Fatal("overlay is fully transparent after drawing a label")
	}
}

type labelDecorator struct{}

func (labelDecorator) Decorate(dc *viewport.DecorateContext) {
	dc.AddCanvasDecoration(viewport.NewLabelDecoration("ready", 10, 20), false)
}
