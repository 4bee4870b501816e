// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/viewport"
)

// Presentation errors.
var (
	// ErrInvalidDrawContext is returned when the draw context doesn't
	// implement gpucontext.TextureDrawer.
	ErrInvalidDrawContext = errors.New("hostview: dc must implement gpucontext.TextureDrawer")

	// ErrInvalidRenderer is returned when the draw context's renderer
	// doesn't implement gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("hostview: renderer must implement gpucontext.TextureCreator")
)

// Options controls where the overlay is drawn in the host window.
type Options struct {
	// X, Y is the position to draw the overlay (default: 0, 0).
	X, Y float32
}

// DefaultOptions returns options drawing the overlay at the window
// origin.
func DefaultOptions() Options {
	return Options{}
}

// drawTarget is the drawing subset of gpucontext.TextureDrawer.
type drawTarget interface {
	DrawTexture(texture gpucontext.Texture, x, y float32) error
}

// rgbaTextureCreator is the creation subset of gpucontext.TextureCreator.
type rgbaTextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error)
}

// textureDestroyer releases a host texture's GPU resources.
type textureDestroyer interface {
	Destroy()
}

// Present rasterizes vp's canvas decorations and draws them once at the
// window origin. A viewport with no canvas decorations draws nothing and
// returns nil. For per-frame presentation prefer a Host, which retires
// the previous frame's texture.
func Present(dc gpucontext.TextureDrawer, vp *viewport.Viewport) error {
	if dc == nil {
		return ErrInvalidDrawContext
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}
	_, err := present(dc, creator, overlayImage(vp), DefaultOptions())
	return err
}

// Host presents one viewport's decoration overlay frame after frame,
// reusing the draw path and destroying the previous frame's texture once
// the new one has been uploaded.
type Host struct {
	vp      *viewport.Viewport
	opts    Options
	texture gpucontext.Texture
}

// NewHost creates a host presenter for vp.
func NewHost(vp *viewport.Viewport) *Host {
	return &Host{vp: vp}
}

// SetOptions changes where subsequent frames are drawn.
func (h *Host) SetOptions(opts Options) {
	h.opts = opts
}

// Present draws the viewport's current canvas decorations into the host
// window. The previous frame's texture is destroyed after the new upload
// completes, so the GPU never reads retired resources.
func (h *Host) Present(dc gpucontext.TextureDrawer) error {
	if dc == nil {
		return ErrInvalidDrawContext
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}
	tex, err := present(dc, creator, overlayImage(h.vp), h.opts)
	if err != nil {
		return err
	}
	if tex != nil {
		h.retire()
		h.texture = tex
	}
	return nil
}

// Close releases the retained texture. The host can be reused afterward.
func (h *Host) Close() {
	h.retire()
}

func (h *Host) retire() {
	if h.texture == nil {
		return
	}
	if d, ok := h.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	h.texture = nil
}

// overlayImage composes the viewport's canvas decorations at the view
// size.
func overlayImage(vp *viewport.Viewport) *image.RGBA {
	return viewport.RenderCanvasDecorations(vp.Decorations(), vp.View.ViewWidth, vp.View.ViewHeight)
}

// present uploads the overlay and draws it. Returns the created texture,
// or nil when there was nothing to draw.
func present(dc drawTarget, creator rgbaTextureCreator, img *image.RGBA, opts Options) (gpucontext.Texture, error) {
	if img == nil {
		return nil, nil
	}
	b := img.Bounds()
	tex, err := creator.NewTextureFromRGBA(b.Dx(), b.Dy(), img.Pix)
	if err != nil {
		return nil, fmt.Errorf("hostview: NewTextureFromRGBA failed: %w", err)
	}

	// image.RGBA pixels are premultiplied alpha; mark the texture so the
	// host composites with the matching blend factors.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	if err := dc.DrawTexture(tex, opts.X, opts.Y); err != nil {
		if d, ok := tex.(textureDestroyer); ok {
			d.Destroy()
		}
		return nil, err
	}
	return tex, nil
}
