package render

import "image"

// CanvasDecoration draws 2D screen-space content into the decoration
// overlay. Implementations are invoked in list order when the overlay is
// composed.
type CanvasDecoration interface {
	// DrawDecoration draws into the overlay image. The image spans the
	// full view rectangle.
	DrawDecoration(dst *image.RGBA)
}

// HTMLElement is an opaque handle to a host UI element contributed as a
// decoration. Handles must be comparable (pointer types in practice) so
// container insertion can be idempotent by identity.
type HTMLElement any

// HTMLContainer holds the HTML decorations of a viewport. Insertion is
// idempotent: appending an element already present leaves the container
// unchanged, so cache replay cannot duplicate elements.
type HTMLContainer struct {
	elements []HTMLElement
}

// Append adds el unless it is already present.
func (c *HTMLContainer) Append(el HTMLElement) {
	if el == nil || c.Contains(el) {
		return
	}
	c.elements = append(c.elements, el)
}

// Remove deletes el, preserving the order of the rest.
func (c *HTMLContainer) Remove(el HTMLElement) {
	for i, e := range c.elements {
		if e == el {
			c.elements = append(c.elements[:i], c.elements[i+1:]...)
			return
		}
	}
}

// Contains reports whether el is present.
func (c *HTMLContainer) Contains(el HTMLElement) bool {
	for _, e := range c.elements {
		if e == el {
			return true
		}
	}
	return false
}

// Elements returns the contained elements in order. The slice must not be
// modified.
func (c *HTMLContainer) Elements() []HTMLElement {
	return c.elements
}

// Len returns the number of contained elements.
func (c *HTMLContainer) Len() int {
	return len(c.elements)
}

// Clear removes all elements.
func (c *HTMLContainer) Clear() {
	c.elements = nil
}

// Decorations is one frame's decoration bundle. Every slot is optional;
// the bundle is rebuilt each frame and accumulates only within one
// DecorateContext's lifetime.
type Decorations struct {
	// ViewBackground is the single background graphic. Last writer wins
	// within a frame.
	ViewBackground *Graphic

	// SkyBox is the sky box graphic, drawn behind the scene when the
	// camera is on.
	SkyBox *Graphic

	// Normal holds scene-type decoration graphics.
	Normal GraphicList

	// World holds world-decoration graphics.
	World GraphicList

	// WorldOverlay holds world-space overlay graphics.
	WorldOverlay GraphicList

	// ViewOverlay holds view-space overlay graphics.
	ViewOverlay GraphicList

	// Canvas is the ordered canvas-decoration list. Use AddCanvas to
	// maintain the front/back ordering rule.
	Canvas []CanvasDecoration
}

// AddCanvas inserts a canvas decoration. When the list is empty or
// atFront is true the decoration is placed at the front, otherwise it is
// appended at the back. Front items therefore always precede
// default-ordered later insertions.
func (d *Decorations) AddCanvas(dec CanvasDecoration, atFront bool) {
	if dec == nil {
		return
	}
	if len(d.Canvas) == 0 || atFront {
		d.Canvas = append([]CanvasDecoration{dec}, d.Canvas...)
		return
	}
	d.Canvas = append(d.Canvas, dec)
}

// SetViewBackground replaces the background graphic.
func (d *Decorations) SetViewBackground(g *Graphic) {
	d.ViewBackground = g
}

// SetSkyBox replaces the sky box graphic.
func (d *Decorations) SetSkyBox(g *Graphic) {
	d.SkyBox = g
}

// List returns the graphic list for a decoration graphic type, or nil for
// GraphicTypeViewBackground, which is a single slot rather than a list.
func (d *Decorations) List(typ GraphicType) *GraphicList {
	switch typ {
	case GraphicTypeScene:
		return &d.Normal
	case GraphicTypeWorldDecoration:
		return &d.World
	case GraphicTypeWorldOverlay:
		return &d.WorldOverlay
	case GraphicTypeViewOverlay:
		return &d.ViewOverlay
	default:
		return nil
	}
}

// IsEmpty reports whether the bundle contributes nothing to the frame.
func (d *Decorations) IsEmpty() bool {
	return d.ViewBackground == nil && d.SkyBox == nil &&
		len(d.Normal) == 0 && len(d.World) == 0 &&
		len(d.WorldOverlay) == 0 && len(d.ViewOverlay) == 0 &&
		len(d.Canvas) == 0
}
