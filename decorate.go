package viewport

import (
	"fmt"

	"github.com/gogpu/viewport/render"
)

// DecorateContext collects decoration output for one frame. Decorators
// receive it in their Decorate call and contribute graphics, canvas
// overlays, and HTML elements through it.
//
// When the active decorator opted into caching, everything it adds is
// also recorded into the viewport's decoration cache; on later frames the
// recorded output is replayed without calling the decorator at all.
type DecorateContext struct {
	RenderContext

	decorations *render.Decorations
	html        *render.HTMLContainer
	cache       *decorationCache

	active    Decorator
	recording bool
}

func newDecorateContext(rc RenderContext, html *render.HTMLContainer, cache *decorationCache) *DecorateContext {
	return &DecorateContext{
		RenderContext: rc,
		decorations:   &render.Decorations{},
		html:          html,
		cache:         cache,
	}
}

// Decorations returns the bundle assembled so far.
func (dc *DecorateContext) Decorations() *render.Decorations {
	return dc.decorations
}

// runDecorator invokes one decorator, replaying its cached output instead
// when a valid cache entry exists. A panic inside Decorate is converted to
// an error and any partially recorded entry is discarded.
func (dc *DecorateContext) runDecorator(d Decorator) (err error) {
	if dc.active != nil {
		panic("viewport: reentrant decorator activation")
	}

	if cd, ok := d.(CachedDecorator); ok && cd.UseCachedDecorations() {
		if e := dc.cache.Get(d); e != nil {
			dc.restoreCache(e)
			slogger().Debug("viewport: decoration cache hit", "items", len(e.items))
			return nil
		}
		dc.recording = true
	}

	dc.active = d
	defer func() {
		wasRecording := dc.recording
		dc.active = nil
		dc.recording = false
		if r := recover(); r != nil {
			if wasRecording {
				dc.cache.Drop(d)
			}
			err = fmt.Errorf("viewport: decorator panicked: %v", r)
		}
	}()

	d.Decorate(dc)
	return nil
}

// restoreCache replays a recorded entry into this frame's output.
// Disposed graphics are skipped; canvas and HTML items re-apply their
// original placement rules, which reproduces the recorded order.
func (dc *DecorateContext) restoreCache(e *cacheEntry) {
	for _, item := range e.items {
		switch item.kind {
		case cachedGraphic:
			g := item.owner.Graphic()
			if g == nil {
				continue
			}
			dc.routeGraphic(item.graphicType, g)
		case cachedCanvas:
			dc.decorations.AddCanvas(item.canvas, item.canvasAtFront)
		case cachedHTML:
			dc.html.Append(item.html)
		}
	}
}

func (dc *DecorateContext) routeGraphic(typ render.GraphicType, g *render.Graphic) {
	if typ == render.GraphicTypeViewBackground {
		dc.decorations.SetViewBackground(g)
		return
	}
	if list := dc.decorations.List(typ); list != nil {
		list.Add(g)
	}
}

// AddDecoration contributes a finished graphic of the given type. When
// the active decorator is being recorded, the target takes ownership of
// the graphic so it survives across frames.
func (dc *DecorateContext) AddDecoration(typ render.GraphicType, g *render.Graphic) {
	if g == nil {
		return
	}
	dc.routeGraphic(typ, g)
	if dc.recording {
		owner := dc.vp.target.CreateGraphicOwner(g)
		dc.cache.Add(dc.active, cachedDecoration{
			kind:        cachedGraphic,
			owner:       owner,
			graphicType: typ,
		})
	}
}

// AddDecorationFromBuilder finishes the builder and contributes the
// resulting graphic under the builder's own type.
func (dc *DecorateContext) AddDecorationFromBuilder(b *render.GraphicBuilder) {
	g := b.Finish()
	dc.AddDecoration(g.Type(), g)
}

// AddCanvasDecoration contributes a 2D canvas overlay. With atFront the
// decoration is composited in front of those already present; otherwise
// behind.
func (dc *DecorateContext) AddCanvasDecoration(dec render.CanvasDecoration, atFront bool) {
	if dec == nil {
		return
	}
	dc.decorations.AddCanvas(dec, atFront)
	if dc.recording {
		dc.cache.Add(dc.active, cachedDecoration{
			kind:          cachedCanvas,
			canvas:        dec,
			canvasAtFront: atFront,
		})
	}
}

// AddHTMLDecoration attaches an HTML element to the viewport's overlay
// container. Re-adding an element already present is a no-op, so replayed
// and fresh decorations never duplicate.
func (dc *DecorateContext) AddHTMLDecoration(el render.HTMLElement) {
	if el == nil {
		return
	}
	dc.html.Append(el)
	if dc.recording {
		dc.cache.Add(dc.active, cachedDecoration{
			kind: cachedHTML,
			html: el,
		})
	}
}

// SetSkyBox sets the frame's skybox graphic. Last writer wins.
func (dc *DecorateContext) SetSkyBox(g *render.Graphic) {
	dc.decorations.SetSkyBox(g)
}

// SetViewBackground sets the frame's view background graphic. Last
// writer wins. Unlike AddDecoration this never records into the cache;
// use AddDecoration with [render.GraphicTypeViewBackground] for a cached
// background.
func (dc *DecorateContext) SetViewBackground(g *render.Graphic) {
	dc.decorations.SetViewBackground(g)
}
