package viewport

import (
	"errors"

	"github.com/gogpu/viewport/render"
	"github.com/gogpu/viewport/tile"
)

// ErrViewportDisposed is returned when a frame is requested from a
// disposed viewport.
var ErrViewportDisposed = errors.New("viewport: disposed")

// ViewFlags controls which frame features are built.
type ViewFlags = render.ViewFlags

// DefaultViewFlags returns the flags a new viewport starts with.
func DefaultViewFlags() ViewFlags {
	return render.DefaultViewFlags()
}

// Decorator contributes overlay graphics to a viewport's frames. One
// decorator instance may be registered with many viewports; cache entries
// are per viewport.
type Decorator interface {
	// Decorate is called once per frame, unless a cached entry is
	// replayed instead. All output goes through the context.
	Decorate(dc *DecorateContext)
}

// CachedDecorator is implemented by decorators that want their output
// retained across frames. UseCachedDecorations is consulted every frame,
// so a decorator can switch caching off while animating and back on when
// it settles.
type CachedDecorator interface {
	Decorator
	UseCachedDecorations() bool
}

// Viewport drives per-frame scene and decoration assembly for one view
// and hands the results to its render target.
//
// All methods must be called from the single thread that owns the frame
// loop. Tile loading is the only asynchronous boundary and is reached
// through the Requester.
type Viewport struct {
	// View is the camera state. Mutate between frames, not during.
	View ViewingSpace

	// Flags selects the frame features to build.
	Flags ViewFlags

	// BackgroundColor is the view background, used to pick contrasting
	// decoration colors.
	BackgroundColor render.ColorDef

	// Requester schedules loads for missing tiles. May be nil, in which
	// case missing tiles are tracked but never requested.
	Requester tile.Requester

	target      render.Target
	decorators  []Decorator
	cache       *decorationCache
	html        render.HTMLContainer
	dynamics    render.GraphicList
	decorations *render.Decorations

	decorationsDirty bool
	disposed         bool
}

// New creates a viewport on the registry's default render target.
func New() (*Viewport, error) {
	t, err := render.Default()
	if err != nil {
		return nil, err
	}
	return NewWithTarget(t), nil
}

// NewWithTarget creates a viewport on an explicit target. The viewport
// takes ownership; Dispose disposes the target.
func NewWithTarget(t render.Target) *Viewport {
	propagateLogger(t)
	vp := &Viewport{
		Flags:            DefaultViewFlags(),
		BackgroundColor:  render.ColorBlack,
		target:           t,
		decorationsDirty: true,
	}
	vp.cache = newDecorationCache(&vp.html)
	return vp
}

// Target returns the render target this viewport draws to.
func (vp *Viewport) Target() render.Target {
	return vp.target
}

// Decorations returns the decoration bundle of the most recent frame, or
// nil before the first frame.
func (vp *Viewport) Decorations() *render.Decorations {
	return vp.decorations
}

// HTMLDecorations returns the container holding the viewport's HTML
// overlay elements.
func (vp *Viewport) HTMLDecorations() *render.HTMLContainer {
	return &vp.html
}

// AddDecorator registers a decorator. Adding the same decorator twice is
// a no-op.
func (vp *Viewport) AddDecorator(d Decorator) {
	if d == nil {
		return
	}
	for _, existing := range vp.decorators {
		if existing == d {
			return
		}
	}
	vp.decorators = append(vp.decorators, d)
	vp.decorationsDirty = true
}

// DropDecorator unregisters a decorator and releases its cache entry,
// disposing any graphics the entry owns and detaching any HTML elements
// it attached. Dropping an unregistered decorator is a no-op.
func (vp *Viewport) DropDecorator(d Decorator) {
	for i, existing := range vp.decorators {
		if existing == d {
			vp.decorators = append(vp.decorators[:i], vp.decorators[i+1:]...)
			vp.cache.Drop(d)
			vp.decorationsDirty = true
			return
		}
	}
}

// InvalidateDecorations marks decorations for rebuild on the next frame.
// Cached entries are kept, so opted-in decorators replay rather than
// recompute.
func (vp *Viewport) InvalidateDecorations() {
	vp.decorationsDirty = true
}

// InvalidateCachedDecorations drops every cache entry and marks
// decorations for rebuild. Opted-in decorators recompute on the next
// frame.
func (vp *Viewport) InvalidateCachedDecorations() {
	vp.cache.Clear()
	vp.decorationsDirty = true
}

// BuildScene constructs one frame's scene. populate walks the viewport's
// tile trees and contributes graphics; it may be nil for an empty scene.
func (vp *Viewport) BuildScene(populate func(*SceneContext)) *SceneContext {
	sc := newSceneContext(newRenderContext(vp))
	if populate != nil {
		populate(sc)
	}
	return sc
}

// BuildDecorations runs every registered decorator and returns the merged
// decoration bundle. A panicking decorator is logged and skipped; the
// rest of the frame's decorations are kept.
func (vp *Viewport) BuildDecorations() *DecorateContext {
	dc := newDecorateContext(newRenderContext(vp), &vp.html, vp.cache)
	if !vp.Flags.Decorations {
		return dc
	}
	for _, d := range vp.decorators {
		if err := dc.runDecorator(d); err != nil {
			slogger().Warn("viewport: decorator failed", "error", err)
		}
	}
	return dc
}

// AdvanceDynamics rebuilds the dynamics graphics for subsequent frames.
// populate may be nil to clear. Ignored entirely when the Dynamics flag
// is off.
func (vp *Viewport) AdvanceDynamics(populate func(*DynamicsContext)) {
	if !vp.Flags.Dynamics {
		return
	}
	if populate == nil {
		vp.dynamics = nil
		return
	}
	ctx := newDynamicsContext(newRenderContext(vp))
	populate(ctx)
	ctx.ChangeDynamics()
}

// RenderFrame assembles one frame and pushes its bundles to the target:
// the scene from populateScene, decorations from the registered
// decorators, and the current dynamics list. Missing tiles observed while
// building the scene are requested after the bundles are handed off.
func (vp *Viewport) RenderFrame(populateScene func(*SceneContext)) error {
	if vp.disposed {
		return ErrViewportDisposed
	}

	sc := vp.BuildScene(populateScene)
	vp.target.ChangeScene(sc.Scene())

	if vp.decorationsDirty {
		dc := vp.BuildDecorations()
		vp.decorations = dc.Decorations()
		vp.target.ChangeDecorations(vp.decorations)
		vp.decorationsDirty = false
	}

	vp.target.ChangeDynamics(vp.dynamics)

	sc.RequestMissingTiles()
	return nil
}

// Dispose releases the decoration cache, the HTML container, and the
// render target. Safe to call more than once.
func (vp *Viewport) Dispose() {
	if vp.disposed {
		return
	}
	vp.disposed = true
	vp.cache.Clear()
	vp.html.Clear()
	vp.target.Dispose()
}
