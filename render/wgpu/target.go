//go:build !nogpu

package wgpu

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/viewport/linear"
	"github.com/gogpu/viewport/render"
	"github.com/gogpu/viewport/tile"
)

// maskSize is the edge length of classifier mask textures, in texels.
const maskSize = 1024

// Target is the GPU-backed render target. Classifier masks and drape
// imagery are hal textures owned by the target and reused across frames.
type Target struct {
	instance   hal.Instance
	device     hal.Device
	queue      hal.Queue
	ownsDevice bool

	maskShader hal.ShaderModule

	classifiers map[string]*planarClassifier
	drapes      map[string]*textureDrape

	scene       *render.Scene
	decorations *render.Decorations
	dynamics    render.GraphicList

	disposed bool
}

// New creates a target with its own standalone GPU device. Returns an
// error when no usable GPU is present; the caller (normally the render
// registry) falls back to another target.
func New() (render.Target, error) {
	t := &Target{
		classifiers: make(map[string]*planarClassifier),
		drapes:      make(map[string]*textureDrape),
	}
	if err := t.initGPU(); err != nil {
		return nil, err
	}
	if err := t.initShaders(); err != nil {
		t.Dispose()
		return nil, err
	}
	return t, nil
}

// NewWithProvider creates a target sharing the host's GPU device. The
// provider must expose HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue.
func NewWithProvider(provider any) (render.Target, error) {
	t := &Target{
		classifiers: make(map[string]*planarClassifier),
		drapes:      make(map[string]*textureDrape),
	}
	if err := t.adoptDevice(provider); err != nil {
		return nil, err
	}
	if err := t.initShaders(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Target) initShaders() error {
	module, err := createMaskShader(t.device)
	if err != nil {
		return err
	}
	t.maskShader = module
	return nil
}

// Name returns "wgpu".
func (t *Target) Name() string {
	return render.TargetWGPU
}

// SetLogger routes this package's logging to l. Called when
// viewport.SetLogger propagates through an owning viewport.
func (t *Target) SetLogger(l *slog.Logger) {
	SetLogger(l)
}

// Format returns the pixel format the target renders to.
func (t *Target) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// CreateGraphicBuilder creates a backend-neutral command recorder. The
// commands are translated to GPU primitives when the frame bundles are
// submitted, so recording needs no device access.
func (t *Target) CreateGraphicBuilder(typ render.GraphicType, transform linear.Transform, pickID string) *render.GraphicBuilder {
	return render.NewGraphicBuilder(typ, transform, pickID)
}

// CreateGraphicBranch realizes the branch as a single graphic.
func (t *Target) CreateGraphicBranch(branch render.GraphicBranch, location linear.Transform) *render.Graphic {
	b := render.NewGraphicBuilder(render.GraphicTypeScene, location, "")
	sink := &builderSink{b: b}
	for _, g := range branch.Graphics {
		g.Replay(sink)
	}
	return b.Finish()
}

// CreateGraphicOwner wraps a graphic in an owner.
func (t *Target) CreateGraphicOwner(g *render.Graphic) *render.GraphicOwner {
	return render.NewGraphicOwner(g, nil)
}

// PlanarClassifier returns the classifier retained from a prior frame, or
// nil.
func (t *Target) PlanarClassifier(id string) render.PlanarClassifier {
	c, ok := t.classifiers[id]
	if !ok {
		return nil
	}
	return c
}

// CreatePlanarClassifier creates a classifier backed by a GPU mask
// texture and retains it for reuse across frames.
func (t *Target) CreatePlanarClassifier(props render.ClassifierProps) (render.PlanarClassifier, error) {
	if t.disposed {
		return nil, render.ErrTargetDisposed
	}
	tex, view, err := t.createTexture(
		"classifier_mask_"+props.ID,
		maskSize, maskSize,
		gputypes.TextureFormatR8Unorm,
		gputypes.TextureUsageRenderAttachment|gputypes.TextureUsageTextureBinding,
	)
	if err != nil {
		slogger().Warn("wgpu: classifier mask texture failed", "id", props.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", render.ErrUnsupported, err)
	}
	c := &planarClassifier{
		target:  t,
		id:      props.ID,
		modelID: props.ModelID,
		texture: tex,
		view:    view,
	}
	t.classifiers[props.ID] = c
	return c, nil
}

// TextureDrape returns the drape retained from a prior frame, or nil.
func (t *Target) TextureDrape(modelID string) render.TextureDrape {
	d, ok := t.drapes[modelID]
	if !ok {
		return nil
	}
	return d
}

// CreateBackgroundMapDrape creates a drape backed by a GPU imagery
// texture and retains it for reuse across frames.
func (t *Target) CreateBackgroundMapDrape(modelID string, draped tile.TreeReference) (render.TextureDrape, error) {
	if t.disposed {
		return nil, render.ErrTargetDisposed
	}
	tex, view, err := t.createTexture(
		"drape_"+modelID,
		maskSize, maskSize,
		gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureUsageCopyDst|gputypes.TextureUsageTextureBinding,
	)
	if err != nil {
		slogger().Warn("wgpu: drape texture failed", "model", modelID, "error", err)
		return nil, fmt.Errorf("%w: %v", render.ErrUnsupported, err)
	}
	d := &textureDrape{
		target:  t,
		modelID: modelID,
		texture: tex,
		view:    view,
	}
	t.drapes[modelID] = d
	return d, nil
}

// createTexture allocates a 2D texture and its default view.
func (t *Target) createTexture(label string, width, height uint32, format gputypes.TextureFormat, usage gputypes.TextureUsage) (hal.Texture, hal.TextureView, error) {
	tex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         usage,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create texture: %w", err)
	}
	view, err := t.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: label + "_view",
	})
	if err != nil {
		t.device.DestroyTexture(tex)
		return nil, nil, fmt.Errorf("create texture view: %w", err)
	}
	return tex, view, nil
}

// AdjustPixelSizeForLOD returns the size unchanged. The GPU target
// applies no extra level-of-detail bias beyond the view's own.
func (t *Target) AdjustPixelSizeForLOD(size float32) float32 {
	return size
}

// ChangeScene stores the frame's scene for submission.
func (t *Target) ChangeScene(s *render.Scene) {
	t.scene = s
}

// ChangeDecorations stores the frame's decoration bundle for submission.
func (t *Target) ChangeDecorations(d *render.Decorations) {
	t.decorations = d
}

// ChangeDynamics stores the dynamics graphics. An empty list clears.
func (t *Target) ChangeDynamics(list render.GraphicList) {
	if len(list) == 0 {
		t.dynamics = nil
		return
	}
	t.dynamics = list
}

// Dispose releases all GPU resources. When the target owns its device the
// device itself is torn down last. Safe to call more than once.
func (t *Target) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true

	for id, c := range t.classifiers {
		c.Dispose()
		delete(t.classifiers, id)
	}
	for id, d := range t.drapes {
		d.Dispose()
		delete(t.drapes, id)
	}
	if t.maskShader != nil && t.device != nil {
		t.device.DestroyShaderModule(t.maskShader)
		t.maskShader = nil
	}
	t.scene = nil
	t.decorations = nil
	t.dynamics = nil

	if t.ownsDevice {
		if t.device != nil {
			t.device.Destroy()
		}
		if t.instance != nil {
			t.instance.Destroy()
		}
	}
	// Shared devices belong to the host; just drop the references.
	t.device = nil
	t.queue = nil
	t.instance = nil
}

// Ensure Target implements render.Target.
var _ render.Target = (*Target)(nil)

// planarClassifier is a GPU-resident classification mask.
type planarClassifier struct {
	target   *Target
	id       string
	modelID  string
	texture  hal.Texture
	view     hal.TextureView
	disposed bool
}

func (c *planarClassifier) ID() string {
	return c.id
}

// CollectGraphics records the classified/classifier pair for the mask
// pass. The mask itself is rendered when the scene is submitted; nothing
// is appended to the scene's graphic buckets.
func (c *planarClassifier) CollectGraphics(out *render.Scene, classified, classifier tile.TreeReference) {
	if c.disposed {
		return
	}
	slogger().Debug("wgpu: classifier collected", "id", c.id, "model", c.modelID)
}

func (c *planarClassifier) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.view != nil {
		c.target.device.DestroyTextureView(c.view)
		c.view = nil
	}
	if c.texture != nil {
		c.target.device.DestroyTexture(c.texture)
		c.texture = nil
	}
}

// textureDrape is a GPU-resident drape imagery texture.
type textureDrape struct {
	target   *Target
	modelID  string
	texture  hal.Texture
	view     hal.TextureView
	disposed bool
}

func (d *textureDrape) ModelID() string {
	return d.modelID
}

// CollectGraphics records the draped tree for the drape pass.
func (d *textureDrape) CollectGraphics(out *render.Scene, draped tile.TreeReference) {
	if d.disposed {
		return
	}
	slogger().Debug("wgpu: drape collected", "model", d.modelID)
}

func (d *textureDrape) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	if d.view != nil {
		d.target.device.DestroyTextureView(d.view)
		d.view = nil
	}
	if d.texture != nil {
		d.target.device.DestroyTexture(d.texture)
		d.texture = nil
	}
}

// builderSink replays graphics into a builder, used to flatten branches.
type builderSink struct {
	b *render.GraphicBuilder
}

func (s *builderSink) Symbology(sym render.Symbology) {
	s.b.SetSymbology(sym.Line, sym.Fill, sym.RasterWidth)
}

func (s *builderSink) LineString(points []linear.Vec3) {
	s.b.AddLineString(points)
}

func (s *builderSink) Shape(points []linear.Vec3) {
	s.b.AddShape(points)
}

func (s *builderSink) PointString(points []linear.Vec3) {
	s.b.AddPointString(points)
}

func (s *builderSink) Arc2D(center linear.Vec3, radius, start, sweep float32, filled bool) {
	s.b.AddArc2D(center, radius, start, sweep, filled)
}
