package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/linear"
	"github.com/gogpu/viewport/tile"
)

func init() {
	Register(TargetMemory, func() (Target, error) {
		return NewMemoryTarget(), nil
	})
}

// MemoryTarget is the CPU reference implementation of Target. It retains
// classifiers and drapes across frames like a GPU target would, tracks
// owner disposal, and keeps the most recently submitted scene, decoration,
// and dynamics bundles readable for composition and tests.
type MemoryTarget struct {
	classifiers map[string]PlanarClassifier
	drapes      map[string]TextureDrape

	scene       *Scene
	decorations *Decorations
	dynamics    GraphicList

	liveOwners int
	disposed   bool
}

// NewMemoryTarget creates an empty memory target.
func NewMemoryTarget() *MemoryTarget {
	return &MemoryTarget{
		classifiers: make(map[string]PlanarClassifier),
		drapes:      make(map[string]TextureDrape),
	}
}

// Name returns "memory".
func (t *MemoryTarget) Name() string {
	return TargetMemory
}

// Format returns the pixel format (RGBA8).
func (t *MemoryTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// CreateGraphicBuilder creates a backend-neutral command recorder.
func (t *MemoryTarget) CreateGraphicBuilder(typ GraphicType, transform linear.Transform, pickID string) *GraphicBuilder {
	return NewGraphicBuilder(typ, transform, pickID)
}

// CreateGraphicBranch flattens the branch into one graphic at location.
func (t *MemoryTarget) CreateGraphicBranch(branch GraphicBranch, location linear.Transform) *Graphic {
	return branch.flatten(GraphicTypeScene, location)
}

// CreateGraphicOwner wraps a graphic in an owner. The memory target has
// no GPU resources to free, but it counts live owners so disposal
// bookkeeping can be verified.
func (t *MemoryTarget) CreateGraphicOwner(g *Graphic) *GraphicOwner {
	t.liveOwners++
	return NewGraphicOwner(g, func(*Graphic) {
		t.liveOwners--
	})
}

// LiveOwners returns the number of owners created by this target and not
// yet disposed.
func (t *MemoryTarget) LiveOwners() int {
	return t.liveOwners
}

// PlanarClassifier returns the retained classifier for id, or nil.
func (t *MemoryTarget) PlanarClassifier(id string) PlanarClassifier {
	return t.classifiers[id]
}

// CreatePlanarClassifier creates and retains a memory classifier.
func (t *MemoryTarget) CreatePlanarClassifier(props ClassifierProps) (PlanarClassifier, error) {
	if t.disposed {
		return nil, ErrTargetDisposed
	}
	c := &memoryClassifier{id: props.ID, modelID: props.ModelID}
	t.classifiers[props.ID] = c
	return c, nil
}

// TextureDrape returns the retained drape for modelID, or nil.
func (t *MemoryTarget) TextureDrape(modelID string) TextureDrape {
	return t.drapes[modelID]
}

// CreateBackgroundMapDrape creates and retains a memory drape.
func (t *MemoryTarget) CreateBackgroundMapDrape(modelID string, draped tile.TreeReference) (TextureDrape, error) {
	if t.disposed {
		return nil, ErrTargetDisposed
	}
	d := &memoryDrape{modelID: modelID}
	t.drapes[modelID] = d
	return d, nil
}

// AdjustPixelSizeForLOD returns the size unchanged; the memory target
// applies no level-of-detail bias.
func (t *MemoryTarget) AdjustPixelSizeForLOD(size float32) float32 {
	return size
}

// ChangeScene stores the frame's scene.
func (t *MemoryTarget) ChangeScene(s *Scene) {
	t.scene = s
}

// ChangeDecorations stores the frame's decoration bundle.
func (t *MemoryTarget) ChangeDecorations(d *Decorations) {
	t.decorations = d
}

// ChangeDynamics stores the dynamics graphics. An empty list clears.
func (t *MemoryTarget) ChangeDynamics(list GraphicList) {
	if len(list) == 0 {
		t.dynamics = nil
		return
	}
	t.dynamics = list
}

// Scene returns the most recently submitted scene.
func (t *MemoryTarget) Scene() *Scene {
	return t.scene
}

// Decorations returns the most recently submitted decoration bundle.
func (t *MemoryTarget) Decorations() *Decorations {
	return t.decorations
}

// Dynamics returns the current dynamics graphics.
func (t *MemoryTarget) Dynamics() GraphicList {
	return t.dynamics
}

// Dispose releases retained classifiers and drapes. Safe to call more
// than once.
func (t *MemoryTarget) Dispose() {
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
	t.scene = nil
	t.decorations = nil
	t.dynamics = nil
}

// Ensure MemoryTarget implements Target.
var _ Target = (*MemoryTarget)(nil)

// memoryClassifier is the memory target's classifier: it produces no mask
// graphics but tracks collection and disposal.
type memoryClassifier struct {
	id       string
	modelID  string
	collects int
	disposed bool
}

func (c *memoryClassifier) ID() string {
	return c.id
}

func (c *memoryClassifier) CollectGraphics(out *Scene, classified, classifier tile.TreeReference) {
	c.collects++
}

func (c *memoryClassifier) Dispose() {
	c.disposed = true
}

// memoryDrape is the memory target's texture drape counterpart to
// memoryClassifier.
type memoryDrape struct {
	modelID  string
	collects int
	disposed bool
}

func (d *memoryDrape) ModelID() string {
	return d.modelID
}

func (d *memoryDrape) CollectGraphics(out *Scene, draped tile.TreeReference) {
	d.collects++
}

func (d *memoryDrape) Dispose() {
	d.disposed = true
}
