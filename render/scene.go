package render

import "github.com/gogpu/viewport/tile"

// VolumeClassifier identifies the single active volume classification for
// a frame.
type VolumeClassifier struct {
	ClassifierID string
	ModelID      string
}

// Scene is one frame's drawable output: three graphic buckets plus the
// classifier and drape resources active this frame. A Scene is owned by
// exactly one SceneContext for the frame's lifetime; graphics are
// appended, never removed, within a frame.
type Scene struct {
	Foreground GraphicList
	Background GraphicList
	Overlay    GraphicList

	// Classifiers maps classified model id to the planar classifier
	// collected for it this frame.
	Classifiers map[string]PlanarClassifier

	// Drapes maps draped model id to the texture drape collected for it
	// this frame.
	Drapes map[string]TextureDrape

	// Volume is the active volume classifier, nil when none.
	Volume *VolumeClassifier
}

// NewScene returns an empty scene with initialized resource maps.
func NewScene() *Scene {
	return &Scene{
		Classifiers: make(map[string]PlanarClassifier),
		Drapes:      make(map[string]TextureDrape),
	}
}

// IsEmpty reports whether no graphics were collected in any bucket.
func (s *Scene) IsEmpty() bool {
	return len(s.Foreground) == 0 && len(s.Background) == 0 && len(s.Overlay) == 0
}

// ClassifierProps describes a planar classifier to create.
type ClassifierProps struct {
	// ID identifies the classifier within its target.
	ID string

	// ModelID is the classified model.
	ModelID string

	// ExpandDistance widens the classification region, in world units.
	ExpandDistance float32
}

// PlanarClassifier is a GPU-resident mask restricting which
// classified-model geometry is drawn based on overlap with a classifier
// tile tree. Instances are created by a Target and may be reused across
// frames; CollectGraphics runs once per frame per classified/classifier
// tree pair.
type PlanarClassifier interface {
	// ID returns the classifier identity within its target.
	ID() string

	// CollectGraphics gathers this frame's mask graphics for the
	// classified/classifier tree pair into the scene.
	CollectGraphics(out *Scene, classified, classifier tile.TreeReference)

	// Dispose releases the classifier's backing resources.
	Dispose()
}

// TextureDrape projects one model's imagery onto another model's surface,
// such as a background map onto terrain. Lifecycle mirrors
// PlanarClassifier.
type TextureDrape interface {
	// ModelID returns the draped model's identity.
	ModelID() string

	// CollectGraphics gathers this frame's drape graphics into the scene.
	CollectGraphics(out *Scene, draped tile.TreeReference)

	// Dispose releases the drape's backing resources.
	Dispose()
}
