package viewport

import (
	"github.com/gogpu/viewport/render"
	"github.com/gogpu/viewport/tile"
)

// SceneContext collects scene graphics while the viewport walks its tile
// trees. It tracks tiles the frame wanted but did not have so they can be
// requested after the frame completes.
type SceneContext struct {
	RenderContext

	scene       *render.Scene
	graphicType render.GraphicType

	missing     []tile.Tile
	missingSeen map[string]bool

	childrenLoading bool
}

func newSceneContext(rc RenderContext) *SceneContext {
	return &SceneContext{
		RenderContext: rc,
		scene:         render.NewScene(),
		graphicType:   render.GraphicTypeScene,
		missingSeen:   make(map[string]bool),
	}
}

// Scene returns the scene assembled so far.
func (sc *SceneContext) Scene() *render.Scene {
	return sc.scene
}

// GraphicType returns the type currently assigned to output graphics.
func (sc *SceneContext) GraphicType() render.GraphicType {
	return sc.graphicType
}

// WithGraphicType runs fn with output routed as typ, then restores the
// previous type. Used when a tree contributes overlay or background
// graphics mid-walk.
func (sc *SceneContext) WithGraphicType(typ render.GraphicType, fn func()) {
	prev := sc.graphicType
	sc.graphicType = typ
	defer func() { sc.graphicType = prev }()
	fn()
}

// OutputGraphic adds a graphic to the scene bucket selected by the
// current graphic type. Scene and world decoration graphics render with
// the scene; view background renders behind it; overlays render on top.
func (sc *SceneContext) OutputGraphic(g *render.Graphic) {
	if g == nil || g.IsEmpty() {
		return
	}
	switch sc.graphicType {
	case render.GraphicTypeViewBackground:
		sc.scene.Background.Add(g)
	case render.GraphicTypeWorldOverlay, render.GraphicTypeViewOverlay:
		sc.scene.Overlay.Add(g)
	default:
		sc.scene.Foreground.Add(g)
	}
}

// InsertMissingTile tracks a tile that was wanted but is not resident.
// Tiles in a terminal load state are ignored, and each content ID is
// tracked once per frame.
func (sc *SceneContext) InsertMissingTile(t tile.Tile) {
	if t == nil || !t.LoadStatus().IsMissing() {
		return
	}
	id := t.ContentID()
	if sc.missingSeen[id] {
		return
	}
	sc.missingSeen[id] = true
	sc.missing = append(sc.missing, t)
}

// MarkChildrenLoading notes that some tree content was skipped because
// its children are still loading. The frame is complete but not final.
func (sc *SceneContext) MarkChildrenLoading() {
	sc.childrenLoading = true
}

// HasMissingTiles reports whether the frame wanted tiles it did not have
// or skipped still-loading children.
func (sc *SceneContext) HasMissingTiles() bool {
	return len(sc.missing) > 0 || sc.childrenLoading
}

// MissingTiles returns the tracked missing tiles in insertion order.
func (sc *SceneContext) MissingTiles() []tile.Tile {
	return sc.missing
}

// RequestMissingTiles schedules loads for the tracked missing tiles. The
// tracked set is not cleared; completion is observed on later frames
// through the tiles' load status.
func (sc *SceneContext) RequestMissingTiles() {
	if len(sc.missing) == 0 || sc.vp.Requester == nil {
		return
	}
	sc.vp.Requester.RequestTiles(sc.vp, sc.missing)
}

// AddPlanarClassifier attaches a planar classifier to the scene, reusing
// the target's retained classifier when one exists for the ID. The first
// call per model wins; later calls for the same model are no-ops.
func (sc *SceneContext) AddPlanarClassifier(props render.ClassifierProps, classified, classifier tile.TreeReference) error {
	if _, ok := sc.scene.Classifiers[props.ModelID]; ok {
		return nil
	}
	c := sc.vp.target.PlanarClassifier(props.ID)
	if c == nil {
		created, err := sc.vp.target.CreatePlanarClassifier(props)
		if err != nil {
			slogger().Warn("viewport: planar classifier unavailable", "id", props.ID, "error", err)
			return err
		}
		c = created
	} else {
		slogger().Debug("viewport: classifier reused", "id", props.ID)
	}
	c.CollectGraphics(sc.scene, classified, classifier)
	sc.scene.Classifiers[props.ModelID] = c
	return nil
}

// AddBackgroundDrapedModel attaches a background map drape to the scene,
// reusing the target's retained drape when one exists for the model.
func (sc *SceneContext) AddBackgroundDrapedModel(modelID string, draped tile.TreeReference) error {
	if _, ok := sc.scene.Drapes[modelID]; ok {
		return nil
	}
	d := sc.vp.target.TextureDrape(modelID)
	if d == nil {
		created, err := sc.vp.target.CreateBackgroundMapDrape(modelID, draped)
		if err != nil {
			slogger().Warn("viewport: background drape unavailable", "model", modelID, "error", err)
			return err
		}
		d = created
	} else {
		slogger().Debug("viewport: drape reused", "model", modelID)
	}
	d.CollectGraphics(sc.scene, draped)
	sc.scene.Drapes[modelID] = d
	return nil
}

// SetVolumeClassifier sets the scene's volume classifier. Last writer
// wins.
func (sc *SceneContext) SetVolumeClassifier(v *render.VolumeClassifier) {
	sc.scene.Volume = v
}
