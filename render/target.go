// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/linear"
	"github.com/gogpu/viewport/tile"
)

// Common target errors.
var (
	// ErrTargetNotAvailable is returned when no target can be produced.
	ErrTargetNotAvailable = errors.New("render: target not available")

	// ErrTargetDisposed is returned for operations on a disposed target.
	ErrTargetDisposed = errors.New("render: target disposed")

	// ErrUnsupported is returned when a target cannot produce a requested
	// resource. Callers must treat it as "feature unavailable this
	// frame", not a hard failure.
	ErrUnsupported = errors.New("render: unsupported by target")
)

// Target is the GPU-facing layer of a viewport. It creates graphics
// resources, owns classifier and drape resources across frames, and
// consumes the per-frame Scene, Decorations, and dynamics bundles.
//
// All methods are synchronous; resource creation returns opaque handles.
// Targets are registered by name (see Register) and selected through
// Default or Get.
type Target interface {
	// Name returns the target identifier (e.g. "memory", "wgpu").
	Name() string

	// Format returns the pixel format the target renders to.
	Format() gputypes.TextureFormat

	// CreateGraphicBuilder creates a builder for a graphic of the given
	// type scoped to a local-to-world transform. pickID may be empty.
	CreateGraphicBuilder(typ GraphicType, transform linear.Transform, pickID string) *GraphicBuilder

	// CreateGraphicBranch realizes a branch as a single graphic at the
	// given location.
	CreateGraphicBranch(branch GraphicBranch, location linear.Transform) *Graphic

	// CreateGraphicOwner wraps a graphic in an owner whose Dispose
	// releases the target resources backing it.
	CreateGraphicOwner(g *Graphic) *GraphicOwner

	// PlanarClassifier returns the classifier retained from a prior
	// frame, or nil.
	PlanarClassifier(id string) PlanarClassifier

	// CreatePlanarClassifier creates and retains a planar classifier.
	// Returns ErrUnsupported when the target cannot produce one.
	CreatePlanarClassifier(props ClassifierProps) (PlanarClassifier, error)

	// TextureDrape returns the drape retained from a prior frame, or nil.
	TextureDrape(modelID string) TextureDrape

	// CreateBackgroundMapDrape creates and retains a texture drape for
	// the draped tree's owning model. Returns ErrUnsupported when the
	// target cannot produce one.
	CreateBackgroundMapDrape(modelID string, draped tile.TreeReference) (TextureDrape, error)

	// AdjustPixelSizeForLOD lets the target bias level-of-detail
	// decisions by scaling a computed pixel size.
	AdjustPixelSizeForLOD(size float32) float32

	// ChangeScene hands the frame's scene to the target.
	ChangeScene(s *Scene)

	// ChangeDecorations hands the frame's decoration bundle to the
	// target.
	ChangeDecorations(d *Decorations)

	// ChangeDynamics hands the tool dynamics graphics to the target. An
	// empty list clears the dynamics overlay.
	ChangeDynamics(list GraphicList)

	// Dispose releases all target resources, including retained
	// classifiers and drapes.
	Dispose()
}
