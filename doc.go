// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewport implements the interactive viewport rendering and
// decoration pipeline: per-frame scene assembly from tile trees,
// decorator-contributed overlays with a cross-frame decoration cache,
// and the standard grid decoration.
//
// A Viewport owns a render.Target (selected through the render
// registry), a ViewingSpace (camera state), registered decorators, and
// the decoration cache. Each frame the viewport builds a SceneContext
// and a DecorateContext, merges their output into render.Scene and
// render.Decorations bundles, and hands both to the target.
//
// The pipeline is single-threaded per frame: one logical thread of
// control constructs a frame, and tile loading proceeds asynchronously
// through the external tile.Requester boundary.
package viewport
