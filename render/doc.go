// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the rendering contracts of the viewport core:
// graphics and their builders, the per-frame Scene and Decorations bundles,
// planar classifier and texture drape resources, and the Target interface
// every rendering backend implements.
//
// A Target is selected through the registry (see Register and Default).
// MemoryTarget is the CPU reference implementation and is always
// registered; GPU-backed targets register themselves from their own
// packages.
package render
