// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package wgpu implements the GPU-backed render target on top of the
// wgpu HAL. Classifier masks and drape imagery live in GPU textures; the
// classifier mask shader is compiled from WGSL through naga at target
// creation.
//
// The target registers itself with the render registry via the viewport
// gpu package (blank import). When no GPU is available New returns an
// error and the registry falls back to the memory target.
package wgpu
