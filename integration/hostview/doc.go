// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package hostview presents a viewport's canvas decorations inside a
// gogpu host window.
//
// The viewport composes its canvas decorations into an RGBA overlay;
// hostview uploads that overlay as a host texture and draws it over the
// window content through gpucontext.TextureDrawer. Use a Host to reuse
// and correctly retire textures across frames:
//
//	host := hostview.NewHost(vp)
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = vp.RenderFrame(populate)
//	    _ = host.Present(dc.AsTextureDrawer())
//	})
package hostview
