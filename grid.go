package viewport

import (
	"github.com/gogpu/viewport/grid"
	"github.com/gogpu/viewport/linear"
	"github.com/gogpu/viewport/render"
)

// edgeOnTolerance matches the grid layouter's skew tolerance for skipping
// edge-on orthographic grids.
const edgeOnTolerance = 0.005

// DrawStandardGrid draws the planar reference grid as a world decoration.
// The grid plane is clipped against the view frustum, a blanking shape is
// filled first so the lines read against a flat background, and the whole
// graphic is offset slightly toward the eye to avoid depth-fighting with
// geometry lying on the plane.
//
// The blanking shape is drawn red when the plane is viewed from behind.
// The decoration goes through AddDecoration, so it is cached like any
// other decorator output.
func (dc *DecorateContext) DrawStandardGrid(params grid.Params) {
	normal := params.Rotation.Row(2)

	var eyeDir linear.Vec3
	if dc.IsPerspective() {
		eyeDir = dc.EyePoint().Sub(params.Origin).Normalized()
	} else {
		eyeDir = dc.ViewForward().Negated()
		d := eyeDir.Dot(normal)
		if d > -edgeOnTolerance && d < edgeOnTolerance {
			return
		}
	}

	plane := linear.PlaneFromNormalPoint(normal, params.Origin)
	boundary := dc.Frustum().IntersectPlane(plane)
	if len(boundary) < 4 {
		return
	}

	layout := grid.Compute(dc, params, boundary)

	lineColor := render.ColorWhite.AdjustedForContrast(dc.vp.BackgroundColor)
	planeColor := lineColor.WithTransparency(grid.PlaneTransparency)
	if eyeDir.Dot(normal) < 0 {
		planeColor = render.ColorRed.WithTransparency(grid.PlaneTransparency)
	}

	pixel := dc.PixelSizeAt(params.Origin)
	offset := dc.ViewForward().Scale(-pixel)
	b := dc.vp.target.CreateGraphicBuilder(
		render.GraphicTypeWorldDecoration,
		linear.TranslationTransform(offset),
		"",
	)

	b.SetSymbology(planeColor, planeColor, 1)
	b.AddShape(boundary)

	// A nil layout still gets the blanking plane: line spacing below the
	// separation threshold suppresses lines, not the plane.
	if layout != nil {
		for _, batch := range layout.Batches {
			c := lineColor.WithTransparency(batch.Transparency)
			b.SetSymbology(c, c, 1)
			for _, seg := range batch.Lines {
				b.AddLineString(seg[:])
			}
		}
	}

	dc.AddDecoration(render.GraphicTypeWorldDecoration, b.Finish())
}
