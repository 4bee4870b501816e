package viewport

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/viewport/render"
)

// RenderCanvasDecorations composites the frame's canvas decorations into
// a single RGBA overlay of the given size. Decorations draw in list
// order, so earlier entries appear beneath later ones. Returns nil when
// there are no canvas decorations or the size is empty.
func RenderCanvasDecorations(d *render.Decorations, width, height int) *image.RGBA {
	if d == nil || len(d.Canvas) == 0 || width <= 0 || height <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, dec := range d.Canvas {
		dec.DrawDecoration(dst)
	}
	return dst
}

// ScaleRGBA resamples src to the given size. Returns src unchanged when
// the size already matches.
func ScaleRGBA(src *image.RGBA, width, height int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// LabelDecoration is a simple text canvas decoration drawn with the
// built-in 7x13 bitmap face. X, Y position the text baseline in overlay
// pixels.
type LabelDecoration struct {
	Text  string
	X, Y  int
	Color color.Color
}

// NewLabelDecoration creates a white label at the given baseline position.
func NewLabelDecoration(text string, x, y int) *LabelDecoration {
	return &LabelDecoration{Text: text, X: x, Y: y, Color: color.White}
}

// DrawDecoration implements render.CanvasDecoration.
func (l *LabelDecoration) DrawDecoration(dst *image.RGBA) {
	c := l.Color
	if c == nil {
		c = color.White
	}
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(l.X, l.Y),
	}
	drawer.DrawString(l.Text)
}

// FillDecoration fills a rectangle of the overlay with a solid color.
// Useful as a backdrop behind labels.
type FillDecoration struct {
	Rect  image.Rectangle
	Color color.Color
}

// DrawDecoration implements render.CanvasDecoration.
func (f *FillDecoration) DrawDecoration(dst *image.RGBA) {
	if f.Color == nil {
		return
	}
	draw.Draw(dst, f.Rect.Intersect(dst.Bounds()), image.NewUniform(f.Color), image.Point{}, draw.Over)
}
