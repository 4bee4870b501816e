package render

// ColorDef is an RGB color with a transparency byte (0 opaque, 255 fully
// transparent). Transparency rather than alpha matches the symbology
// conventions of the viewport core, where fade ramps raise transparency
// toward 255.
type ColorDef struct {
	R, G, B      uint8
	Transparency uint8
}

// Common colors.
var (
	ColorBlack = ColorDef{0, 0, 0, 0}
	ColorWhite = ColorDef{255, 255, 255, 0}
	ColorRed   = ColorDef{255, 0, 0, 0}
)

// RGB builds an opaque color.
func RGB(r, g, b uint8) ColorDef {
	return ColorDef{R: r, G: g, B: b}
}

// WithTransparency returns the color with its transparency replaced.
func (c ColorDef) WithTransparency(t uint8) ColorDef {
	c.Transparency = t
	return c
}

// IsOpaque reports whether the color has zero transparency.
func (c ColorDef) IsOpaque() bool {
	return c.Transparency == 0
}

// luminance is the perceived brightness on a 0..255 scale (BT.601 weights).
func (c ColorDef) luminance() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// AdjustedForContrast returns a color guaranteed to read against the given
// background. When the color's brightness is too close to the background's,
// it is replaced by black or white, whichever contrasts the background
// more; the transparency is preserved.
func (c ColorDef) AdjustedForContrast(bg ColorDef) ColorDef {
	const minContrast = 48

	lc, lb := c.luminance(), bg.luminance()
	d := lc - lb
	if d < 0 {
		d = -d
	}
	if d >= minContrast {
		return c
	}
	if lb < 128 {
		return ColorWhite.WithTransparency(c.Transparency)
	}
	return ColorBlack.WithTransparency(c.Transparency)
}
