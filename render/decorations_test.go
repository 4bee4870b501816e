package render

import (
	"image"
	"testing"

	"github.com/gogpu/viewport/linear"
)

type namedCanvas struct {
	name string
}

func (namedCanvas) DrawDecoration(dst *image.RGBA) {}

func canvasNames(d *Decorations) []string {
	names := make([]string, len(d.Canvas))
	for i, c := range d.Canvas {
		names[i] = c.(*namedCanvas).name
	}
	return names
}

func TestDecorationsCanvasOrdering(t *testing.T) {
	tests := []struct {
		name    string
		atFront []bool
		want    []string
	}{
		{"front rule", []bool{false, false, true}, []string{"2", "0", "1"}},
		{"all back", []bool{false, false, false}, []string{"0", "1", "2"}},
		{"all front", []bool{true, true, true}, []string{"2", "1", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decorations
			for i, front := range tt.atFront {
				d.AddCanvas(&namedCanvas{name: string(rune('0' + i))}, front)
			}
			got := canvasNames(&d)
			if len(got) != len(tt.want) {
				t.Fatalf("canvas count = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("order = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestDecorationsViewBackgroundLastWriterWins(t *testing.T) {
	mk := func() *Graphic {
		return NewGraphicBuilder(GraphicTypeViewBackground, linear.IdentityTransform(), "").Finish()
	}
	var d Decorations
	first, second := mk(), mk()
	d.SetViewBackground(first)
	d.SetViewBackground(second)
	if d.ViewBackground != second {
		t.Error("ViewBackground should hold the last graphic set")
	}
}

func TestDecorationsList(t *testing.T) {
	var d Decorations
	g := NewGraphicBuilder(GraphicTypeWorldOverlay, linear.IdentityTransform(), "").Finish()

	d.List(GraphicTypeWorldOverlay).Add(g)
	if len(d.WorldOverlay) != 1 {
		t.Errorf("WorldOverlay = %d graphics, want 1", len(d.WorldOverlay))
	}
	if d.List(GraphicTypeViewBackground) != nil {
		t.Error("view background has no list slot")
	}
}

func TestDecorationsIsEmpty(t *testing.T) {
	var d Decorations
	if !d.IsEmpty() {
		t.Error("fresh bundle should be empty")
	}
	d.AddCanvas(&namedCanvas{}, false)
	if d.IsEmpty() {
		t.Error("bundle with canvas decoration should not be empty")
	}
}

func TestHTMLContainerIdempotentAppend(t *testing.T) {
	type el struct{ id int }
	a, b := &el{1}, &el{2}

	var c HTMLContainer
	c.Append(a)
	c.Append(b)
	c.Append(a) // already present
	c.Append(nil)

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if !c.Contains(a) || !c.Contains(b) {
		t.Error("container lost an element")
	}

	c.Remove(a)
	if c.Contains(a) || c.Len() != 1 {
		t.Error("Remove did not delete the element")
	}
	if c.Elements()[0] != HTMLElement(b) {
		t.Error("remaining element order broken")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Error("Clear left elements behind")
	}
}

func TestColorAdjustedForContrast(t *testing.T) {
	tests := []struct {
		name  string
		color ColorDef
		bg    ColorDef
		want  ColorDef
	}{
		{"distinct stays", ColorRed, ColorWhite, ColorRed},
		{"white on white flips", ColorWhite, ColorWhite, ColorBlack},
		{"black on black flips", ColorBlack, ColorBlack, ColorWhite},
		{"near gray on gray", RGB(120, 120, 120), RGB(128, 128, 128), ColorBlack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.AdjustedForContrast(tt.bg); got != tt.want {
				t.Errorf("AdjustedForContrast = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("transparency preserved", func(t *testing.T) {
		c := ColorWhite.WithTransparency(100)
		got := c.AdjustedForContrast(ColorWhite)
		if got.Transparency != 100 {
			t.Errorf("Transparency = %d, want 100", got.Transparency)
		}
	})
}
