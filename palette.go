package rectstream

import (
	"fmt"

	"golang.org/x/image/colornames"
)

// Palette is an ordered sequence of fill brushes indexed by small
// non-negative integers. The Renderer references the palette it was
// constructed with; it never copies or mutates it. Callers must not
// modify a palette while a Renderer using it is active.
type Palette []Brush

// Len returns the number of brushes in the palette.
func (p Palette) Len() int {
	return len(p)
}

// Brush returns the brush at the given color index.
// The index must be in [0, Len()).
func (p Palette) Brush(i int) Brush {
	return p[i]
}

// Color returns the color of the brush at the given index.
func (p Palette) Color(i int) RGBA {
	return p[i].ColorAt(0, 0)
}

// PaletteFromColors builds a palette of solid brushes from colors.
func PaletteFromColors(colors ...RGBA) Palette {
	p := make(Palette, len(colors))
	for i, c := range colors {
		p[i] = Solid(c)
	}
	return p
}

// PaletteFromHex builds a palette of solid brushes from hex color
// strings. Invalid strings yield opaque black (see Hex); use
// Theme.Palette for validated parsing.
func PaletteFromHex(hexes ...string) Palette {
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		p[i] = SolidHex(h)
	}
	return p
}

// PaletteFromNames builds a palette from SVG 1.1 color names
// ("steelblue", "tomato", ...). Returns an error naming the first
// unknown color.
func PaletteFromNames(names ...string) (Palette, error) {
	p := make(Palette, len(names))
	for i, name := range names {
		c, ok := colornames.Map[name]
		if !ok {
			return nil, fmt.Errorf("rectstream: unknown color name %q", name)
		}
		p[i] = Solid(FromColor(c))
	}
	return p, nil
}

// RampPalette builds an n-color palette sweeping the full hue circle at
// the given saturation and lightness. Useful for coloring flame-chart
// frames by depth or by hashed name.
func RampPalette(n int, s, l float64) Palette {
	if n <= 0 {
		return nil
	}
	p := make(Palette, n)
	for i := 0; i < n; i++ {
		h := 360 * float64(i) / float64(n)
		p[i] = Solid(HSL(h, s, l))
	}
	return p
}
