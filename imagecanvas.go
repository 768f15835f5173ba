package rectstream

import (
	"image"
	"math"
)

// ImageCanvas is a CPU raster Canvas backed by a Pixmap.
//
// Fills use source-over compositing. Fractional rectangle edges are
// handled with box coverage: a pixel partially overlapped by the
// rectangle is blended with alpha scaled by the overlap area. This
// keeps sub-pixel geometry visible without a full anti-aliasing
// pipeline.
type ImageCanvas struct {
	pixmap *Pixmap
	brush  Brush
	alpha  float64
}

// NewImageCanvas creates an ImageCanvas with a fresh transparent
// pixmap of the given dimensions.
func NewImageCanvas(width, height int) *ImageCanvas {
	return NewImageCanvasFor(NewPixmap(width, height))
}

// NewImageCanvasFor creates an ImageCanvas drawing onto an existing
// pixmap. The pixmap is referenced, not copied.
func NewImageCanvasFor(pm *Pixmap) *ImageCanvas {
	return &ImageCanvas{
		pixmap: pm,
		brush:  Solid(Black),
		alpha:  1.0,
	}
}

// Pixmap returns the canvas's backing pixmap.
func (c *ImageCanvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Snapshot returns the current canvas contents as an RGBA image.
// The returned image is a copy; modifications to it do not affect the canvas.
func (c *ImageCanvas) Snapshot() *image.RGBA {
	return c.pixmap.ToImage()
}

// Clear fills the entire canvas with a color.
func (c *ImageCanvas) Clear(col RGBA) {
	c.pixmap.Clear(col)
}

// SetFillBrush implements Canvas.
func (c *ImageCanvas) SetFillBrush(b Brush) {
	c.brush = b
}

// SetAlpha implements Canvas. The alpha is clamped to [0, 1].
func (c *ImageCanvas) SetAlpha(alpha float64) {
	c.alpha = clamp01(alpha)
}

// FillRect implements Canvas. The rectangle is clipped to the pixmap
// bounds; degenerate rectangles are ignored.
func (c *ImageCanvas) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 || c.alpha <= 0 {
		return
	}
	x1 := x + w
	y1 := y + h

	px0 := int(math.Floor(x))
	py0 := int(math.Floor(y))
	px1 := int(math.Ceil(x1))
	py1 := int(math.Ceil(y1))

	if px0 < 0 {
		px0 = 0
	}
	if py0 < 0 {
		py0 = 0
	}
	if px1 > c.pixmap.Width() {
		px1 = c.pixmap.Width()
	}
	if py1 > c.pixmap.Height() {
		py1 = c.pixmap.Height()
	}

	for py := py0; py < py1; py++ {
		covY := overlap(y, y1, float64(py))
		if covY <= 0 {
			continue
		}
		for px := px0; px < px1; px++ {
			covX := overlap(x, x1, float64(px))
			if covX <= 0 {
				continue
			}
			col := c.brush.ColorAt(float64(px)+0.5, float64(py)+0.5)
			c.blendPixel(px, py, col, c.alpha*covX*covY)
		}
	}
}

// overlap returns the length of the intersection of [lo, hi] with the
// unit interval starting at p.
func overlap(lo, hi, p float64) float64 {
	a := math.Max(lo, p)
	b := math.Min(hi, p+1)
	if b <= a {
		return 0
	}
	return b - a
}

// blendPixel composites a color over the existing pixel with the given
// extra alpha factor (source-over).
func (c *ImageCanvas) blendPixel(x, y int, col RGBA, alpha float64) {
	srcA := col.A * alpha
	if srcA <= 0 {
		return
	}
	if srcA >= 1 {
		c.pixmap.SetPixel(x, y, col.WithAlpha(1))
		return
	}

	existing := c.pixmap.GetPixel(x, y)
	invSrcA := 1.0 - srcA

	outA := srcA + existing.A*invSrcA
	if outA <= 0 {
		return
	}
	outR := (col.R*srcA + existing.R*existing.A*invSrcA) / outA
	outG := (col.G*srcA + existing.G*existing.A*invSrcA) / outA
	outB := (col.B*srcA + existing.B*existing.A*invSrcA) / outA
	c.pixmap.SetPixel(x, y, RGBA{R: outR, G: outG, B: outB, A: outA})
}
