package rectstream

import "math"

// Default merge parameters, in the same coordinate space as the input
// x/width values (typically device pixels).
const (
	// DefaultMinRectSize is the width below which a rectangle becomes
	// a merge candidate instead of an individually drawn shape.
	DefaultMinRectSize = 1.0

	// DefaultMaxMergeDist is the maximum distance between a merge
	// run's start and a new candidate's right edge before the run is
	// flushed. Bounds both run growth and representative-color error.
	DefaultMaxMergeDist = 16.0
)

// Renderer streams rectangle draw requests onto a Canvas, fusing
// consecutive sub-pixel-width rectangles into single fill commands.
//
// Rectangles are fed left to right with FillRect; x must be
// non-decreasing between flushes. Rows are horizontal bands set with
// SetRow; all fills use the current row's y and height. Flush commits
// any pending merge run and must be called after the last FillRect of
// a drawing pass.
//
// A Renderer is reusable across many drawing passes. It is not safe
// for concurrent use.
type Renderer struct {
	canvas  Canvas
	palette Palette

	// Visible horizontal clip bounds. Fills are clipped to
	// [xMin, xMax]; degenerate results are culled.
	xMin, xMax float64

	minRectSize  float64
	maxMergeDist float64

	// Current row.
	y, h float64

	// Pending merge run. Valid only while merging is true.
	merging       bool
	mergeStartX   float64
	mergeCurRight float64
	mergedIndex   int
	mergedAlpha   float64
}

// NewRenderer creates a Renderer drawing onto canvas through the given
// palette, clipped to [xMin, xMax]. The merge thresholds default to
// DefaultMinRectSize and DefaultMaxMergeDist; override them with
// WithMinRectSize and WithMaxMergeDist.
//
// The canvas and palette are referenced, not copied, and must outlive
// the Renderer.
func NewRenderer(canvas Canvas, palette Palette, xMin, xMax float64, opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{
		canvas:       canvas,
		palette:      palette,
		xMin:         xMin,
		xMax:         xMax,
		minRectSize:  cfg.minRectSize,
		maxMergeDist: cfg.maxMergeDist,
	}
}

// SetRow sets the vertical position and height applied to all
// subsequent fills. If the row is unchanged this is a no-op; otherwise
// any pending merge run is committed at the old row before the row
// state is updated. A run's geometry and color are only correct for
// the row it was accumulated on.
func (r *Renderer) SetRow(y, h float64) {
	if y == r.y && h == r.h {
		return
	}
	r.Flush()
	r.y = y
	r.h = h
}

// FillRect requests a rectangle at the current row spanning
// [x, x+w] horizontally, filled with the palette brush at colorIndex
// and the given alpha in [0, 1].
//
// Rectangles narrower than the minimum rect size are accumulated into
// a merge run instead of being drawn; the run is committed as one fill
// by Flush, a row change, a wide rectangle, or when a candidate's
// right edge falls farther than the merge distance from the run's
// start. Wide rectangles are clipped and drawn immediately.
//
// Successive calls since the last flush must have non-decreasing x.
// Violating the ordering produces geometrically wrong output but never
// corrupts renderer state.
func (r *Renderer) FillRect(x, w float64, colorIndex int, alpha float64) {
	right := x + w

	if w < r.minRectSize {
		// Distance is measured from the run's start, not its current
		// right edge: a run never grows wider than maxMergeDist.
		if r.merging && right-r.mergeStartX > r.maxMergeDist {
			r.Flush()
		}
		if !r.merging {
			r.merging = true
			r.mergeStartX = x
			r.mergeCurRight = right
			r.mergedIndex = colorIndex
			r.mergedAlpha = alpha
			return
		}
		r.mergeCurRight = right
		// Representative color: higher alpha wins, ties broken by
		// higher color index. A fixed heuristic, not a color average.
		if alpha > r.mergedAlpha || (alpha == r.mergedAlpha && colorIndex > r.mergedIndex) {
			r.mergedAlpha = alpha
			r.mergedIndex = colorIndex
		}
		return
	}

	// Wide rectangle: commit any pending run first so fills reach the
	// canvas in left-to-right order.
	if r.merging {
		r.Flush()
	}
	r.fill(x, right, colorIndex, alpha)
}

// Flush commits any pending merge run as a single fill command at the
// current row and clears it. When no run is pending, Flush is a no-op.
// Call it after the last FillRect of a drawing pass and before reading
// back the canvas.
func (r *Renderer) Flush() {
	if !r.merging {
		return
	}
	r.merging = false
	r.fill(r.mergeStartX, r.mergeCurRight, r.mergedIndex, r.mergedAlpha)
}

// fill clips [left, right] to the visible bounds and issues one fill
// command. Empty or inverted clipped intervals are culled silently;
// off-screen rectangles are an expected, frequent case.
func (r *Renderer) fill(left, right float64, colorIndex int, alpha float64) {
	x0 := math.Max(left, r.xMin)
	x1 := math.Min(right, r.xMax)
	if x0 >= x1 {
		return
	}
	r.canvas.SetFillBrush(r.palette.Brush(colorIndex))
	r.canvas.SetAlpha(alpha)
	r.canvas.FillRect(x0, r.y, x1-x0, r.h)
}
