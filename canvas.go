package rectstream

// Canvas is the drawing-surface abstraction the Renderer draws
// against. It is deliberately minimal: the Renderer performs no
// strokes, transforms, clips, or state save/restore, so a Canvas only
// needs fill-style, opacity, and axis-aligned rectangle fills.
//
// Implementations in this package:
//   - ImageCanvas: CPU raster target backed by a Pixmap
//   - Recorder: captures fills as typed commands for replay or export
//
// Canvases are NOT thread-safe. Each canvas should be used from a
// single goroutine, or external synchronization must be used.
type Canvas interface {
	// SetFillBrush sets the brush used by subsequent FillRect calls.
	SetFillBrush(b Brush)

	// SetAlpha sets the scalar opacity, in [0, 1], applied on top of
	// the brush color by subsequent FillRect calls.
	SetAlpha(alpha float64)

	// FillRect fills an axis-aligned rectangle given its left edge,
	// top edge, width, and height in the canvas coordinate space.
	FillRect(x, y, w, h float64)
}
