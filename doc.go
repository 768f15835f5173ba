// Package rectstream renders dense horizontal sequences of colored
// rectangles, merging sub-pixel-width rectangles into single fill
// operations.
//
// # Overview
//
// rectstream targets timeline and flame-chart visualizations where
// thousands of thin rectangles are drawn left-to-right at the same
// vertical position and height. Issuing one fill call per rectangle
// makes the underlying rasterizer the bottleneck long before pixel
// throughput does. The Renderer fuses consecutive rectangles narrower
// than a configurable pixel threshold into a single fill command,
// picking one representative color per merged run.
//
// # Quick Start
//
//	import "github.com/gogpu/rectstream"
//
//	canvas := rectstream.NewImageCanvas(1024, 256)
//	palette := rectstream.RampPalette(16, 0.7, 0.55)
//
//	r := rectstream.NewRenderer(canvas, palette, 0, 1024)
//	r.SetRow(32, 14)
//	for _, ev := range events { // x non-decreasing
//		r.FillRect(ev.X, ev.W, ev.ColorIndex, ev.Alpha)
//	}
//	r.Flush()
//
//	canvas.Pixmap().SavePNG("track.png")
//
// # Architecture
//
// The library is organized around three pieces:
//   - Renderer: the streaming merge/cull state machine
//   - Canvas: the drawing-surface abstraction (ImageCanvas for raster
//     output, Recorder for command capture and replay)
//   - Palette: an ordered sequence of fill brushes indexed by small
//     integers
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// A Renderer holds mutable row and merge-run state and is not safe for
// concurrent use. Use one Renderer per goroutine, or serialize calls
// externally.
package rectstream

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
