// Command rectstreamdemo renders a synthetic flame chart through the
// merging rectangle renderer and saves it as a PNG.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/gogpu/rectstream"
)

func main() {
	var (
		width  = flag.Int("width", 1280, "image width")
		height = flag.Int("height", 320, "image height")
		depth  = flag.Int("depth", 16, "number of flame-chart rows")
		spans  = flag.Int("spans", 20000, "spans per row")
		seed   = flag.Int64("seed", 1, "random seed for the synthetic trace")
		theme  = flag.String("theme", "", "optional TOML theme file for the palette")
		thumb  = flag.String("thumb", "", "optional output path for a half-size thumbnail")
		output = flag.String("output", "flamechart.png", "output file")
	)
	flag.Parse()

	palette := rectstream.RampPalette(32, 0.65, 0.6)
	if *theme != "" {
		p, err := rectstream.LoadTheme(*theme)
		if err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
		palette = p
	}

	canvas := rectstream.NewImageCanvas(*width, *height)
	canvas.Clear(rectstream.RGB(0.08, 0.08, 0.1))

	r := rectstream.NewRenderer(canvas, palette, 0, float64(*width))
	drawTrace(r, rand.New(rand.NewSource(*seed)), palette.Len(), *width, *height, *depth, *spans)

	if err := canvas.Pixmap().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Flame chart saved to %s (%dx%d)", *output, *width, *height)

	if *thumb != "" {
		small := canvas.Pixmap().Scaled(*width/2, *height/2)
		if err := small.SavePNG(*thumb); err != nil {
			log.Fatalf("Failed to save thumbnail: %v", err)
		}
		log.Printf("Thumbnail saved to %s (%dx%d)", *thumb, *width/2, *height/2)
	}
}

// drawTrace feeds one row per depth level to the renderer. Span widths
// follow a heavy-tailed distribution so most are sub-pixel at this
// zoom, exercising the merge path.
func drawTrace(r *rectstream.Renderer, rng *rand.Rand, colors, width, height, depth, spans int) {
	rowH := float64(height) / float64(depth)

	for d := 0; d < depth; d++ {
		r.SetRow(float64(d)*rowH, rowH-1)

		x := 0.0
		for i := 0; i < spans && x < float64(width); i++ {
			w := rng.Float64() * rng.Float64() * 4 // mostly < 1px
			if rng.Intn(200) == 0 {
				w = 5 + rng.Float64()*40 // occasional wide frame
			}
			r.FillRect(x, w, rng.Intn(colors), 0.6+0.4*rng.Float64())
			x += w + rng.Float64()*0.05
		}
	}
	r.Flush()
}
