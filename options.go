package rectstream

// Option configures a Renderer during creation.
//
// Example:
//
//	r := rectstream.NewRenderer(canvas, palette, 0, 1024,
//		rectstream.WithMinRectSize(1.5),
//		rectstream.WithMaxMergeDist(8))
type Option func(*rendererConfig)

// rendererConfig holds optional configuration for Renderer creation.
type rendererConfig struct {
	minRectSize  float64
	maxMergeDist float64
}

// defaultConfig returns the default renderer options.
func defaultConfig() rendererConfig {
	return rendererConfig{
		minRectSize:  DefaultMinRectSize,
		maxMergeDist: DefaultMaxMergeDist,
	}
}

// WithMinRectSize sets the width threshold below which rectangles are
// merged rather than drawn individually.
func WithMinRectSize(size float64) Option {
	return func(c *rendererConfig) {
		c.minRectSize = size
	}
}

// WithMaxMergeDist sets the maximum distance between a merge run's
// start and a candidate's right edge before the run is flushed.
func WithMaxMergeDist(dist float64) Option {
	return func(c *rendererConfig) {
		c.maxMergeDist = dist
	}
}
