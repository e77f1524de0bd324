package mandel

import (
	"context"
	"fmt"
	"math"
)

// DefaultEscapeRadius is the escape radius used when Config.EscapeRadius
// is zero. The classical bailout radius 2 is sufficient for membership,
// but the smooth coloring formula behaves better when the orbit is
// allowed to run further out, so the default is 6.
const DefaultEscapeRadius = 6.0

// Config describes one render. It is constructed once from validated
// input and never mutated after Render begins; the render output is a
// pure function of this value.
type Config struct {
	// View is the rendered window of the complex plane.
	View View

	// MaxIterations is the iteration budget per sample. Points that
	// stay within the escape radius this long count as set members.
	MaxIterations int

	// Samples is the supersampling factor along one axis: each pixel
	// near the set boundary is sampled Samples² times. 1 disables
	// supersampling.
	Samples int

	// EscapeRadius is the orbit modulus beyond which a point counts as
	// escaped. Must be greater than 2 for the smoothing formula to be
	// well defined; 0 selects DefaultEscapeRadius.
	EscapeRadius float64

	// Palette maps escape speeds to colors. nil selects Classic.
	Palette Palette
}

// Validate checks the configuration before any pixel work starts. A
// failed validation means Render performs no partial rendering.
func (c Config) Validate() error {
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return fmt.Errorf("mandel: invalid dimensions: width=%d, height=%d (both must be > 0)", c.View.Width, c.View.Height)
	}
	if !(c.View.Zoom > 0) {
		return fmt.Errorf("mandel: zoom must be positive, got %v", c.View.Zoom)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("mandel: maximum iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.Samples < 1 {
		return fmt.Errorf("mandel: supersampling factor must be at least 1, got %d", c.Samples)
	}
	if c.EscapeRadius != 0 && !(c.EscapeRadius > 2) {
		return fmt.Errorf("mandel: escape radius must be greater than 2, got %v", c.EscapeRadius)
	}
	if math.IsNaN(c.View.CenterReal) || math.IsNaN(c.View.CenterImag) {
		return fmt.Errorf("mandel: view center must not be NaN")
	}
	return nil
}

// withDefaults returns a copy with zero-valued optional fields filled in.
func (c Config) withDefaults() Config {
	if c.EscapeRadius == 0 {
		c.EscapeRadius = DefaultEscapeRadius
	}
	if c.Palette == nil {
		c.Palette = Classic
	}
	return c
}

// Option configures a single call to Render.
//
// Example:
//
//	// Default: all CPUs, fresh pixmap, run to completion.
//	pm, err := mandel.Render(cfg)
//
//	// Single worker into a caller-owned buffer.
//	pm := mandel.NewPixmap(cfg.View.Width, cfg.View.Height)
//	_, err := mandel.Render(cfg, mandel.WithWorkers(1), mandel.WithPixmap(pm))
type Option func(*renderOptions)

// renderOptions holds optional per-render configuration.
type renderOptions struct {
	workers  int
	pixmap   *Pixmap
	ctx      context.Context
	bandDone func(y0, y1 int)
}

// WithWorkers sets the number of render workers. Values <= 0 select
// GOMAXPROCS. The worker count never affects the output, only how the
// row bands are spread across CPUs.
func WithWorkers(n int) Option {
	return func(o *renderOptions) {
		o.workers = n
	}
}

// WithPixmap renders into a caller-owned pixmap instead of allocating a
// fresh one. The pixmap dimensions must match the view dimensions.
// Useful together with WithBandDone to read finished rows while the
// render is still running.
func WithPixmap(pm *Pixmap) Option {
	return func(o *renderOptions) {
		o.pixmap = pm
	}
}

// WithContext layers coarse-grained cancellation onto the render:
// workers check the context once per row band and skip remaining bands
// once it is done, and Render returns the context's error. There is no
// finer-grained cancellation; a band in flight always completes.
func WithContext(ctx context.Context) Option {
	return func(o *renderOptions) {
		o.ctx = ctx
	}
}

// WithBandDone registers a hook invoked after a contiguous row range
// [y0, y1) has been fully written, including rows filled by mirroring.
// Those rows are safe to read from the render's pixmap at that point.
//
// The hook is called concurrently from multiple workers and must be
// safe for concurrent use. Bands complete in no particular order.
func WithBandDone(fn func(y0, y1 int)) Option {
	return func(o *renderOptions) {
		o.bandDone = fn
	}
}
