package mandel

import (
	"fmt"
	"time"

	"github.com/fractalkit/mandel/internal/parallel"
)

// Render computes the image described by cfg and returns the populated
// pixel buffer. It blocks until every pixel has been written; there are
// no partial results.
//
// The image rows that need the iteration kernel are split into
// contiguous bands, one closure per band, executed on a worker pool.
// Workers write only into their own disjoint rows (and the rows those
// mirror), so the shared pixmap needs no locking and the output is
// byte-identical for any worker count.
func Render(cfg Config, opts ...Option) (*Pixmap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := cfg.View
	pm := o.pixmap
	if pm == nil {
		pm = NewPixmap(v.Width, v.Height)
	} else if pm.Width() != v.Width || pm.Height() != v.Height {
		return nil, fmt.Errorf("mandel: pixmap size %dx%d does not match view size %dx%d",
			pm.Width(), pm.Height(), v.Width, v.Height)
	}

	sp := &sampler{
		eval:    newEvaluator(cfg.MaxIterations, cfg.EscapeRadius),
		palette: cfg.Palette,
		samples: cfg.Samples,
		step:    v.Step(),
	}

	plan := planMirror(v)
	lo, hi := plan.computedRange(v.Height)
	bands := parallel.SplitRows(lo, hi, o.workers)

	start := time.Now()
	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	work := make([]func(), len(bands))
	for i, b := range bands {
		band := b
		work[i] = func() {
			if o.ctx != nil && o.ctx.Err() != nil {
				return
			}
			renderBand(pm, sp, v, plan, band, o.bandDone)
		}
	}
	pool.ExecuteAll(work)

	if o.ctx != nil {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
	}

	Logger().Debug("render complete",
		"width", v.Width,
		"height", v.Height,
		"iterations", cfg.MaxIterations,
		"samples", cfg.Samples,
		"workers", pool.Workers(),
		"bands", len(bands),
		"mirrored", plan.active,
		"elapsed", time.Since(start))

	return pm, nil
}

// renderBand computes the rows of one band and copies out any rows they
// mirror. The mirrored rows of disjoint bands are themselves disjoint,
// so bands never write the same row twice.
func renderBand(pm *Pixmap, sp *sampler, v View, plan mirrorPlan, band parallel.Band, done func(y0, y1 int)) {
	for y := band.Y0; y < band.Y1; y++ {
		sp.colorRow(pm, v, y)
	}

	// Partner rows of [Y0, Y1) form the contiguous descending range
	// [sum−Y1+1, sum−Y0]; copy the part that lies on the mirrored side.
	mLo, mHi := 0, 0
	if plan.active {
		first := true
		for y := band.Y0; y < band.Y1; y++ {
			p := plan.partner(y)
			if p < 0 || p >= v.Height || plan.computed(p) {
				continue
			}
			pm.CopyRow(p, y)
			if first || p < mLo {
				if first {
					mHi = p + 1
				}
				mLo = p
				first = false
			}
		}
	}

	if done != nil {
		done(band.Y0, band.Y1)
		if mHi > mLo {
			done(mLo, mHi)
		}
	}
}
