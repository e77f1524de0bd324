// Package mandel renders raster images of the Mandelbrot set.
//
// # Overview
//
// mandel is a pure Go escape-time rendering engine. For every pixel it
// decides whether the corresponding point of the complex plane escapes a
// bounded iteration of z → z² + c and turns the result into a color. The
// engine combines closed-form interior shortcuts, a minimal-multiplication
// iteration kernel, smooth (continuous) escape values, adaptive
// supersampling, real-axis mirroring, and data-parallel row scheduling.
//
// # Quick Start
//
//	import "github.com/fractalkit/mandel"
//
//	cfg := mandel.Config{
//		View:          mandel.View{CenterReal: -0.75, Zoom: 1, Width: 1920, Height: 1080},
//		MaxIterations: 1000,
//		Samples:       3,
//	}
//
//	pm, err := mandel.Render(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	pm.SavePNG("mandelbrot.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Config, View, Render, Pixmap, Palette
//   - Kernel: escape-time evaluation with cardioid/bulb shortcuts
//   - Internal: parallel (worker pool, row-band partitioning)
//   - Collaborators: cmd/mandelrender (CLI), cmd/mandelserve (websocket)
//
// # Coordinate System
//
// Image coordinates follow the usual raster convention, plane coordinates
// the mathematical one:
//   - Pixel (0,0) at top-left, x increases right, y increases down
//   - The real part increases with x, the imaginary part decreases with y
//   - The center pixel maps to the view's center coordinate
//
// # Determinism
//
// A render is a pure function of its Config: the output pixmap is
// byte-for-byte identical regardless of the number of workers.
package mandel
