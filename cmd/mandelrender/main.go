// Command mandelrender renders the Mandelbrot set to an image file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/fractalkit/mandel"
)

func main() {
	var (
		realCenter = flag.Float64("real", -0.75, "real part of the image center")
		imagCenter = flag.Float64("imag", 0, "imaginary part of the image center")
		zoom       = flag.Float64("zoom", 0, "zoom level; every unit halves the covered distance")
		pixels     = flag.Int("pixels", 2160, "vertical resolution in pixels")
		aspect     = flag.String("aspect", "1.5", "aspect ratio, as a decimal or in the format x:y")
		iterations = flag.Int("iterations", 1000, "maximum iterations per sample")
		ssaa       = flag.Int("ssaa", 3, "samples per pixel along one direction (the total is the square of this)")
		grayscale  = flag.Bool("grayscale", false, "render in grayscale")
		hsv        = flag.Bool("hsv", false, "use the HSV palette")
		landmark   = flag.String("landmark", "", "render a named landmark instead of the given center/zoom (home, seahorse, elephant, spiral-minibrot, triple-spiral, dragon, mini-spiral)")
		workers    = flag.Int("workers", 0, "render workers; 0 uses all CPUs")
		quiet      = flag.Bool("quiet", false, "suppress the progress line")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
		output     = flag.String("output", "mandelbrot.png", "output file (.png, .tif or .tiff)")
	)
	flag.Parse()

	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ratio, err := parseAspect(*aspect)
	if err != nil {
		log.Fatalf("invalid aspect ratio %q: %v", *aspect, err)
	}

	cre, cim, linearZoom := *realCenter, *imagCenter, math.Exp2(*zoom)
	if *landmark != "" {
		l, ok := mandel.LandmarkByName(*landmark)
		if !ok {
			log.Fatalf("unknown landmark %q", *landmark)
		}
		cre, cim, linearZoom = l.CenterReal, l.CenterImag, l.Zoom*math.Exp2(*zoom)
	}

	cfg := mandel.Config{
		View: mandel.View{
			CenterReal: cre,
			CenterImag: cim,
			Zoom:       linearZoom,
			Width:      int(math.Round(float64(*pixels) * ratio)),
			Height:     *pixels,
		},
		MaxIterations: *iterations,
		Samples:       *ssaa,
	}
	switch {
	case *grayscale:
		cfg.Palette = mandel.Grayscale
	case *hsv:
		cfg.Palette = mandel.HSV
	}

	opts := []mandel.Option{mandel.WithWorkers(*workers)}
	if !*quiet {
		var rowsDone atomic.Int64
		total := int64(cfg.View.Height)
		opts = append(opts, mandel.WithBandDone(func(y0, y1 int) {
			done := rowsDone.Add(int64(y1 - y0))
			fmt.Fprintf(os.Stderr, "\rrendering: %3d%%", 100*done/total)
		}))
	}

	pm, err := mandel.Render(cfg, opts...)
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}
	if !*quiet {
		fmt.Fprintln(os.Stderr)
	}

	switch strings.ToLower(filepath.Ext(*output)) {
	case ".tif", ".tiff":
		err = pm.SaveTIFF(*output)
	default:
		err = pm.SavePNG(*output)
	}
	if err != nil {
		log.Fatalf("failed to save: %v", err)
	}

	log.Printf("saved %dx%d image to %s", pm.Width(), pm.Height(), *output)
}

// parseAspect accepts either a decimal ("1.5") or a ratio ("3:2").
func parseAspect(s string) (float64, error) {
	if x, y, ok := strings.Cut(s, ":"); ok {
		xv, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, err
		}
		yv, err := strconv.ParseFloat(y, 64)
		if err != nil {
			return 0, err
		}
		if yv == 0 {
			return 0, fmt.Errorf("zero denominator")
		}
		r := xv / yv
		if !(r > 0) {
			return 0, fmt.Errorf("ratio must be positive")
		}
		return r, nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !(r > 0) {
		return 0, fmt.Errorf("ratio must be positive")
	}
	return r, nil
}
