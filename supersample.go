package mandel

// ssaaCutoff bounds the adaptive supersampling region. Sub-sampling is
// abandoned as soon as a sample escapes faster than this: such pixels
// are far outside the set where the color field is visually uniform, so
// one sample is enough. Near the boundary escape speeds are low, the
// cutoff never fires, and the full sample grid runs. At very low
// resolutions the skipped region can clip into the set, but at typical
// image sizes it does not.
const ssaaCutoff = 0.963

// sampler combines the escape-time evaluator with a palette and the
// supersampling policy. It is immutable during a render and shared by
// all workers.
type sampler struct {
	eval    evaluator
	palette Palette
	samples int     // sub-samples along one axis; 1 disables supersampling
	step    float64 // plane distance between adjacent pixel centers
}

// pixelColor returns the color of the pixel centered at (cre, cim).
//
// Sub-samples are placed on a regular samples×samples grid inside the
// pixel's plane-space cell and visited center-out, so that if the grid
// is abandoned early the samples taken are those closest to the pixel
// center. Colors, not escape values, are averaged — in linear RGB — so a
// pixel mixing interior and exterior samples blends correctly instead of
// producing a smoothing artifact.
func (sp *sampler) pixelColor(cre, cim float64) LinearRGB {
	n := sp.samples
	nf := float64(n)
	total := n * n

	var sum LinearRGB
	taken := 0

	// Start the visit order in the middle of the grid and wrap around.
	start := total / 2
	for k := 0; k < total; k++ {
		idx := start + k
		if idx >= total {
			idx -= total
		}
		i := idx/n + 1
		j := idx%n + 1
		dx := (2*float64(j) - nf - 1) / (2 * nf) * sp.step
		dy := (2*float64(i) - nf - 1) / (2 * nf) * sp.step

		nu := sp.eval.escapeTime(cre+dx, cim+dy)
		taken++
		if nu < 0 {
			sum = sum.Add(Background)
			continue
		}
		speed := sp.eval.escapeSpeed(nu)
		sum = sum.Add(sp.palette(speed))

		if speed > ssaaCutoff {
			break
		}
	}

	return sum.Scale(1 / float64(taken))
}

// colorRow renders one full row of pixels into the pixmap.
func (sp *sampler) colorRow(pm *Pixmap, v View, y int) {
	cim := v.imagCoord(y)
	step := v.Step()
	re0 := v.CenterReal - float64(v.Width-1)/2*step
	for x := 0; x < v.Width; x++ {
		c := sp.pixelColor(re0+float64(x)*step, cim)
		r, g, b := c.SRGB8()
		pm.SetRGB(x, y, r, g, b)
	}
}
