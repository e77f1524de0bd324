package mandel

// View describes the rendered window of the complex plane: the coordinate
// at the image center, a zoom factor, and the output size in pixels.
//
// At Zoom == 1 the larger image dimension spans 4 plane units, enough to
// contain the whole set; doubling Zoom halves the covered distance.
// The same per-pixel step is used on both axes, so the set is never
// stretched when Width != Height.
type View struct {
	CenterReal float64
	CenterImag float64
	Zoom       float64
	Width      int
	Height     int
}

// baseSpan is the plane distance covered by the larger image dimension
// at Zoom == 1.
const baseSpan = 4.0

// Step returns the plane distance between the centers of adjacent pixels.
func (v View) Step() float64 {
	d := v.Width
	if v.Height > d {
		d = v.Height
	}
	return baseSpan / (v.Zoom * float64(d))
}

// Coordinate maps the pixel at (x, y) to its point in the complex plane.
// The mapping is affine and total: (0,0) is the top-left pixel, x grows
// toward larger real parts and y toward smaller imaginary parts. For
// odd dimensions the middle pixel maps exactly to the view center.
func (v View) Coordinate(x, y int) (re, im float64) {
	step := v.Step()
	re = v.CenterReal + (float64(x)-float64(v.Width-1)/2)*step
	im = v.CenterImag - (float64(y)-float64(v.Height-1)/2)*step
	return re, im
}

// imagCoord returns the imaginary coordinate of row y. All pixels of a
// row share it, so row loops compute it once.
func (v View) imagCoord(y int) float64 {
	return v.CenterImag - (float64(y)-float64(v.Height-1)/2)*v.Step()
}

// Landmark is a named point of interest in the complex plane together
// with a zoom level that frames it.
type Landmark struct {
	Name       string
	CenterReal float64
	CenterImag float64
	Zoom       float64
}

// Landmarks lists classic regions of the Mandelbrot set. The zero entry
// frames the whole set.
var Landmarks = []Landmark{
	// The full set.
	{Name: "home", CenterReal: -0.75, CenterImag: 0, Zoom: 1},

	// Seahorse Valley: dense filaments and repeating seahorse curls.
	{Name: "seahorse", CenterReal: -0.75, CenterImag: 0.1, Zoom: 40},

	// Elephant Valley: large bulb with trunk-like tendrils.
	{Name: "elephant", CenterReal: -1.8, CenterImag: -0.06, Zoom: 40},

	// Small Mandelbrot copy with tight spiral arms.
	{Name: "spiral-minibrot", CenterReal: -0.74275, CenterImag: 0.13175, Zoom: 2600},

	// Threefold symmetric spiral structure.
	{Name: "triple-spiral", CenterReal: -0.7465, CenterImag: 0.0965, Zoom: 1300},

	// Valley of the Dragon: deep, highly detailed spiral filaments.
	{Name: "dragon", CenterReal: -0.7375, CenterImag: 0.1825, Zoom: 800},

	// Self-similar copy inside a spiral arm.
	{Name: "mini-spiral", CenterReal: -1.73825, CenterImag: -0.02275, Zoom: 2600},
}

// LandmarkByName returns the landmark with the given name.
func LandmarkByName(name string) (Landmark, bool) {
	for _, l := range Landmarks {
		if l.Name == name {
			return l, true
		}
	}
	return Landmark{}, false
}
