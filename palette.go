package mandel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// LinearRGB is an RGB triplet in linear light rather than sRGB. Linear
// values can be meaningfully added and scaled, which is what makes
// averaging supersampled colors correct; conversion to sRGB happens only
// when a value is quantized into the output buffer.
type LinearRGB struct {
	R, G, B float64
}

// Add returns the componentwise sum of two colors.
func (c LinearRGB) Add(o LinearRGB) LinearRGB {
	return LinearRGB{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Scale returns the color with every component multiplied by f.
func (c LinearRGB) Scale(f float64) LinearRGB {
	return LinearRGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// SRGB8 quantizes the color to 8-bit sRGB channels, clamping each
// component to [0, 1] first.
func (c LinearRGB) SRGB8() (r, g, b uint8) {
	return quantizeSRGB(linearToSRGB(c.R)),
		quantizeSRGB(linearToSRGB(c.G)),
		quantizeSRGB(linearToSRGB(c.B))
}

// srgbToLinear converts one sRGB channel to linear light.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB converts one linear-light channel to sRGB.
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// quantizeSRGB maps [0, 1] to [0, 255], clamping first.
func quantizeSRGB(c float64) uint8 {
	if c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}
	return uint8(math.Round(255 * c))
}

// Palette maps an escape speed in [0, 1] to a linear-RGB color.
// 0 corresponds to points that never escaped (or barely did) and must
// map to the background color; 1 corresponds to immediate escape.
//
// Palettes are pure functions with no shared state and are called
// concurrently from every render worker. The Interior sentinel never
// reaches a palette: the sampler substitutes the background directly.
type Palette func(speed float64) LinearRGB

// Background is the color of set members: solid black.
var Background = LinearRGB{}

// Classic is the default palette. As the speed increases from 0 to 1 the
// color transitions
//
//	black -> brown -> orange -> yellow -> cyan -> blue -> dark blue -> black.
//
// The polynomial color curves come from the python code in
// https://preshing.com/20110926/high-resolution-mandelbrot-in-obfuscated-python/.
// Inputs outside [0, 1] are clamped at quantization time.
func Classic(speed float64) LinearRGB {
	third := speed * speed * speed
	ninth := third * third * third
	eighteenth := ninth * ninth
	thirtySixth := eighteenth * eighteenth

	return LinearRGB{
		R: srgbToLinear(math.Pow(255, -2*ninth*thirtySixth) * speed),
		G: srgbToLinear(14.0/51.0*speed - 176.0/51.0*eighteenth + 701.0/255.0*ninth),
		B: srgbToLinear(16.0/51.0*speed + ninth - 190.0/51.0*thirtySixth*thirtySixth*eighteenth*ninth),
	}
}

// Grayscale maps the speed directly to a single linear luminance
// replicated across the channels, bypassing the color curves entirely.
func Grayscale(speed float64) LinearRGB {
	return LinearRGB{R: speed, G: speed, B: speed}
}

// HSV sweeps the hue circle with the escape speed at fixed saturation,
// ramping the value channel up from black near the set boundary.
func HSV(speed float64) LinearRGB {
	v := speed * 8
	if v > 1 {
		v = 1
	}
	c := colorful.Hsv(360*speed, 0.8, v)
	r, g, b := c.LinearRgb()
	return LinearRGB{R: r, G: g, B: b}
}
