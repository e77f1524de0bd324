package mandel

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/tiff"
)

// Pixmap is a dense rectangular pixel buffer in row-major RGBA8 layout.
//
// During a render the buffer is partitioned into disjoint row ranges that
// are written concurrently; Pixmap itself performs no locking. A row is
// safe to read once the render reports it complete (see WithBandDone).
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetRGB sets a single opaque pixel. Out-of-bounds coordinates are
// ignored.
func (p *Pixmap) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = 0xff
}

// Row returns the raw RGBA bytes of row y as a slice aliasing the
// underlying buffer.
func (p *Pixmap) Row(y int) []uint8 {
	i := y * p.width * 4
	return p.data[i : i+p.width*4 : i+p.width*4]
}

// CopyRow copies the pixels of row src into row dst.
func (p *Pixmap) CopyRow(dst, src int) {
	copy(p.Row(dst), p.Row(src))
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// EncodeTIFF writes the pixmap to w in uncompressed TIFF format.
func (p *Pixmap) EncodeTIFF(w io.Writer) error {
	return tiff.Encode(w, p.ToImage(), nil)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return p.save(path, p.EncodePNG)
}

// SaveTIFF saves the pixmap to a TIFF file.
func (p *Pixmap) SaveTIFF(path string) error {
	return p.save(path, p.EncodeTIFF)
}

func (p *Pixmap) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
