package mandel

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/tiff"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestPixmap_SetRGB(t *testing.T) {
	pm := NewPixmap(8, 4)

	pm.SetRGB(3, 2, 10, 20, 30)
	if got := pm.At(3, 2); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("At(3, 2) = %v", got)
	}

	// Out-of-bounds writes are ignored, reads return zero.
	pm.SetRGB(-1, 0, 1, 1, 1)
	pm.SetRGB(8, 0, 1, 1, 1)
	pm.SetRGB(0, 4, 1, 1, 1)
	if got := pm.At(-1, 0); got != (color.NRGBA{}) {
		t.Errorf("out-of-bounds At = %v, want zero", got)
	}
}

func TestPixmap_RowAndCopyRow(t *testing.T) {
	pm := NewPixmap(4, 3)
	for x := 0; x < 4; x++ {
		pm.SetRGB(x, 1, uint8(x), uint8(x*2), uint8(x*3))
	}

	if got := len(pm.Row(1)); got != 16 {
		t.Fatalf("Row length = %d, want 16", got)
	}

	pm.CopyRow(2, 1)
	if !bytes.Equal(pm.Row(2), pm.Row(1)) {
		t.Error("CopyRow did not copy the row contents")
	}
	if bytes.Equal(pm.Row(0), pm.Row(1)) {
		t.Error("CopyRow touched an unrelated row")
	}
}

func TestPixmap_ToImage(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetRGB(0, 0, 255, 0, 0)
	pm.SetRGB(1, 1, 0, 0, 255)

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (0,0) = %v", got)
	}
}

func TestPixmap_EncodePNG(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.SetRGB(1, 1, 12, 34, 56)

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := decoded.At(1, 1).RGBA()
	if r>>8 != 12 || g>>8 != 34 || b>>8 != 56 {
		t.Errorf("decoded pixel = (%d, %d, %d), want (12, 34, 56)", r>>8, g>>8, b>>8)
	}
}

func TestPixmap_EncodeTIFF(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.SetRGB(2, 0, 200, 100, 50)

	var buf bytes.Buffer
	if err := pm.EncodeTIFF(&buf); err != nil {
		t.Fatal(err)
	}

	decoded, err := tiff.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := decoded.At(2, 0).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("decoded pixel = (%d, %d, %d), want (200, 100, 50)", r>>8, g>>8, b>>8)
	}
}
