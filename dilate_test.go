package atlas

import (
	"image"
	"image/color"
	"testing"
)

// stripImage returns a 1-pixel-tall NRGBA image whose red channel encodes the
// column index as (x+1)*10, making wrap behavior easy to assert.
func stripImage(width int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, 1))
	for x := 0; x < width; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: uint8((x + 1) * 10), A: 255})
	}
	return img
}

func redAt(t *testing.T, img image.Image, x, y int) uint8 {
	t.Helper()
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b    int
		wantDiv int
		wantMod int
	}{
		{-5, 4, -2, 3},
		{-4, 4, -1, 0},
		{-1, 4, -1, 3},
		{0, 4, 0, 0},
		{3, 4, 0, 3},
		{4, 4, 1, 0},
		{7, 4, 1, 3},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.wantDiv {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantDiv)
		}
		if got := floorMod(tt.a, tt.b); got != tt.wantMod {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantMod)
		}
	}
}

func TestDilateClamp(t *testing.T) {
	src := stripImage(4) // red values 10 20 30 40
	dst := image.NewNRGBA(image.Rect(0, 0, 10, 1))
	dilate(dst, src, WrapClamp, 3, 0)

	want := []uint8{10, 10, 10, 10, 20, 30, 40, 40, 40, 40}
	for x, w := range want {
		if got := redAt(t, dst, x, 0); got != w {
			t.Errorf("clamp x=%d: got %d, want %d", x, got, w)
		}
	}
}

func TestDilateRepeat(t *testing.T) {
	src := stripImage(4)
	margin := 3
	dst := image.NewNRGBA(image.Rect(0, 0, 10, 1))
	dilate(dst, src, WrapRepeat, margin, 0)

	// Every output pixel equals the source pixel at (x - margin) mod srcDim.
	for x := 0; x < 10; x++ {
		wantX := floorMod(x-margin, 4)
		want := redAt(t, src, wantX, 0)
		if got := redAt(t, dst, x, 0); got != want {
			t.Errorf("repeat x=%d: got %d, want %d (src x=%d)", x, got, want, wantX)
		}
	}
}

func TestDilateMirror(t *testing.T) {
	// Margin of one full tile so the output covers tiles -1, 0, and 1.
	// Even tiles reflect (including tile 0, the live region); odd tiles do
	// not, giving ping-pong tiling across tile boundaries.
	src := stripImage(4) // red values 10 20 30 40
	dst := image.NewNRGBA(image.Rect(0, 0, 12, 1))
	dilate(dst, src, WrapMirror, 4, 0)

	want := []uint8{
		10, 20, 30, 40, // tile -1: odd, unreflected
		40, 30, 20, 10, // tile 0: even, reflected
		10, 20, 30, 40, // tile 1: odd, unreflected
	}
	for x, w := range want {
		if got := redAt(t, dst, x, 0); got != w {
			t.Errorf("mirror x=%d: got %d, want %d", x, got, w)
		}
	}
}

func TestDilateMirrorVertical(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		src.SetNRGBA(0, y, color.NRGBA{R: uint8((y + 1) * 10), A: 255})
	}
	dst := image.NewNRGBA(image.Rect(0, 0, 1, 9))
	dilate(dst, src, WrapMirror, 0, 3)
	want := []uint8{
		10, 20, 30, // tile -1
		30, 20, 10, // tile 0 reflected
		10, 20, 30, // tile 1
	}
	for y, w := range want {
		if got := redAt(t, dst, 0, y); got != w {
			t.Errorf("mirror y=%d: got %d, want %d", y, got, w)
		}
	}
}

func TestDilateLiveRegionVerbatimForClampAndRepeat(t *testing.T) {
	src := gradientImage(5, 4)
	for _, wrap := range []WrapMode{WrapClamp, WrapRepeat} {
		dst := image.NewNRGBA(image.Rect(0, 0, 9, 8))
		dilate(dst, src, wrap, 2, 2)
		for y := 0; y < 4; y++ {
			for x := 0; x < 5; x++ {
				if got, want := dst.NRGBAAt(x+2, y+2), src.NRGBAAt(x, y); got != want {
					t.Fatalf("%s live region (%d,%d): got %v, want %v", wrap, x, y, got, want)
				}
			}
		}
	}
}

// gradientImage builds a deterministic non-uniform test image.
func gradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 17),
				G: uint8(y * 29),
				B: uint8((x + y) * 11),
				A: 255,
			})
		}
	}
	return img
}
