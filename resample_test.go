package atlas

import (
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that the default resampler implements Resampler.
var _ Resampler = KernelResampler{}

// TestKernelResamplerUniform checks that downsampling a uniform image keeps
// it uniform under every filter: kernels are normalized, so equal inputs must
// interpolate to the same value.
func TestKernelResamplerUniform(t *testing.T) {
	want := color.NRGBA{R: 80, G: 160, B: 240, A: 255}
	src := solidImage(32, 32, want)

	filters := []Filter{FilterNearest, FilterLinear, FilterCubic, FilterGaussian, FilterLanczos3}
	for _, filter := range filters {
		t.Run(filter.String(), func(t *testing.T) {
			dst := image.NewNRGBA(image.Rect(0, 0, 8, 8))
			KernelResampler{}.Resize(dst, src, filter)
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					got := dst.NRGBAAt(x, y)
					if diffU8(got.R, want.R) > 1 || diffU8(got.G, want.G) > 1 || diffU8(got.B, want.B) > 1 || got.A != want.A {
						t.Fatalf("(%d,%d) = %v, want ~%v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestKernelResamplerNearestPicksCenters(t *testing.T) {
	src := gradientImage(4, 4)
	dst := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	KernelResampler{}.Resize(dst, src, FilterNearest)

	// Nearest maps each destination pixel center back to the source pixel
	// it falls in: dst(x,y) <- src(2x+1, 2y+1).
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got, want := dst.NRGBAAt(x, y), src.NRGBAAt(2*x+1, 2*y+1); got != want {
				t.Errorf("dst(%d,%d) = %v, want src(%d,%d) = %v", x, y, got, 2*x+1, 2*y+1, want)
			}
		}
	}
}

func TestBlitOffsetAndOverwrite(t *testing.T) {
	dst := solidImage(8, 8, color.NRGBA{R: 9, G: 9, B: 9, A: 255})
	src := solidImage(3, 2, color.NRGBA{G: 255, A: 255})

	blit(dst, src, 4, 5)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 4 && x < 7 && y >= 5 && y < 7
			got := dst.NRGBAAt(x, y)
			if inside && got != (color.NRGBA{G: 255, A: 255}) {
				t.Errorf("(%d,%d) = %v, want blitted green", x, y, got)
			}
			if !inside && got != (color.NRGBA{R: 9, G: 9, B: 9, A: 255}) {
				t.Errorf("(%d,%d) = %v, want untouched background", x, y, got)
			}
		}
	}
}

func TestSinc(t *testing.T) {
	if got := sinc(0); got != 1 {
		t.Errorf("sinc(0) = %v, want 1", got)
	}
	// sinc(n) = 0 at non-zero integers.
	for _, n := range []float64{1, 2, 3} {
		if got := sinc(n); got > 1e-9 || got < -1e-9 {
			t.Errorf("sinc(%v) = %v, want 0", n, got)
		}
	}
}

func diffU8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
