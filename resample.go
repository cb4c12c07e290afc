package atlas

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Resampler scales pixel buffers during mip map generation. Implementations
// must scale src to cover dst exactly and must not blend with existing dst
// content.
type Resampler interface {
	Resize(dst draw.Image, src image.Image, filter Filter)
}

// KernelResampler resamples with golang.org/x/image/draw scalers: the
// built-in NearestNeighbor, BiLinear, and CatmullRom interpolators plus
// custom Gaussian and 3-lobe Lanczos kernels. It is the default Resampler.
type KernelResampler struct{}

func (KernelResampler) Resize(dst draw.Image, src image.Image, filter Filter) {
	scalerFor(filter).Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

var (
	// gaussianKernel is a Gaussian bell with sigma 1, truncated at 3 sigma.
	// x/image/draw normalizes kernel weights, so no scale factor is needed.
	gaussianKernel = &xdraw.Kernel{Support: 3, At: func(t float64) float64 {
		if t < 0 {
			t = -t
		}
		if t >= 3 {
			return 0
		}
		return math.Exp(-t * t / 2)
	}}

	// lanczos3Kernel is the windowed sinc sinc(t)*sinc(t/3) on |t| < 3.
	lanczos3Kernel = &xdraw.Kernel{Support: 3, At: func(t float64) float64 {
		if t < 0 {
			t = -t
		}
		if t >= 3 {
			return 0
		}
		return sinc(t) * sinc(t/3)
	}}
)

func sinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	t *= math.Pi
	return math.Sin(t) / t
}

// scalerFor maps a Filter onto its x/image/draw scaler.
func scalerFor(filter Filter) xdraw.Scaler {
	switch filter {
	case FilterLinear:
		return xdraw.BiLinear
	case FilterCubic:
		return xdraw.CatmullRom
	case FilterGaussian:
		return gaussianKernel
	case FilterLanczos3:
		return lanczos3Kernel
	default:
		return xdraw.NearestNeighbor
	}
}

// blit overwrite-copies src into dst with its top-left corner at (x, y) in
// dst coordinates. No blending. The destination must already be sized to
// contain src at the given offset; violating this is a programming error,
// not a reported condition.
func blit(dst draw.Image, src image.Image, x, y int) {
	sb := src.Bounds()
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy()).Add(dst.Bounds().Min)
	xdraw.Draw(dst, r, src, sb.Min, xdraw.Src)
}
