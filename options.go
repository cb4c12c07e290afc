package atlas

import (
	"fmt"
	"image"
	"image/draw"
)

// Filter selects the resampling kernel used for mip map generation.
type Filter uint8

const (
	// FilterNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	FilterNearest Filter = iota

	// FilterLinear performs linear interpolation between neighboring pixels.
	// Good balance between quality and performance.
	FilterLinear

	// FilterCubic performs Catmull-Rom cubic interpolation over a 4x4
	// neighborhood. Sharper than linear at a moderate cost.
	FilterCubic

	// FilterGaussian applies a Gaussian bell kernel. Soft results, no ringing.
	FilterGaussian

	// FilterLanczos3 applies a 3-lobe Lanczos windowed-sinc kernel.
	// Highest quality for downsampling.
	FilterLanczos3
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	case FilterCubic:
		return "Cubic"
	case FilterGaussian:
		return "Gaussian"
	case FilterLanczos3:
		return "Lanczos3"
	default:
		return "Unknown"
	}
}

// WrapMode defines how an entry's edge pixels are extended into the padding
// region that surrounds it.
type WrapMode uint8

const (
	// WrapClamp extends the entry by repeating its edge pixels.
	WrapClamp WrapMode = iota

	// WrapRepeat tiles the entry, so padding samples wrap around to the
	// opposite edge. Use for seamlessly tiling textures.
	WrapRepeat

	// WrapMirror tiles the entry with ping-pong reflection at every tile
	// boundary.
	WrapMirror
)

// String returns a string representation of the wrap mode.
func (w WrapMode) String() string {
	switch w {
	case WrapClamp:
		return "Clamp"
	case WrapRepeat:
		return "Repeat"
	case WrapMirror:
		return "Mirror"
	default:
		return "Unknown"
	}
}

// mipKind discriminates the closed set of mip options.
type mipKind uint8

const (
	mipNone mipKind = iota
	mipNonePadding
	mipPage
	mipPagePadding
	mipBlock
)

// MipOption selects the layout and mip map generation strategy for an atlas.
// The zero value is NoMip(). Construct values with NoMip, NoMipWithPadding,
// Mip, MipWithPadding, or MipWithBlock.
type MipOption struct {
	kind      mipKind
	filter    Filter
	padding   int
	blockSize int
}

// NoMip lays entries out with no padding and generates no mip levels.
func NoMip() MipOption {
	return MipOption{kind: mipNone}
}

// NoMipWithPadding lays entries out with the given padding on every edge and
// generates no mip levels. Padding must not be negative; CreateAtlas rejects
// a negative value with InvalidPaddingError.
func NoMipWithPadding(padding int) MipOption {
	return MipOption{kind: mipNonePadding, padding: padding}
}

// Mip lays entries out with no padding and downsamples each whole page into a
// full mip pyramid using the given filter. Entries placed close together may
// bleed into each other at low mip levels.
func Mip(filter Filter) MipOption {
	return MipOption{kind: mipPage, filter: filter}
}

// MipWithPadding lays entries out with the given padding and downsamples each
// whole page into a full mip pyramid. Padding reduces, but does not
// eliminate, bleeding at low mip levels. Padding must not be negative.
func MipWithPadding(filter Filter, padding int) MipOption {
	return MipOption{kind: mipPagePadding, filter: filter, padding: padding}
}

// MipWithBlock quantizes entry placement to a power-of-two block grid and
// builds every entry's mip chain from its own dilated source before
// compositing, so no mip level ever mixes pixels from unrelated entries.
// Each entry receives blockSize/2 pixels of padding, and the pyramid has
// log2(blockSize)+1 levels.
func MipWithBlock(filter Filter, blockSize int) MipOption {
	return MipOption{kind: mipBlock, filter: filter, blockSize: blockSize}
}

// generatesMips reports whether the option produces more than one mip level,
// which in turn requires the page size to be a power of two.
func (m MipOption) generatesMips() bool {
	return m.kind == mipPage || m.kind == mipPagePadding || m.kind == mipBlock
}

// String returns a string representation of the option.
func (m MipOption) String() string {
	switch m.kind {
	case mipNone:
		return "NoMip"
	case mipNonePadding:
		return fmt.Sprintf("NoMipWithPadding(%d)", m.padding)
	case mipPage:
		return fmt.Sprintf("Mip(%s)", m.filter)
	case mipPagePadding:
		return fmt.Sprintf("MipWithPadding(%s, %d)", m.filter, m.padding)
	case mipBlock:
		return fmt.Sprintf("MipWithBlock(%s, %d)", m.filter, m.blockSize)
	default:
		return "Unknown"
	}
}

// Option configures atlas creation. Use functional options to inject
// alternative collaborators.
//
// Example:
//
//	// Default MaxRects placement, x/image kernels, NRGBA pages
//	result, err := atlas.CreateAtlas(desc)
//
//	// Custom placement service (dependency injection)
//	result, err := atlas.CreateAtlas(desc, atlas.WithPacker(myPacker))
type Option func(*config)

// config holds the resolved collaborators for one CreateAtlas call.
type config struct {
	packer    Packer
	resampler Resampler
	newBuffer func(width, height int) draw.Image
	workers   int
}

// defaultConfig returns the default creation config.
func defaultConfig() config {
	return config{
		packer:    NewMaxRectsPacker(),
		resampler: KernelResampler{},
		newBuffer: func(width, height int) draw.Image {
			return image.NewNRGBA(image.Rect(0, 0, width, height))
		},
	}
}

// WithPacker sets a custom placement service. Use this to substitute an
// alternative bin-packing heuristic without touching the mip and padding
// logic.
func WithPacker(p Packer) Option {
	return func(c *config) {
		if p != nil {
			c.packer = p
		}
	}
}

// WithResampler sets a custom resampling service used for mip map
// downsampling.
func WithResampler(r Resampler) Option {
	return func(c *config) {
		if r != nil {
			c.resampler = r
		}
	}
}

// WithBufferFactory sets the allocator used for page and scratch pixel
// buffers. The default allocates *image.NRGBA. Supply a factory returning a
// different draw.Image implementation to bake atlases in another pixel
// format:
//
//	atlas.WithBufferFactory(func(w, h int) draw.Image {
//	    return image.NewGray(image.Rect(0, 0, w, h))
//	})
func WithBufferFactory(f func(width, height int) draw.Image) Option {
	return func(c *config) {
		if f != nil {
			c.newBuffer = f
		}
	}
}

// WithWorkers sets the number of goroutines used for per-entry dilation,
// mip chain construction, and compositing. Values below 1 select
// runtime.GOMAXPROCS(0). Output is identical regardless of worker count.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}
