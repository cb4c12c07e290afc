package atlas

import (
	"math/bits"

	"github.com/GossiperLoturot/image-atlas/internal/parallel"
)

// CreateAtlas packs every entry in the descriptor into shared pages and
// returns the baked result. The call is a single synchronous transform with
// no state outside it: any failure aborts before any output is produced.
//
// Per-entry work is distributed across a worker pool (see WithWorkers); the
// placement service guarantees non-overlapping destinations, so the result
// is identical regardless of worker count.
func CreateAtlas(desc *Descriptor, opts ...Option) (*Atlas, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(desc); err != nil {
		return nil, err
	}

	switch desc.Mip.kind {
	case mipNone:
		return createWithPadding(desc, &cfg, 0, 1)
	case mipNonePadding:
		return createWithPadding(desc, &cfg, desc.Mip.padding, 1)
	case mipPage:
		return createWithPadding(desc, &cfg, 0, log2(desc.Size)+1)
	case mipPagePadding:
		return createWithPadding(desc, &cfg, desc.Mip.padding, log2(desc.Size)+1)
	default: // mipBlock
		return createWithBlock(desc, &cfg)
	}
}

// validate fails fast on descriptor errors, in a fixed order, before any
// packing or compositing work begins.
func validate(desc *Descriptor) error {
	if desc.MaxPageCount < 1 {
		return ErrZeroMaxPageCount
	}
	if desc.Mip.generatesMips() && !isPowerOfTwo(desc.Size) {
		return &InvalidSizeError{Size: desc.Size}
	}
	if desc.Mip.kind == mipBlock && !isPowerOfTwo(desc.Mip.blockSize) {
		return &InvalidBlockSizeError{BlockSize: desc.Mip.blockSize}
	}
	if desc.Mip.padding < 0 {
		return &InvalidPaddingError{Padding: desc.Mip.padding}
	}
	if len(desc.Entries) == 0 {
		return ErrZeroEntry
	}
	return nil
}

// createWithPadding lays entries out inflated by the given padding and bakes
// mipLevelCount levels. With mipLevelCount > 1, level L of every page is
// downsampled from the page's level L-1 buffer after all level-0 composites
// on that page have completed.
func createWithPadding(desc *Descriptor, cfg *config, padding, mipLevelCount int) (*Atlas, error) {
	reqs := make([]PackRequest, len(desc.Entries))
	for i, entry := range desc.Entries {
		b := entry.Image.Bounds()
		reqs[i] = PackRequest{
			ID:     i,
			Width:  b.Dx() + padding*2,
			Height: b.Dy() + padding*2,
		}
	}

	placements, err := cfg.packer.Pack(desc.Size, desc.Size, desc.MaxPageCount, reqs)
	if err != nil {
		return nil, &PackingError{Err: err}
	}

	pageCount := 0
	texcoords := make([]Texcoord, len(desc.Entries))
	for i := range desc.Entries {
		loc := placements[i]
		pageCount = max(pageCount, loc.Page+1)

		texcoords[i] = Texcoord{
			Page: loc.Page,
			MinX: loc.X + padding,
			MinY: loc.Y + padding,
			MaxX: loc.X + loc.Width - padding,
			MaxY: loc.Y + loc.Height - padding,
			Size: desc.Size,
		}
	}

	Logger().Debug("entries placed",
		"entries", len(desc.Entries), "pages", pageCount, "padding", padding)

	textures := make([]Texture, pageCount)
	for page := range textures {
		textures[page] = newTexture(desc.Size, mipLevelCount, cfg.newBuffer)
	}

	pool := parallel.NewPool(cfg.workers)
	defer pool.Close()

	// Level-0 composites from different entries touch disjoint regions.
	tasks := make([]func(), len(desc.Entries))
	for i := range desc.Entries {
		entry := &desc.Entries[i]
		loc := placements[i]
		tasks[i] = func() {
			padded := cfg.newBuffer(loc.Width, loc.Height)
			dilate(padded, entry.Image, entry.Wrap, padding, padding)
			blit(textures[loc.Page].MipMaps[0], padded, loc.X, loc.Y)
		}
	}
	pool.Run(tasks)

	if mipLevelCount > 1 {
		tasks = make([]func(), pageCount)
		for page := range tasks {
			tex := textures[page]
			tasks[page] = func() {
				for level := 1; level < mipLevelCount; level++ {
					cfg.resampler.Resize(tex.MipMaps[level], tex.MipMaps[level-1], desc.Mip.filter)
				}
			}
		}
		pool.Run(tasks)

		Logger().Debug("page mip pyramids baked",
			"pages", pageCount, "levels", mipLevelCount, "filter", desc.Mip.filter)
	}

	return &Atlas{
		PageCount:      pageCount,
		Size:           desc.Size,
		MipLevelCount:  mipLevelCount,
		Textures:       textures,
		Texcoords:      texcoords,
		TexcoordsByKey: texcoordsByKey(desc.Entries, texcoords),
	}, nil
}

// createWithBlock lays entries out on a block grid and builds every entry's
// mip chain from its own dilated, block-padded buffer. Because each level
// derives only from that entry's source, no level ever mixes pixel data
// across unrelated entries even though all entries share page buffers.
func createWithBlock(desc *Descriptor, cfg *config) (*Atlas, error) {
	blockSize := desc.Mip.blockSize
	padding := blockSize / 2

	// Block-quantized request: one half-block margin on each edge, with the
	// entry rounded up to block granularity so every mip level divides the
	// reserved region evenly. Placement operates in block-grid coordinates.
	reqs := make([]PackRequest, len(desc.Entries))
	for i, entry := range desc.Entries {
		b := entry.Image.Bounds()
		reqs[i] = PackRequest{
			ID:     i,
			Width:  ceilDiv(b.Dx()+blockSize, blockSize),
			Height: ceilDiv(b.Dy()+blockSize, blockSize),
		}
	}

	binSize := desc.Size / blockSize
	placements, err := cfg.packer.Pack(binSize, binSize, desc.MaxPageCount, reqs)
	if err != nil {
		return nil, &PackingError{Err: err}
	}

	pageCount := 0
	texcoords := make([]Texcoord, len(desc.Entries))
	for i, entry := range desc.Entries {
		loc := placements[i]
		pageCount = max(pageCount, loc.Page+1)

		// The upper bound trims to the entry's original dimension, not the
		// block-rounded placement size.
		b := entry.Image.Bounds()
		minX := loc.X*blockSize + padding
		minY := loc.Y*blockSize + padding
		texcoords[i] = Texcoord{
			Page: loc.Page,
			MinX: minX,
			MinY: minY,
			MaxX: minX + b.Dx(),
			MaxY: minY + b.Dy(),
			Size: desc.Size,
		}
	}

	Logger().Debug("entries placed",
		"entries", len(desc.Entries), "pages", pageCount, "blockSize", blockSize)

	mipLevelCount := log2(blockSize) + 1
	textures := make([]Texture, pageCount)
	for page := range textures {
		textures[page] = newTexture(desc.Size, mipLevelCount, cfg.newBuffer)
	}

	pool := parallel.NewPool(cfg.workers)
	defer pool.Close()

	// Entries occupy disjoint block rectangles, so their composites write
	// disjoint regions at every mip level.
	tasks := make([]func(), len(desc.Entries))
	for i := range desc.Entries {
		entry := &desc.Entries[i]
		loc := placements[i]
		tasks[i] = func() {
			width := loc.Width * blockSize
			height := loc.Height * blockSize

			padded := cfg.newBuffer(width, height)
			dilate(padded, entry.Image, entry.Wrap, padding, padding)

			// Level 0 is copied untouched so the live region is never
			// altered by the filter.
			tex := textures[loc.Page]
			blit(tex.MipMaps[0], padded, loc.X*blockSize, loc.Y*blockSize)

			for level := 1; level < mipLevelCount; level++ {
				scaled := cfg.newBuffer(width>>level, height>>level)
				cfg.resampler.Resize(scaled, padded, desc.Mip.filter)
				blit(tex.MipMaps[level], scaled, loc.X*(blockSize>>level), loc.Y*(blockSize>>level))
			}
		}
	}
	pool.Run(tasks)

	Logger().Debug("block mip chains baked",
		"entries", len(desc.Entries), "levels", mipLevelCount, "filter", desc.Mip.filter)

	return &Atlas{
		PageCount:      pageCount,
		Size:           desc.Size,
		MipLevelCount:  mipLevelCount,
		Textures:       textures,
		Texcoords:      texcoords,
		TexcoordsByKey: texcoordsByKey(desc.Entries, texcoords),
	}, nil
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// log2 returns floor(log2(n)) for positive n.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// ceilDiv returns ceil(a / b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
