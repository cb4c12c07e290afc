package atlas

import (
	"image"
	"image/draw"
)

// Entry describes one source image to place into the atlas.
// The image is owned by the caller for the duration of the CreateAtlas call
// and is never modified.
type Entry struct {
	// Image is the source pixel data.
	Image image.Image

	// Wrap controls how edge pixels extend into the entry's padding region.
	Wrap WrapMode

	// Key optionally names the entry for lookup through
	// Atlas.TexcoordsByKey. Entries with an empty key are only addressable
	// by position.
	Key string
}

// Descriptor describes a texture atlas to generate.
type Descriptor struct {
	// MaxPageCount is the maximum number of pages the layout may use.
	// Must be at least 1.
	MaxPageCount int

	// Size is the edge length of every (square) page. Must be a power of
	// two whenever Mip generates mip levels.
	Size int

	// Mip selects the layout and mip map generation strategy.
	Mip MipOption

	// Entries is the non-empty list of images to pack.
	Entries []Entry
}

// Texture is one baked page: an ordered sequence of mip level buffers.
// MipMaps[0] is the full Size x Size level; level n has edge Size>>n.
type Texture struct {
	Size          int
	MipLevelCount int
	MipMaps       []draw.Image
}

// newTexture allocates a page with empty buffers for every mip level.
func newTexture(size, mipLevelCount int, newBuffer func(width, height int) draw.Image) Texture {
	mipMaps := make([]draw.Image, mipLevelCount)
	for level := range mipMaps {
		edge := size >> level
		mipMaps[level] = newBuffer(edge, edge)
	}
	return Texture{
		Size:          size,
		MipLevelCount: mipLevelCount,
		MipMaps:       mipMaps,
	}
}

// Atlas is the aggregate result of CreateAtlas: one or more pages of pixel
// data plus the sampling rectangle assigned to every entry.
type Atlas struct {
	// PageCount is the number of pages actually used.
	PageCount int

	// Size is the page edge length.
	Size int

	// MipLevelCount is the number of mip levels in every texture.
	MipLevelCount int

	// Textures holds one baked texture per page, indexed by page.
	Textures []Texture

	// Texcoords holds one sampling rectangle per entry, index-aligned with
	// Descriptor.Entries.
	Texcoords []Texcoord

	// TexcoordsByKey maps entry keys to their sampling rectangles. It is
	// nil unless at least one entry carries a non-empty key. When two
	// entries share a key, the later entry wins.
	TexcoordsByKey map[string]Texcoord
}

// texcoordsByKey builds the optional key index over positional texcoords.
func texcoordsByKey(entries []Entry, texcoords []Texcoord) map[string]Texcoord {
	var m map[string]Texcoord
	for i, entry := range entries {
		if entry.Key == "" {
			continue
		}
		if m == nil {
			m = make(map[string]Texcoord)
		}
		m[entry.Key] = texcoords[i]
	}
	return m
}
