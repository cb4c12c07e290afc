// Package atlas packs batches of independently-sized images into a small
// number of shared square texture pages, optionally synthesizing a full mip
// map pyramid per page.
//
// # Overview
//
// The package is intended for offline content-baking pipelines (for example
// game asset build steps) that need a GPU-ready texture atlas plus normalized
// sampling rectangles per entry. It supports several layout strategies:
//
//   - No padding between entries
//   - Fixed padding between entries
//   - Block-confined padding for safe mip map generation
//
// # Quick Start
//
//	import "github.com/GossiperLoturot/image-atlas"
//
//	result, err := atlas.CreateAtlas(&atlas.Descriptor{
//	    MaxPageCount: 8,
//	    Size:         2048,
//	    Mip:          atlas.MipWithBlock(atlas.FilterLanczos3, 32),
//	    Entries: []atlas.Entry{
//	        {Image: img, Wrap: atlas.WrapClamp},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tc := result.Texcoords[0]
//	page := result.Textures[tc.Page].MipMaps[0]
//
// # Padding and Bleeding
//
// When mip levels are generated for a whole page, a low-level pixel may
// combine samples that originate from two unrelated entries placed close
// together. MipWithPadding reduces this, and MipWithBlock eliminates it by
// construction: every entry's mip chain is computed from its own dilated
// source before being composited into the shared page, so no level ever
// mixes pixel data across entries.
//
// # Collaborators
//
// Rectangle placement and resampling are pluggable. The default placement
// service packs with a MaxRects heuristic via github.com/ForeverZer0/rectpack,
// and the default resampler uses golang.org/x/image/draw kernels. Both can be
// replaced through WithPacker and WithResampler.
//
// # Coordinate System
//
// Pages use standard image coordinates: origin at top-left, X increases
// right, Y increases down. Texcoords are integer pixel rectangles relative to
// the level-0 page size, convertible to normalized [0, 1] float rectangles.
package atlas
