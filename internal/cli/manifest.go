package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	atlas "github.com/GossiperLoturot/image-atlas"
)

// Manifest describes one atlas bake, decoded from a TOML file:
//
//	size = 2048
//	max-page-count = 8
//	mip = "block"        # none | padding | mip | mip-padding | block
//	filter = "lanczos3"  # nearest | linear | cubic | gaussian | lanczos3
//	block-size = 32
//	out-dir = "baked"
//
//	[[entry]]
//	key = "grass"
//	path = "textures/grass.png"
//	wrap = "repeat"      # clamp | repeat | mirror
//	max-dimension = 512  # optional pre-scale before packing
type Manifest struct {
	Size         int             `toml:"size"`
	MaxPageCount int             `toml:"max-page-count"`
	Mip          string          `toml:"mip"`
	Filter       string          `toml:"filter"`
	Padding      int             `toml:"padding"`
	BlockSize    int             `toml:"block-size"`
	OutDir       string          `toml:"out-dir"`
	Entries      []ManifestEntry `toml:"entry"`
}

// ManifestEntry describes one source image within a manifest.
type ManifestEntry struct {
	Key          string `toml:"key"`
	Path         string `toml:"path"`
	Wrap         string `toml:"wrap"`
	MaxDimension int    `toml:"max-dimension"`
}

// loadManifest decodes the TOML manifest at path.
func loadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return &m, nil
}

// mipOption maps the manifest's mip and filter fields onto an atlas.MipOption.
func (m *Manifest) mipOption() (atlas.MipOption, error) {
	switch m.Mip {
	case "", "none":
		return atlas.NoMip(), nil
	case "padding":
		return atlas.NoMipWithPadding(m.Padding), nil
	case "mip":
		filter, err := parseFilter(m.Filter)
		if err != nil {
			return atlas.MipOption{}, err
		}
		return atlas.Mip(filter), nil
	case "mip-padding":
		filter, err := parseFilter(m.Filter)
		if err != nil {
			return atlas.MipOption{}, err
		}
		return atlas.MipWithPadding(filter, m.Padding), nil
	case "block":
		filter, err := parseFilter(m.Filter)
		if err != nil {
			return atlas.MipOption{}, err
		}
		return atlas.MipWithBlock(filter, m.BlockSize), nil
	default:
		return atlas.MipOption{}, fmt.Errorf("unknown mip mode %q (want none, padding, mip, mip-padding, or block)", m.Mip)
	}
}

// parseFilter maps a manifest filter name onto an atlas.Filter.
// An empty name selects nearest.
func parseFilter(name string) (atlas.Filter, error) {
	switch name {
	case "", "nearest":
		return atlas.FilterNearest, nil
	case "linear":
		return atlas.FilterLinear, nil
	case "cubic":
		return atlas.FilterCubic, nil
	case "gaussian":
		return atlas.FilterGaussian, nil
	case "lanczos3":
		return atlas.FilterLanczos3, nil
	default:
		return 0, fmt.Errorf("unknown filter %q (want nearest, linear, cubic, gaussian, or lanczos3)", name)
	}
}

// parseWrap maps a manifest wrap name onto an atlas.WrapMode.
// An empty name selects clamp.
func parseWrap(name string) (atlas.WrapMode, error) {
	switch name {
	case "", "clamp":
		return atlas.WrapClamp, nil
	case "repeat":
		return atlas.WrapRepeat, nil
	case "mirror":
		return atlas.WrapMirror, nil
	default:
		return 0, fmt.Errorf("unknown wrap mode %q (want clamp, repeat, or mirror)", name)
	}
}
