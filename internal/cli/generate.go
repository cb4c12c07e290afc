package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	atlas "github.com/GossiperLoturot/image-atlas"
)

// newGenerateCmd builds the generate subcommand.
func newGenerateCmd() *cobra.Command {
	var configPath string
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Bake an atlas from a TOML manifest",
		Long:  `Generate reads an atlas manifest, loads every entry image, packs them into shared pages, and writes each page mip level as PNG plus a texcoords.json index.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmdLogger(cmd), configPath, outDir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "atlas.toml", "path to the atlas manifest")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides manifest out-dir)")
	return cmd
}

func runGenerate(logger *charmlog.Logger, configPath, outDir string) error {
	manifest, err := loadManifest(configPath)
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = manifest.OutDir
	}
	if outDir == "" {
		outDir = "."
	}

	mip, err := manifest.mipOption()
	if err != nil {
		return err
	}

	entries := make([]atlas.Entry, 0, len(manifest.Entries))
	for _, me := range manifest.Entries {
		img, err := imaging.Open(me.Path)
		if err != nil {
			return fmt.Errorf("open entry %s: %w", me.Path, err)
		}

		b := img.Bounds()
		if me.MaxDimension > 0 && (b.Dx() > me.MaxDimension || b.Dy() > me.MaxDimension) {
			img = imaging.Fit(img, me.MaxDimension, me.MaxDimension, imaging.Lanczos)
			logger.Debug("pre-scaled entry", "path", me.Path,
				"from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
				"to", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))
		}

		wrap, err := parseWrap(me.Wrap)
		if err != nil {
			return fmt.Errorf("entry %s: %w", me.Path, err)
		}

		entries = append(entries, atlas.Entry{Image: img, Wrap: wrap, Key: me.Key})
	}
	logger.Info("loaded entries", "count", len(entries), "mip", mip)

	start := time.Now()
	result, err := atlas.CreateAtlas(&atlas.Descriptor{
		MaxPageCount: manifest.MaxPageCount,
		Size:         manifest.Size,
		Mip:          mip,
		Entries:      entries,
	})
	if err != nil {
		return err
	}
	logger.Infof("Baked %d page(s) with %d mip level(s) (%s)",
		result.PageCount, result.MipLevelCount, time.Since(start).Round(time.Millisecond))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for page, tex := range result.Textures {
		for level, mipMap := range tex.MipMaps {
			name := filepath.Join(outDir, fmt.Sprintf("page%02d_mip%02d.png", page, level))
			if err := imaging.Save(mipMap, name); err != nil {
				return fmt.Errorf("save %s: %w", name, err)
			}
		}
	}
	logger.Info("wrote pages", "dir", outDir, "pages", result.PageCount)

	return writeTexcoordIndex(filepath.Join(outDir, "texcoords.json"), manifest, result)
}

// texcoordIndex is the JSON document written alongside the baked pages.
type texcoordIndex struct {
	PageCount     int              `json:"pageCount"`
	Size          int              `json:"size"`
	MipLevelCount int              `json:"mipLevelCount"`
	Texcoords     []texcoordRecord `json:"texcoords"`
}

type texcoordRecord struct {
	Key  string `json:"key,omitempty"`
	Page int    `json:"page"`
	MinX int    `json:"minX"`
	MinY int    `json:"minY"`
	MaxX int    `json:"maxX"`
	MaxY int    `json:"maxY"`
}

// writeTexcoordIndex writes the per-entry sampling rectangles, index-aligned
// with the manifest's entry order.
func writeTexcoordIndex(path string, manifest *Manifest, result *atlas.Atlas) error {
	index := texcoordIndex{
		PageCount:     result.PageCount,
		Size:          result.Size,
		MipLevelCount: result.MipLevelCount,
		Texcoords:     make([]texcoordRecord, len(result.Texcoords)),
	}
	for i, tc := range result.Texcoords {
		index.Texcoords[i] = texcoordRecord{
			Key:  manifest.Entries[i].Key,
			Page: tc.Page,
			MinX: tc.MinX,
			MinY: tc.MinY,
			MaxX: tc.MaxX,
			MaxY: tc.MaxY,
		}
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
