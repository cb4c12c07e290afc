package cli

import (
	"os"
	"path/filepath"
	"testing"

	atlas "github.com/GossiperLoturot/image-atlas"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atlas.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
size = 2048
max-page-count = 8
mip = "block"
filter = "lanczos3"
block-size = 32
out-dir = "baked"

[[entry]]
key = "grass"
path = "textures/grass.png"
wrap = "repeat"
max-dimension = 512

[[entry]]
path = "textures/rock.png"
`)

	m, err := loadManifest(path)
	if err != nil {
		t.Fatalf("loadManifest() error: %v", err)
	}

	if m.Size != 2048 || m.MaxPageCount != 8 || m.BlockSize != 32 || m.OutDir != "baked" {
		t.Errorf("unexpected manifest header: %+v", m)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(m.Entries))
	}
	if m.Entries[0].Key != "grass" || m.Entries[0].Wrap != "repeat" || m.Entries[0].MaxDimension != 512 {
		t.Errorf("unexpected first entry: %+v", m.Entries[0])
	}
	if m.Entries[1].Key != "" || m.Entries[1].Path != "textures/rock.png" {
		t.Errorf("unexpected second entry: %+v", m.Entries[1])
	}

	mip, err := m.mipOption()
	if err != nil {
		t.Fatalf("mipOption() error: %v", err)
	}
	if got, want := mip.String(), "MipWithBlock(Lanczos3, 32)"; got != want {
		t.Errorf("mipOption() = %s, want %s", got, want)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := loadManifest(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("loadManifest() succeeded, want error for missing file")
	}
}

func TestManifestMipOption(t *testing.T) {
	tests := []struct {
		name    string
		m       Manifest
		want    string
		wantErr bool
	}{
		{name: "default none", m: Manifest{}, want: "NoMip"},
		{name: "none", m: Manifest{Mip: "none"}, want: "NoMip"},
		{name: "padding", m: Manifest{Mip: "padding", Padding: 8}, want: "NoMipWithPadding(8)"},
		{name: "mip", m: Manifest{Mip: "mip", Filter: "cubic"}, want: "Mip(Cubic)"},
		{name: "mip-padding", m: Manifest{Mip: "mip-padding", Filter: "linear", Padding: 4}, want: "MipWithPadding(Linear, 4)"},
		{name: "block", m: Manifest{Mip: "block", Filter: "gaussian", BlockSize: 16}, want: "MipWithBlock(Gaussian, 16)"},
		{name: "unknown mode", m: Manifest{Mip: "smart"}, wantErr: true},
		{name: "unknown filter", m: Manifest{Mip: "mip", Filter: "box"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mip, err := tt.m.mipOption()
			if tt.wantErr {
				if err == nil {
					t.Fatal("mipOption() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("mipOption() error: %v", err)
			}
			if got := mip.String(); got != tt.want {
				t.Errorf("mipOption() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseWrap(t *testing.T) {
	tests := []struct {
		in      string
		want    atlas.WrapMode
		wantErr bool
	}{
		{in: "", want: atlas.WrapClamp},
		{in: "clamp", want: atlas.WrapClamp},
		{in: "repeat", want: atlas.WrapRepeat},
		{in: "mirror", want: atlas.WrapMirror},
		{in: "tile", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseWrap(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseWrap(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseWrap(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseWrap(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
