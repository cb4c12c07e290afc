// Command atlasgen bakes texture atlases from a TOML manifest.
package main

import (
	"os"

	"github.com/GossiperLoturot/image-atlas/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
