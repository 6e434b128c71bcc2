// Package resources embeds the textures both scenes load.
package resources

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
)

//go:embed game-scene/*.png menu-scene/*.png
var files embed.FS

// FS returns the embedded texture files, keyed by asset table path.
func FS() fs.FS {
	return files
}

// DecodeConfig reads the dimensions of the image at path without decoding
// its pixels.
func DecodeConfig(fsys fs.FS, path string) (image.Config, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads the image at path.
func Decode(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
