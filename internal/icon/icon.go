// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package icon generates app icons of several sizes from a single master
// image.
//
// The master image may be in PNG, JPEG, GIF, BMP, TIFF or WebP format. All
// generated icons are PNG files.
package icon

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	// Register decoders for the supported master image formats.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.astrophena.name/appicon/internal/logger"
)

// MasterSize is the expected width and height of the master image.
const MasterSize = 1024

// Config represents a resize configuration.
type Config struct {
	// Input is the path of the master image.
	Input string
	// Dir is the directory where to write icons. It's created if it doesn't
	// exist. If empty, uses the directory of Input.
	Dir string
	// Table lists the icons to generate. If nil, uses IOS.
	Table Table
	// Filter is the resampling filter. The zero value means Lanczos3.
	Filter Filter
	// Logf is used to report progress. If nil, uses log.Printf.
	Logf logger.Logf
}

func (c *Config) setDefaults() {
	if c.Dir == "" {
		c.Dir = filepath.Dir(c.Input)
	}
	if c.Table == nil {
		c.Table = IOS
	}
	if c.Filter.scale == nil {
		c.Filter = Lanczos3
	}
	if c.Logf == nil {
		c.Logf = logger.Logf(log.Printf)
	}
}

// Resize generates every icon listed in the table from the master image.
//
// Any error aborts the whole run. Icons written before the error are left
// on disk.
func Resize(c *Config) error {
	c.setDefaults()

	if err := c.Table.Validate(); err != nil {
		return err
	}

	img, err := decode(c.Input)
	if err != nil {
		return err
	}

	if b := img.Bounds(); b.Dx() != MasterSize || b.Dy() != MasterSize {
		c.Logf("Warning: Input image is %dx%d, expected %dx%d", b.Dx(), b.Dy(), MasterSize, MasterSize)
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, e := range c.Table {
		if err := write(filepath.Join(c.Dir, e.Name), c.Filter.apply(img, e.Size)); err != nil {
			return err
		}
		c.Logf("✓ Created %s (%dx%d)", e.Name, e.Size, e.Size)
	}

	c.Logf("")
	c.Logf("✓ Successfully generated %d icon sizes", len(c.Table))
	return nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func write(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
