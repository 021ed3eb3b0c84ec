// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Resize-icons generates iOS app icons from a 1024×1024 master icon.

# Usage

	$ resize-icons [flags] <master_icon_path>

The master icon is resized to each of the sizes required by the App Store
and iOS devices, and the results are saved as PNG images next to the
master icon:

	icon_1024.png  App Store
	icon_180.png   iPhone @3x 60pt
	icon_120.png   iPhone @2x 60pt
	icon_80.png    iPad @2x 40pt, Spotlight
	icon_60.png    iPad @1x 60pt
	icon_40.png    Notification @2x 20pt

Existing files with these names are overwritten. A master icon of another
size is accepted with a warning.

The master icon may be a PNG, JPEG, GIF, BMP, TIFF or WebP image.

# Flags

The -filter flag selects the resampling filter. Lanczos3 is used by
default; run with -filter=help to list the others.

The -sizes flag replaces the built-in size table with one loaded from a
Starlark file that defines a sizes dict:

	sizes = {
	    1024: "icon_1024.png",
	    512: "icon_512.png",
	}

With -watch, resize-icons keeps running and regenerates the icons each
time the master icon changes. It refuses to watch a master icon that one
of the generated icons would overwrite, such as icon_1024.png with the
built-in size table.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
