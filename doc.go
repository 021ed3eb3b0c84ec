// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package appicon generates app icons from a single master image.

# Directory Structure

	cmd/resize-icons     The resize-icons command.
	internal/icon        Resizing the master image and writing the icons.
	internal/sizetable   Loading size tables from Starlark files.
	internal/watch       Regenerating icons when the master image changes.
*/
package appicon
