// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icon

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Entry is a single output of the resizer: a square icon Size pixels wide
// written to a file called Name.
type Entry struct {
	Size int
	Name string
}

// Table is an ordered list of entries. Icons are generated in table order.
type Table []Entry

// IOS is the set of icons required to package an iOS app.
var IOS = Table{
	{Size: 1024, Name: "icon_1024.png"}, // App Store
	{Size: 180, Name: "icon_180.png"},   // iPhone @3x 60pt
	{Size: 120, Name: "icon_120.png"},   // iPhone @2x 60pt
	{Size: 80, Name: "icon_80.png"},     // iPad @2x 40pt, Spotlight
	{Size: 60, Name: "icon_60.png"},     // iPad @1x 60pt
	{Size: 40, Name: "icon_40.png"},     // Notification @2x 20pt
}

// MaxSize is the largest icon size a table may request.
const MaxSize = 8192

// Possible errors, used in tests.
var (
	errTableEmpty    = errors.New("size table is empty")
	errSizeInvalid   = errors.New("icon size must be positive")
	errSizeTooLarge  = errors.New("icon size is too large")
	errNameEmpty     = errors.New("icon file name is empty")
	errNameHasDir    = errors.New("icon file name must not contain directories")
	errNameDuplicate = errors.New("duplicate icon file name")
)

// Validate reports whether t can be used to generate icons. Sizes larger
// than the master image are allowed up to MaxSize.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errTableEmpty
	}
	seen := make(map[string]bool, len(t))
	for _, e := range t {
		switch {
		case e.Size <= 0:
			return fmt.Errorf("%w: %q has size %d", errSizeInvalid, e.Name, e.Size)
		case e.Size > MaxSize:
			return fmt.Errorf("%w: %q has size %d, max is %d", errSizeTooLarge, e.Name, e.Size, MaxSize)
		case e.Name == "":
			return fmt.Errorf("%w (size %d)", errNameEmpty, e.Size)
		case filepath.Base(e.Name) != e.Name || e.Name == "." || e.Name == "..":
			return fmt.Errorf("%w: %q", errNameHasDir, e.Name)
		case seen[e.Name]:
			return fmt.Errorf("%w: %q", errNameDuplicate, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}
