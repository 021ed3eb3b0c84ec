// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icon

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Filter is a resampling filter used to scale the master image.
type Filter struct {
	name  string
	scale func(src image.Image, size int) image.Image
}

// String returns the name of the filter, as accepted by ParseFilter.
func (f Filter) String() string {
	if f.name == "" {
		return Lanczos3.name
	}
	return f.name
}

func (f Filter) apply(src image.Image, size int) image.Image {
	if f.scale == nil {
		return Lanczos3.scale(src, size)
	}
	return f.scale(src, size)
}

// Available filters. Lanczos3 is the default.
var (
	Lanczos3       = nfntFilter("lanczos3", resize.Lanczos3)
	Lanczos2       = nfntFilter("lanczos2", resize.Lanczos2)
	Mitchell       = nfntFilter("mitchell", resize.MitchellNetravali)
	Bicubic        = nfntFilter("bicubic", resize.Bicubic)
	Bilinear       = nfntFilter("bilinear", resize.Bilinear)
	Nearest        = nfntFilter("nearest", resize.NearestNeighbor)
	CatmullRom     = drawFilter("catmullrom", draw.CatmullRom)
	ApproxBiLinear = drawFilter("approxbilinear", draw.ApproxBiLinear)
)

var filters = []Filter{
	Lanczos3,
	Lanczos2,
	Mitchell,
	Bicubic,
	Bilinear,
	Nearest,
	CatmullRom,
	ApproxBiLinear,
}

var errUnknownFilter = errors.New("unknown filter")

// ParseFilter returns the filter called name. Names are case-insensitive.
func ParseFilter(name string) (Filter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	i := slices.IndexFunc(filters, func(f Filter) bool { return f.name == name })
	if i < 0 {
		return Filter{}, fmt.Errorf("%w %q (available: %s)", errUnknownFilter, name, strings.Join(FilterNames(), ", "))
	}
	return filters[i], nil
}

// FilterNames returns the names of all available filters.
func FilterNames() []string {
	names := make([]string, len(filters))
	for i, f := range filters {
		names[i] = f.name
	}
	return names
}

func nfntFilter(name string, interp resize.InterpolationFunction) Filter {
	return Filter{
		name: name,
		scale: func(src image.Image, size int) image.Image {
			return resize.Resize(uint(size), uint(size), src, interp)
		},
	}
}

func drawFilter(name string, s draw.Scaler) Filter {
	return Filter{
		name: name,
		scale: func(src image.Image, size int) image.Image {
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			s.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
			return dst
		},
	}
}
