package ninepatch

import (
	"fmt"
	"image"

	"gioui.org/layout"
)

// Patches lists the stretch markers found along each side of the border.
// Indices are relative to the interior image (source index minus one) and
// sorted in increasing order.
//
// Only Top and Left drive rendering. Bottom and Right are reported for
// inspection and content padding.
type Patches struct {
	Top, Left, Bottom, Right []int
}

// clone returns a deep copy of the patch lists.
func (p Patches) clone() Patches {
	dup := func(s []int) []int {
		if s == nil {
			return nil
		}
		return append([]int(nil), s...)
	}
	return Patches{
		Top:    dup(p.Top),
		Left:   dup(p.Left),
		Bottom: dup(p.Bottom),
		Right:  dup(p.Right),
	}
}

// Detect reads the stretch markers from the 1px border of src.
//
// A border pixel is a marker only if it is exactly opaque black. Corner
// pixels are never inspected.
func Detect(src *Bitmap) (Patches, error) {
	b := src.Bounds()
	if b.Dx() < 2 || b.Dy() < 2 {
		return Patches{}, fmt.Errorf("detecting patches in %dx%d bitmap: %w", b.Dx(), b.Dy(), ErrInvalidImage)
	}
	return Patches{
		Top:    walk(src, b.Min.Y, layout.Horizontal),
		Bottom: walk(src, b.Max.Y-1, layout.Horizontal),
		Left:   walk(src, b.Min.X, layout.Vertical),
		Right:  walk(src, b.Max.X-1, layout.Vertical),
	}, nil
}

// walk pixels along the main axis at the given cross axis offset, skipping
// the corners, returning the interior index of every marker.
func walk(src *Bitmap, offset int, axis layout.Axis) []int {
	var (
		b       = src.Bounds()
		start   = axis.Convert(b.Min).X
		end     = axis.Convert(b.Max).X
		patches []int
	)
	for ii := start + 1; ii < end-1; ii++ {
		pt := axis.Convert(image.Point{X: ii, Y: offset})
		if isMarker(src.BGRAAt(pt.X, pt.Y)) {
			patches = append(patches, ii-start-1)
		}
	}
	return patches
}

func isMarker(blue, green, red, alpha uint8) bool {
	return blue == 0 && green == 0 && red == 0 && alpha == 255
}
