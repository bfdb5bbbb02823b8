// Package ninepatch renders stretchable bitmaps in 9-Patch format.
// https://developer.android.com/guide/topics/graphics/drawables#nine-patch
//
// A 9-Patch source carries a 1px border of metadata. Opaque black pixels on
// the top and left edges mark the columns and rows that are repeated when
// the image is rendered larger than its interior. Every other column and row
// is copied verbatim, which keeps corners and edges crisp.
//
// A NinePatch is not safe for concurrent use.
package ninepatch

import (
	"fmt"
	"image"
)

// NinePatch renders a 9-Patch source at arbitrary sizes, caching every
// rendered size until ClearCache is called.
type NinePatch struct {
	patches  Patches
	interior *Bitmap
	cache    map[image.Point]*Bitmap
}

// New detects the stretch markers of src and prepares it for rendering.
// src is not retained.
func New(src *Bitmap) (*NinePatch, error) {
	patches, err := Detect(src)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	return &NinePatch{
		patches:  patches,
		interior: src.Crop(image.Rect(b.Min.X+1, b.Min.Y+1, b.Max.X-1, b.Max.Y-1)),
		cache:    make(map[image.Point]*Bitmap),
	}, nil
}

// SizeOf renders the image at width x height.
//
// Sizes smaller than the interior are raised to the interior size. When the
// result is exactly the interior size the interior itself is returned and
// nothing is cached. Every other result is cached under the requested size.
//
// Returned bitmaps are shared with the cache and must not be modified.
func (np *NinePatch) SizeOf(width, height int) (*Bitmap, error) {
	key := image.Point{X: width, Y: height}
	if img, ok := np.cache[key]; ok {
		Logger().Debug("ninepatch: cache hit", "width", width, "height", height)
		return img, nil
	}
	var (
		size   = np.interior.Rect.Size()
		target = image.Point{X: max(width, size.X), Y: max(height, size.Y)}
	)
	if target == size {
		return np.interior, nil
	}
	if tooLarge(target) {
		return nil, fmt.Errorf("ninepatch: rendering %dx%d: %w", target.X, target.Y, ErrOutOfMemory)
	}
	xmap, ymap, err := np.mapping(target)
	if err != nil {
		return nil, err
	}
	out := gather(np.interior, xmap, ymap)
	np.cache[key] = out
	Logger().Debug("ninepatch: rendered",
		"width", width, "height", height,
		"target_width", target.X, "target_height", target.Y,
		"cached", len(np.cache))
	return out, nil
}

// Mapping returns the index tables SizeOf uses to render at width x height:
// output column x copies interior column xs[x] and output row y copies
// interior row ys[y]. Sizes are clamped the same way SizeOf clamps them.
func (np *NinePatch) Mapping(width, height int) (xs, ys []int, err error) {
	size := np.Size()
	return np.mapping(image.Point{X: max(width, size.X), Y: max(height, size.Y)})
}

func (np *NinePatch) mapping(target image.Point) (xs, ys []int, err error) {
	size := np.Size()
	xs, err = buildMapping(target.X-size.X, target.X, np.patches.Top)
	if err != nil {
		return nil, nil, fmt.Errorf("ninepatch: stretching to width %d: %w", target.X, err)
	}
	ys, err = buildMapping(target.Y-size.Y, target.Y, np.patches.Left)
	if err != nil {
		return nil, nil, fmt.Errorf("ninepatch: stretching to height %d: %w", target.Y, err)
	}
	return xs, ys, nil
}

// gather copies src into a new bitmap of len(xmap) x len(ymap) pixels, where
// output pixel (x, y) is source pixel (xmap[x], ymap[y]).
func gather(src *Bitmap, xmap, ymap []int) *Bitmap {
	out := NewBitmap(image.Rect(0, 0, len(xmap), len(ymap)))
	for yy, sy := range ymap {
		row := out.Pix[yy*out.Stride : (yy+1)*out.Stride]
		if yy > 0 && ymap[yy-1] == sy {
			copy(row, out.Pix[(yy-1)*out.Stride:yy*out.Stride])
			continue
		}
		for xx, sx := range xmap {
			i := src.PixOffset(src.Rect.Min.X+sx, src.Rect.Min.Y+sy)
			copy(row[xx*4:xx*4+4], src.Pix[i:i+4])
		}
	}
	return out
}

// ClearCache drops every cached rendering. Detection is not repeated.
func (np *NinePatch) ClearCache() {
	Logger().Debug("ninepatch: cache cleared", "entries", len(np.cache))
	np.cache = make(map[image.Point]*Bitmap)
}

// Cached returns the number of cached renderings.
func (np *NinePatch) Cached() int {
	return len(np.cache)
}

// Original returns a copy of the interior image, the source without its
// metadata border. The caller owns the copy.
func (np *NinePatch) Original() *Bitmap {
	return np.interior.Clone()
}

// Size returns the interior size.
func (np *NinePatch) Size() image.Point {
	return np.interior.Rect.Size()
}

// Patches returns a copy of the detected stretch markers.
func (np *NinePatch) Patches() Patches {
	return np.patches.clone()
}

// Grid summarises the stretch behaviour along both axes.
func (np *NinePatch) Grid() Grid {
	return Grid{
		Size: np.Size(),
		Stretch: image.Point{
			X: len(np.patches.Top),
			Y: len(np.patches.Left),
		},
	}
}

// Inset is a padding in pixels.
type Inset struct {
	Top, Right, Bottom, Left int
}

// Padding returns the content padding described by the bottom and right
// markers, relative to the interior: content sits between the first and
// last marker on each of those edges. Axes without markers have no padding.
//
// Padding never influences SizeOf.
func (np *NinePatch) Padding() Inset {
	var (
		in   Inset
		size = np.Size()
	)
	if b := np.patches.Bottom; len(b) > 0 {
		in.Left = b[0]
		in.Right = size.X - 1 - b[len(b)-1]
	}
	if r := np.patches.Right; len(r) > 0 {
		in.Top = r[0]
		in.Bottom = size.Y - 1 - r[len(r)-1]
	}
	return in
}
