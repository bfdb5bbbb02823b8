package ninepatch

import (
	"errors"
	"image"
)

var (
	// ErrInvalidImage is returned for source bitmaps too small to hold the
	// 1px metadata border (less than 2x2 pixels).
	ErrInvalidImage = errors.New("ninepatch: invalid image")
	// ErrDegenerateStretch is returned when a size larger than the interior
	// is requested along an axis without any stretch markers.
	ErrDegenerateStretch = errors.New("ninepatch: degenerate stretch")
	// ErrOutOfMemory is returned when an output buffer cannot be allocated.
	ErrOutOfMemory = errors.New("ninepatch: out of memory")
)

// MaxPixels bounds the size of a single rendered bitmap. Requests above it
// fail with ErrOutOfMemory instead of attempting the allocation.
const MaxPixels = 1 << 28

// tooLarge reports whether sz holds more than MaxPixels pixels. The bound is
// tested by division so that the product never overflows int.
func tooLarge(sz image.Point) bool {
	if sz.X > MaxPixels || sz.Y > MaxPixels {
		return true
	}
	return sz.Y > 0 && sz.X > MaxPixels/sz.Y
}
