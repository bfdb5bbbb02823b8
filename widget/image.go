package widget

import (
	"image"

	"gioui.org/op/paint"
)

// CachedImage is a cacheable image operation.
type CachedImage struct {
	op  paint.ImageOp
	src image.Image
}

// ToNRGBA can render an image.NRGBA image.
type ToNRGBA interface {
	ToNRGBA() *image.NRGBA
}

// Cache the image operation for src.
//
// The operation is only recomputed when src differs from the image of the
// previous call or after a Reset.
//
// If src implements ToNRGBA, the *image.NRGBA is uploaded instead. This is an
// optimization since Gio uses a fast-path for image.NRGBA images.
func (img *CachedImage) Cache(src image.Image) {
	if src == nil || (img.src == src && img.op != (paint.ImageOp{})) {
		return
	}
	img.src = src
	if nrgba, ok := src.(ToNRGBA); ok {
		img.op = paint.NewImageOp(nrgba.ToNRGBA())
		return
	}
	img.op = paint.NewImageOp(src)
}

// Reset forgets the cached operation so the next call to Cache recomputes
// it.
func (img *CachedImage) Reset() {
	*img = CachedImage{}
}

// Op returns the concrete image operation.
func (img CachedImage) Op() paint.ImageOp {
	return img.op
}
