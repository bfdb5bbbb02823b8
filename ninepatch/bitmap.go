package ninepatch

import (
	"bytes"
	"image"
	"image/color"
)

// Bitmap is a linear pixel buffer of 4 bytes per pixel stored in B, G, R, A
// order. Alpha is not premultiplied.
type Bitmap struct {
	// Pix holds the pixel data. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*4].
	Pix []uint8
	// Stride is the distance in bytes between vertically adjacent pixels.
	Stride int
	// Rect is the bitmap's bounds.
	Rect image.Rectangle
}

// NewBitmap allocates a fully transparent Bitmap with the given bounds.
func NewBitmap(r image.Rectangle) *Bitmap {
	return &Bitmap{
		Pix:    make([]uint8, 4*r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

// FromImage copies src into a new Bitmap anchored at the origin.
//
// *image.NRGBA sources are swizzled directly, everything else goes through
// color.NRGBAModel.
func FromImage(src image.Image) *Bitmap {
	var (
		b   = src.Bounds()
		dst = NewBitmap(image.Rectangle{Max: b.Size()})
	)
	if nrgba, ok := src.(*image.NRGBA); ok {
		for yy := 0; yy < b.Dy(); yy++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y+yy):]
			out := dst.Pix[yy*dst.Stride:]
			for xx := 0; xx < b.Dx(); xx++ {
				s := row[xx*4 : xx*4+4 : xx*4+4]
				d := out[xx*4 : xx*4+4 : xx*4+4]
				d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
			}
		}
		return dst
	}
	for yy := 0; yy < b.Dy(); yy++ {
		for xx := 0; xx < b.Dx(); xx++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+xx, b.Min.Y+yy)).(color.NRGBA)
			dst.SetBGRA(xx, yy, c.B, c.G, c.R, c.A)
		}
	}
	return dst
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (b *Bitmap) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x-b.Rect.Min.X)*4
}

// BGRAAt returns the raw bytes of the pixel at (x, y). Pixels outside the
// bounds read as transparent black.
func (b *Bitmap) BGRAAt(x, y int) (blue, green, red, alpha uint8) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return 0, 0, 0, 0
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+4 : i+4]
	return s[0], s[1], s[2], s[3]
}

// SetBGRA writes the raw bytes of the pixel at (x, y). Writes outside the
// bounds are ignored.
func (b *Bitmap) SetBGRA(x, y int, blue, green, red, alpha uint8) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = blue, green, red, alpha
}

// Crop copies the pixels within r into a new Bitmap anchored at the origin.
// r is intersected with the bitmap bounds first.
func (b *Bitmap) Crop(r image.Rectangle) *Bitmap {
	r = r.Intersect(b.Rect)
	out := NewBitmap(image.Rectangle{Max: r.Size()})
	for yy := 0; yy < r.Dy(); yy++ {
		i := b.PixOffset(r.Min.X, r.Min.Y+yy)
		copy(out.Pix[yy*out.Stride:(yy+1)*out.Stride], b.Pix[i:i+out.Stride])
	}
	return out
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		Pix:    append([]uint8(nil), b.Pix...),
		Stride: b.Stride,
		Rect:   b.Rect,
	}
}

// Equal reports whether both bitmaps have the same size and pixel content.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.Rect.Size() != o.Rect.Size() {
		return false
	}
	rowlen := 4 * b.Rect.Dx()
	for yy := 0; yy < b.Rect.Dy(); yy++ {
		if !bytes.Equal(b.Pix[yy*b.Stride:yy*b.Stride+rowlen], o.Pix[yy*o.Stride:yy*o.Stride+rowlen]) {
			return false
		}
	}
	return true
}

// ToNRGBA converts the bitmap to an *image.NRGBA with the same bounds.
// Gio uses a fast path for this type.
func (b *Bitmap) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(b.Rect)
	for yy := b.Rect.Min.Y; yy < b.Rect.Max.Y; yy++ {
		for xx := b.Rect.Min.X; xx < b.Rect.Max.X; xx++ {
			s := b.Pix[b.PixOffset(xx, yy):]
			d := out.Pix[out.PixOffset(xx, yy):]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
		}
	}
	return out
}

func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}

func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

func (b *Bitmap) At(x, y int) color.Color {
	blue, green, red, alpha := b.BGRAAt(x, y)
	return color.NRGBA{R: red, G: green, B: blue, A: alpha}
}
