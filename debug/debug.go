/*
Package debug provides tools for debugging 9-Patch layout code.
*/
package debug

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	colorful "github.com/lucasb-eyer/go-colorful"

	"git.sr.ht/~gioverse/stretch/ninepatch"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Outline traces a small black outline around the provided widget.
func Outline(gtx C, w func(gtx C) D) D {
	return widget.Border{
		Color: color.NRGBA{A: 255},
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}

// Patches tints the columns and rows of a surface of the given size that are
// copies of stretch markers and outlines the surface. Each marker gets its own
// hue so repeated runs are easy to tell apart.
func Patches(gtx C, np *ninepatch.NinePatch, size image.Point) D {
	gtx.Constraints = layout.Exact(size)
	return Outline(gtx, func(gtx C) D {
		xs, ys, err := np.Mapping(size.X, size.Y)
		if err != nil {
			return D{Size: size}
		}
		p := np.Patches()
		for x, col := range runs(xs, p.Top) {
			fill(gtx, image.Rect(col.Min, 0, col.Max, size.Y), tint(x, len(p.Top)))
		}
		for y, row := range runs(ys, p.Left) {
			fill(gtx, image.Rect(0, row.Min, size.X, row.Max), tint(y, len(p.Left)))
		}
		return D{Size: size}
	})
}

// span is a half open range of output coordinates.
type span struct {
	Min, Max int
}

// runs returns, for every patch in order, the output span that copies it.
func runs(mapping, patches []int) []span {
	out := make([]span, 0, len(patches))
	next := 0
	for ii := 0; ii < len(mapping) && next < len(patches); ii++ {
		if mapping[ii] != patches[next] {
			continue
		}
		s := span{Min: ii, Max: ii + 1}
		for s.Max < len(mapping) && mapping[s.Max] == patches[next] {
			s.Max++
		}
		out = append(out, s)
		ii = s.Max - 1
		next++
	}
	return out
}

// tint picks a translucent color for the nth of count patches.
func tint(n, count int) color.NRGBA {
	hue := 360 * float64(n) / float64(count)
	r, g, b := colorful.Hsv(hue, 0.7, 0.95).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0x60}
}

func fill(gtx C, r image.Rectangle, c color.NRGBA) {
	defer clip.Rect(r).Push(gtx.Ops).Pop()
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
