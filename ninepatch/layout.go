package ninepatch

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"git.sr.ht/~gioverse/stretch/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Surface is a 9-Patch themed rectangle container that lays content in the
// content area.
type Surface struct {
	*NinePatch
	// size is the size of the baked image op.
	size image.Point
	img  widget.CachedImage
}

// NewSurface wraps np for layout.
func NewSurface(np *NinePatch) *Surface {
	return &Surface{NinePatch: np}
}

// Invalidate drops every cached rendering, including the image uploaded to
// the GPU. Call it when the container is resized.
func (s *Surface) Invalidate() {
	s.ClearCache()
	s.img.Reset()
	s.size = image.Point{}
}

// Layout content atop the 9-Patch surface. The surface fills at least the
// minimum constraints and grows to fit the content plus padding, but never
// along an axis without stretch markers. The image is painted at that size
// while the reported dimensions are clamped to the constraints, so a surface
// that cannot stretch or shrink far enough leaves blank space or overflows.
func (s *Surface) Layout(gtx C, w layout.Widget) D {
	var (
		pad   = s.Padding()
		grid  = s.Grid()
		inset = layout.Inset{
			Top:    px(gtx, pad.Top),
			Right:  px(gtx, pad.Right),
			Bottom: px(gtx, pad.Bottom),
			Left:   px(gtx, pad.Left),
		}
	)
	macro := op.Record(gtx.Ops)
	dims := inset.Layout(gtx, w)
	content := macro.Stop()

	sz := dims.Size
	if sz.X < gtx.Constraints.Min.X {
		sz.X = gtx.Constraints.Min.X
	}
	if sz.Y < gtx.Constraints.Min.Y {
		sz.Y = gtx.Constraints.Min.Y
	}
	sz = grid.Constrain(sz)
	s.paint(gtx, sz)
	content.Add(gtx.Ops)
	return D{Size: gtx.Constraints.Constrain(sz), Baseline: dims.Baseline}
}

// paint the surface rendered at sz.
func (s *Surface) paint(gtx C, sz image.Point) {
	if sz != s.size {
		img, err := s.SizeOf(sz.X, sz.Y)
		if err != nil {
			Logger().Warn("ninepatch: rendering surface, using original",
				"width", sz.X, "height", sz.Y, "err", err)
			img = s.interior
		}
		s.img.Cache(img)
		s.size = sz
	}
	defer clip.Rect{Max: sz}.Push(gtx.Ops).Pop()
	s.img.Op().Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// px converts pixels to device independent pixels for the current metric.
func px(gtx C, v int) unit.Dp {
	if gtx.Metric.PxPerDp == 0 {
		return unit.Dp(v)
	}
	return unit.Dp(float32(v) / gtx.Metric.PxPerDp)
}
