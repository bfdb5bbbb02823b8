package layout

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/x/component"
)

// Backdrop fills the maximum constraints with a solid color and lays the
// widget on top of it.
type Backdrop color.NRGBA

func (bg Backdrop) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	component.Rect{
		Size:  gtx.Constraints.Max,
		Color: color.NRGBA(bg),
	}.Layout(gtx)
	return w(gtx)
}
