package material

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"git.sr.ht/~gioverse/stretch/debug"
	"git.sr.ht/~gioverse/stretch/ninepatch"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// ButtonStyle lays out a clickable 9-Patch surface holding an optional icon
// and a label.
type ButtonStyle struct {
	Surface *ninepatch.Surface
	Button  *widget.Clickable
	Icon    *widget.Icon
	Label   material.LabelStyle
	// IconSize specifies the edge length of the icon.
	IconSize unit.Dp
	// Overlay tints the stretched rows and columns when set.
	Overlay bool
}

// Button constructs a ButtonStyle with the theme's contrast colors.
func Button(
	th *material.Theme,
	surface *ninepatch.Surface,
	btn *widget.Clickable,
	icon *widget.Icon,
	txt string,
) ButtonStyle {
	lb := material.Body1(th, txt)
	lb.Color = th.ContrastFg
	return ButtonStyle{
		Surface:  surface,
		Button:   btn,
		Icon:     icon,
		Label:    lb,
		IconSize: unit.Dp(20),
	}
}

// Layout the button.
func (b ButtonStyle) Layout(gtx C) D {
	return b.Button.Layout(gtx, func(gtx C) D {
		dims := b.Surface.Layout(gtx, func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return layout.Flex{
				Axis:      layout.Horizontal,
				Alignment: layout.Middle,
			}.Layout(
				gtx,
				layout.Rigid(func(gtx C) D {
					if b.Icon == nil {
						return D{}
					}
					sz := gtx.Dp(b.IconSize)
					gtx.Constraints.Min = image.Pt(sz, sz)
					return layout.Inset{Right: unit.Dp(6)}.Layout(gtx, func(gtx C) D {
						return b.Icon.Layout(gtx, b.Label.Color)
					})
				}),
				layout.Rigid(b.Label.Layout),
			)
		})
		if b.Overlay {
			debug.Patches(gtx, b.Surface.NinePatch, dims.Size)
		}
		return dims
	})
}
