// Package example is a playground for toying with and showcasing 9-Patch.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	lorem "github.com/drhodes/golorem"
	"golang.org/x/exp/shiny/materialdesign/icons"

	applayout "git.sr.ht/~gioverse/stretch/layout"
	"git.sr.ht/~gioverse/stretch/ninepatch"
	"git.sr.ht/~gioverse/stretch/profile"
	appmaterial "git.sr.ht/~gioverse/stretch/widget/material"
)

var (
	// profileOpt specifies what to profile.
	profileOpt string
	// verbose enables debug logging of the 9-Patch cache.
	verbose bool
)

func init() {
	flag.StringVar(&profileOpt, "profile", "none", fmt.Sprintf("create the provided kind of profile. Use one of %v", profile.Options))
	flag.BoolVar(&verbose, "debug", false, "log 9-Patch rendering to stderr")
}

func main() {
	flag.Parse()
	if verbose {
		ninepatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	opt, err := profile.Parse(profileOpt)
	if err != nil {
		log.Fatalf("parsing flags: %v", err)
	}
	ui, err := NewUI()
	if err != nil {
		log.Fatalf("loading 9-Patch skins: %v", err)
	}
	go func() {
		w := app.NewWindow(
			app.Title("9-Patch"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)
		if err := ui.Run(w, opt); err != nil {
			fmt.Fprintf(os.Stderr, "error: premature window close: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}

type (
	C = layout.Context
	D = layout.Dimensions
)

// th is the active theme object.
var th = material.NewTheme(gofont.Collection())

// Button is a demo button drawn on a 9-Patch skin.
type Button struct {
	Surface *ninepatch.Surface
	Icon    *widget.Icon
	Label   string
	Click   widget.Clickable
	Presses int
}

// UI manages the state for the entire application's UI.
type UI struct {
	Buttons []*Button
	// Width and Height control the minimum size of the buttons, as a
	// fraction of the available space.
	Width, Height widget.Float
	// Overlay toggles tinting of the stretched rows and columns.
	Overlay widget.Bool
	// size is the window size of the previous frame.
	size image.Point
}

// NewUI decodes the 9-Patch skins and wires one button to each.
func NewUI() (*UI, error) {
	ui := &UI{
		Width:  widget.Float{Value: 0.3},
		Height: widget.Float{Value: 0.1},
	}
	for ii, data := range [][]byte{
		icons.ActionDone,
		icons.NavigationCancel,
		icons.ActionInfo,
	} {
		np, err := ninepatch.New(skins[ii].Bitmap())
		if err != nil {
			return nil, fmt.Errorf("skin %d: %w", ii, err)
		}
		icon, err := widget.NewIcon(data)
		if err != nil {
			return nil, fmt.Errorf("icon %d: %w", ii, err)
		}
		ui.Buttons = append(ui.Buttons, &Button{
			Surface: ninepatch.NewSurface(np),
			Icon:    icon,
			Label:   lorem.Word(3, 8),
		})
	}
	return ui, nil
}

// Run handles window events and renders the application.
func (ui *UI) Run(w *app.Window, opt profile.Opt) error {
	profiler := opt.Start()
	defer profiler.Stop()
	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			if e.Size != ui.size {
				ui.Resized()
				ui.size = e.Size
			}
			gtx := layout.NewContext(&ops, e)
			profiler.Record(gtx)
			ui.Layout(gtx)
			e.Frame(&ops)
		}
	}
	return nil
}

// Resized drops every cached rendering; the old sizes are unlikely to be
// requested again.
func (ui *UI) Resized() {
	for _, b := range ui.Buttons {
		b.Surface.Invalidate()
	}
}

// Layout the application UI.
func (ui *UI) Layout(gtx C) D {
	for _, b := range ui.Buttons {
		for b.Click.Clicked() {
			b.Presses++
			b.Label = lorem.Word(3, 8)
		}
	}
	return applayout.Backdrop(th.Bg).Layout(gtx, func(gtx C) D {
		return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
			return layout.Flex{
				Axis: layout.Vertical,
			}.Layout(
				gtx,
				layout.Rigid(func(gtx C) D {
					return layout.Center.Layout(gtx, material.H4(th, "9-Patch Demo").Layout)
				}),
				layout.Rigid(ui.layoutControls),
				layout.Rigid(func(gtx C) D {
					return layout.Inset{Top: unit.Dp(10), Bottom: unit.Dp(10)}.Layout(gtx, component.Divider(th).Layout)
				}),
				layout.Flexed(1, ui.layoutDemo),
			)
		})
	})
}

func (ui *UI) layoutControls(gtx C) D {
	var (
		width  = int(ui.Width.Value * float32(gtx.Constraints.Max.X))
		height = int(ui.Height.Value * float32(gtx.Constraints.Max.Y))
	)
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(
		gtx,
		layout.Rigid(func(gtx C) D {
			return LabeledSliderStyle{
				Label:  material.Body1(th, fmt.Sprintf("Minimum width: %dpx", width)),
				Slider: material.Slider(th, &ui.Width, 0, 1),
			}.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return LabeledSliderStyle{
				Label:  material.Body1(th, fmt.Sprintf("Minimum height: %dpx", height)),
				Slider: material.Slider(th, &ui.Height, 0, 1),
			}.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return material.CheckBox(th, &ui.Overlay, "Show stretched regions").Layout(gtx)
		}),
	)
}

func (ui *UI) layoutDemo(gtx C) D {
	var (
		items = make([]layout.FlexChild, 0, len(ui.Buttons))
		minSz = image.Point{
			X: int(ui.Width.Value * float32(gtx.Constraints.Max.X)),
			Y: int(ui.Height.Value * float32(gtx.Constraints.Max.Y)),
		}
	)
	for _, b := range ui.Buttons {
		b := b
		items = append(items, layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min = gtx.Constraints.Constrain(minSz)
				btn := appmaterial.Button(th, b.Surface, &b.Click, b.Icon, fmt.Sprintf("%s (%d)", b.Label, b.Presses))
				btn.Overlay = ui.Overlay.Value
				return btn.Layout(gtx)
			})
		}))
	}
	return layout.Center.Layout(gtx, func(gtx C) D {
		return layout.Flex{
			Axis:      layout.Vertical,
			Alignment: layout.Middle,
		}.Layout(gtx, items...)
	})
}

// LabeledSliderStyle draws a slider with a label.
type LabeledSliderStyle struct {
	Label  material.LabelStyle
	Slider material.SliderStyle
}

func (slider LabeledSliderStyle) Layout(gtx C) D {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(
		gtx,
		layout.Rigid(slider.Label.Layout),
		layout.Rigid(slider.Slider.Layout),
	)
}
