package main

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"

	"git.sr.ht/~gioverse/stretch/ninepatch"
)

// Skin describes a generated button background.
type Skin struct {
	// Size of the interior, excluding the 9-Patch border.
	Size image.Point
	// Radius of the rounded corners. The straight sections between the
	// corners are marked as stretchable.
	Radius int
	// Padding between the corners and the content area.
	Padding int
	// Top and Bottom specify the vertical gradient.
	Top, Bottom colorful.Color
}

// Bitmap renders the skin, including the 9-Patch border.
func (s Skin) Bitmap() *ninepatch.Bitmap {
	src := ninepatch.NewBitmap(image.Rectangle{Max: s.Size.Add(image.Pt(2, 2))})
	for yy := 0; yy < s.Size.Y; yy++ {
		t := 0.0
		if s.Size.Y > 1 {
			t = float64(yy) / float64(s.Size.Y-1)
		}
		r, g, b := s.Top.BlendLab(s.Bottom, t).Clamped().RGB255()
		for xx := 0; xx < s.Size.X; xx++ {
			if !s.inside(xx, yy) {
				continue
			}
			src.SetBGRA(xx+1, yy+1, b, g, r, 0xff)
		}
	}
	var (
		last   = s.Size.Sub(image.Pt(1, 1))
		marker = func(x, y int) { src.SetBGRA(x, y, 0, 0, 0, 0xff) }
	)
	for xx := s.Radius; xx < s.Size.X-s.Radius; xx++ {
		marker(xx+1, 0)
	}
	for yy := s.Radius; yy < s.Size.Y-s.Radius; yy++ {
		marker(0, yy+1)
	}
	for xx := s.Padding; xx <= last.X-s.Padding; xx++ {
		marker(xx+1, last.Y+2)
	}
	for yy := s.Padding; yy <= last.Y-s.Padding; yy++ {
		marker(last.X+2, yy+1)
	}
	return src
}

// inside reports whether the interior pixel (x, y) lies within the rounded
// rectangle.
func (s Skin) inside(x, y int) bool {
	r := s.Radius
	cx, cy := x, y
	switch {
	case x < r:
		cx = r
	case x >= s.Size.X-r:
		cx = s.Size.X - r - 1
	}
	switch {
	case y < r:
		cy = r
	case y >= s.Size.Y-r:
		cy = s.Size.Y - r - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// hex parses a color literal known to be valid.
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// skins are the three demo button backgrounds.
var skins = []Skin{
	{Size: image.Pt(24, 24), Radius: 8, Padding: 6, Top: hex("#66bb6a"), Bottom: hex("#1b5e20")},
	{Size: image.Pt(32, 20), Radius: 4, Padding: 4, Top: hex("#ef5350"), Bottom: hex("#b71c1c")},
	{Size: image.Pt(40, 30), Radius: 12, Padding: 8, Top: hex("#42a5f5"), Bottom: hex("#0d47a1")},
}
