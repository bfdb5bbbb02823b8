package ninepatch

import "image"

// Grid summarises how a NinePatch stretches along each axis.
type Grid struct {
	// Size is the interior size, the smallest size the image renders at.
	Size image.Point
	// Stretch counts the stretchable columns (X) and rows (Y).
	Stretch image.Point
}

// Fixed returns the number of columns and rows that never repeat.
func (g Grid) Fixed() image.Point {
	return g.Size.Sub(g.Stretch)
}

// CanStretch reports, per axis, whether the image may be rendered larger
// than its interior size.
func (g Grid) CanStretch() (x, y bool) {
	return g.Stretch.X > 0, g.Stretch.Y > 0
}

// Constrain clamps sz to a size the image can render at: never below the
// interior size, and exactly the interior size along axes that cannot
// stretch.
func (g Grid) Constrain(sz image.Point) image.Point {
	x, y := g.CanStretch()
	if !x || sz.X < g.Size.X {
		sz.X = g.Size.X
	}
	if !y || sz.Y < g.Size.Y {
		sz.Y = g.Size.Y
	}
	return sz
}
