package geom

// Display describes one attached screen. Bounds are in the top-left-origin
// convention; the main display has Bounds.X == Bounds.Y == 0.
type Display struct {
	ID     int  `yaml:"id"   json:"id"`
	Main   bool `yaml:"main,omitempty" json:"main,omitempty"`
	Bounds Rect `yaml:"bounds" json:"bounds"`
}

// FlipY converts a rectangle between the AppKit convention (origin at the
// bottom-left of the main display, Y increasing upward) and the CoreGraphics
// convention (origin top-left, Y increasing downward). mainHeight is the
// height of the main display. The conversion is its own inverse.
func FlipY(r Rect, mainHeight int) Rect {
	return Rect{
		X:      r.X,
		Y:      mainHeight - r.Y - r.Height,
		Width:  r.Width,
		Height: r.Height,
	}
}

// FlipPointY converts a point between the two conventions. Unlike FlipY for
// rectangles there is no height to subtract.
func FlipPointY(p Point, mainHeight int) Point {
	return Point{X: p.X, Y: mainHeight - p.Y}
}

// DesktopBounds returns the union of all display bounds.
func DesktopBounds(displays []Display) Rect {
	var union Rect
	for _, d := range displays {
		union = union.Union(d.Bounds)
	}
	return union
}

// DisplayAt returns the display containing p, or nil if p is outside every
// display.
func DisplayAt(displays []Display, p Point) *Display {
	for i := range displays {
		if displays[i].Bounds.Contains(p) {
			return &displays[i]
		}
	}
	return nil
}
