// Package geom provides the screen-geometry helpers used by the
// accessibility facade: points, rectangles, display bounds, and the
// conversion between the two macOS coordinate conventions.
package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a location in screen coordinates: origin at the top-left of the
// main display, Y increasing downward (the CoreGraphics convention, which is
// what the accessibility API reports).
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Rect is a screen rectangle in the same top-left-origin convention.
type Rect struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"w" json:"w"`
	Height int `yaml:"h" json:"h"`
}

// FromBounds converts a compact [x, y, width, height] array to a Rect.
func FromBounds(b [4]int) Rect {
	return Rect{X: b[0], Y: b[1], Width: b[2], Height: b[3]}
}

// Bounds converts a Rect to the compact [x, y, width, height] wire form.
func (r Rect) Bounds() [4]int {
	return [4]int{r.X, r.Y, r.Width, r.Height}
}

// Contains reports whether p lies inside r. Edges on the left/top are
// inclusive, right/bottom exclusive, matching pixel hit-testing.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x1, y1 := min(r.X, o.X), min(r.Y, o.Y)
	x2 := max(r.X+r.Width, o.X+o.Width)
	y2 := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

// ParsePoint parses an "x,y" string into a Point.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	vals := make([]int, 2)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
		}
		vals[i] = v
	}
	return Point{X: vals[0], Y: vals[1]}, nil
}

// ParseRect parses an "x,y,w,h" string into a Rect.
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("invalid rect %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rect{}, fmt.Errorf("invalid rect %q: %w", s, err)
		}
		vals[i] = v
	}
	return Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
