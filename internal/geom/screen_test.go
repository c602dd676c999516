package geom

import "testing"

const mainHeight = 1080

func TestFlipY_Convention(t *testing.T) {
	// A 100px-tall window whose bottom-left corner sits at the AppKit
	// origin must land at the bottom of the screen in top-left coords.
	appKit := Rect{X: 0, Y: 0, Width: 200, Height: 100}
	cg := FlipY(appKit, mainHeight)
	if cg.Y != mainHeight-100 {
		t.Errorf("FlipY bottom window Y = %d, want %d", cg.Y, mainHeight-100)
	}
	if cg.X != appKit.X || cg.Width != appKit.Width || cg.Height != appKit.Height {
		t.Errorf("FlipY changed X or size: %+v", cg)
	}
}

func TestFlipY_Involution(t *testing.T) {
	tests := []Rect{
		{X: 0, Y: 0, Width: 200, Height: 100},
		{X: 500, Y: 300, Width: 640, Height: 480},
		{X: -1920, Y: 40, Width: 1920, Height: 1040}, // secondary display
	}
	for _, r := range tests {
		if got := FlipY(FlipY(r, mainHeight), mainHeight); got != r {
			t.Errorf("FlipY(FlipY(%+v)) = %+v, want original", r, got)
		}
	}
}

func TestFlipPointY(t *testing.T) {
	p := Point{X: 10, Y: 0}
	flipped := FlipPointY(p, mainHeight)
	if flipped.Y != mainHeight {
		t.Errorf("FlipPointY Y = %d, want %d", flipped.Y, mainHeight)
	}
	if got := FlipPointY(flipped, mainHeight); got != p {
		t.Errorf("FlipPointY not an involution: %+v", got)
	}
}

func twoDisplays() []Display {
	return []Display{
		{ID: 1, Main: true, Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{ID: 2, Bounds: Rect{X: 1920, Y: 0, Width: 1440, Height: 900}},
	}
}

func TestDesktopBounds(t *testing.T) {
	got := DesktopBounds(twoDisplays())
	want := Rect{X: 0, Y: 0, Width: 3360, Height: 1080}
	if got != want {
		t.Errorf("DesktopBounds = %+v, want %+v", got, want)
	}
}

func TestDisplayAt(t *testing.T) {
	displays := twoDisplays()

	tests := []struct {
		name   string
		p      Point
		wantID int // 0 = nil
	}{
		{"main display", Point{X: 500, Y: 500}, 1},
		{"second display", Point{X: 2000, Y: 100}, 2},
		{"below second display", Point{X: 2000, Y: 950}, 0},
		{"outside everything", Point{X: -5, Y: 0}, 0},
	}
	for _, tt := range tests {
		d := DisplayAt(displays, tt.p)
		if tt.wantID == 0 {
			if d != nil {
				t.Errorf("%s: DisplayAt(%+v) = %+v, want nil", tt.name, tt.p, d)
			}
			continue
		}
		if d == nil || d.ID != tt.wantID {
			t.Errorf("%s: DisplayAt(%+v) = %+v, want ID %d", tt.name, tt.p, d, tt.wantID)
		}
	}
}
