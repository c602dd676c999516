package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/mj1618/axq/internal/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// maxCanvasWidth caps the rendered desktop diagram.
const maxCanvasWidth = 1200

// drawFrames renders display outlines and the matched frames to a PNG so
// geometry conversions can be checked visually.
func drawFrames(path string, results []FrameResult, displays []geom.Display) error {
	desktop := geom.DesktopBounds(displays)
	if desktop.Empty() {
		return fmt.Errorf("no display geometry to draw")
	}

	scale := 1.0
	if desktop.Width > maxCanvasWidth {
		scale = float64(maxCanvasWidth) / float64(desktop.Width)
	}
	w := int(float64(desktop.Width) * scale)
	h := int(float64(desktop.Height) * scale)

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), &image.Uniform{color.RGBA{R: 24, G: 24, B: 24, A: 255}}, image.Point{}, draw.Src)

	displayColor := color.RGBA{R: 110, G: 110, B: 110, A: 255}
	frameColor := color.RGBA{R: 255, G: 64, B: 64, A: 255}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	toCanvas := func(r geom.Rect) image.Rectangle {
		x0 := int(float64(r.X-desktop.X) * scale)
		y0 := int(float64(r.Y-desktop.Y) * scale)
		x1 := int(float64(r.X-desktop.X+r.Width) * scale)
		y1 := int(float64(r.Y-desktop.Y+r.Height) * scale)
		return image.Rect(x0, y0, x1, y1)
	}

	for _, d := range displays {
		drawBox(rgba, toCanvas(d.Bounds), displayColor)
	}
	for _, res := range results {
		box := toCanvas(res.Frame)
		drawBox(rgba, box, frameColor)
		drawLabel(rgba, box.Min.X+3, box.Min.Y+13, res.Target, textColor)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, rgba); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// drawBox draws a 1px rectangle outline.
func drawBox(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawLabel renders text with the fixed 7x13 basicfont face.
func drawLabel(img *image.RGBA, x, y int, label string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
