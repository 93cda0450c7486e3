package mandelview

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// maxIterations is the fixed escape iteration count per point.
	maxIterations = 256
	// escapeLimit is the box bail-out magnitude, applied to each axis
	// independently.
	escapeLimit = 3
)

// Palette of the fragment shader, reproduced for the CPU path.
var (
	colorOutside = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	colorInside  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Classify is the CPU reference for the fragment shader's membership
// test: iterate z ← z² + p exactly maxIterations times from z = p, then
// report whether the final z lies in the open box
// (-escapeLimit, escapeLimit)². The box test matches the shader — it is
// not a circular modulus bound. Arithmetic is float32 like the GPU's;
// escaped orbits overflow to Inf or NaN and fail the comparison.
func Classify(p mgl32.Vec2) bool {
	px, py := p.X(), p.Y()
	zx, zy := px, py
	for i := 0; i < maxIterations; i++ {
		zx, zy = zx*zx-zy*zy+px, 2*zx*zy+py
	}
	return -escapeLimit < zx && zx < escapeLimit &&
		-escapeLimit < zy && zy < escapeLimit
}

// RenderImage rasterizes the viewport on the CPU with the same
// classification, fit-inside transform, and palette as the shader.
// Pixel centers are sampled. It exists as the headless, testable
// counterpart of the GPU path and is far too slow for interactive use.
func RenderImage(v Viewport, e Extent) *image.RGBA {
	t := v.Fit(e)
	img := image.NewRGBA(image.Rect(0, 0, e.Width, e.Height))
	for y := 0; y < e.Height; y++ {
		for x := 0; x < e.Width; x++ {
			center := mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
			p := t.Apply(e.PixelToNDC(center))
			c := colorOutside
			if Classify(p) {
				c = colorInside
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
