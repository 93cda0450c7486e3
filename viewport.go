package mandelview

import "github.com/go-gl/mathgl/mgl32"

// Viewport is the focus region of the complex plane currently displayed,
// independent of window shape. Both half-extents must stay positive.
//
// Zoom scales the viewport's own dimensions while Pan and selection
// commits work through the fitted transform. The asymmetry is
// deliberate: it preserves the aspect ratio of the user-chosen region
// across repeated zooms regardless of window shape.
type Viewport struct {
	Center mgl32.Vec2
	Half   mgl32.Vec2
}

// NewViewport returns the startup focus region covering roughly
// [-1,1]×[-1,1] of the complex plane, adjusted by window aspect.
func NewViewport() Viewport {
	return Viewport{Half: mgl32.Vec2{1, 1}}
}

// Fit returns the transform that shows the whole viewport inside the
// window without distortion. The limiting dimension keeps the viewport
// extent; the other is padded to match the window aspect ratio
// (letterbox/pillarbox). Nothing is ever cropped.
func (v Viewport) Fit(e Extent) Transform {
	windowAspect := e.Aspect()
	focusAspect := v.Half.X() / v.Half.Y()

	if windowAspect >= focusAspect {
		return Transform{
			Center: v.Center,
			Scale:  mgl32.Vec2{v.Half.Y() * windowAspect, v.Half.Y()},
		}
	}
	return Transform{
		Center: v.Center,
		Scale:  mgl32.Vec2{v.Half.X(), v.Half.X() / windowAspect},
	}
}

// Zoom scales the viewport by factor while keeping the fractal point
// under mousePx fixed on screen. factor must be positive; factor < 1
// zooms in. No bounds are enforced: repeated zoom-in eventually runs out
// of float32 resolution.
//
// The scale applies to the viewport's own half-extents, not the fitted
// ones, so the chosen region's aspect ratio survives the zoom.
func (v *Viewport) Zoom(e Extent, mousePx mgl32.Vec2, factor float32) {
	t := v.Fit(e)
	d := t.Apply(e.PixelToNDC(mousePx)).Sub(t.Center)

	v.Center = v.Center.Add(d.Mul(1 - factor))
	v.Half = v.Half.Mul(factor)
}

// Pan moves the viewport center opposite a pointer delta in pixels so
// the content follows the pointer. The delta is converted to fractal
// space through the fitted transform, with the y axis flipped.
func (v *Viewport) Pan(e Extent, deltaPx mgl32.Vec2) {
	t := v.Fit(e)
	d := mgl32.Vec2{
		2 * t.Scale.X() * deltaPx.X() / float32(e.Width),
		2 * t.Scale.Y() * -deltaPx.Y() / float32(e.Height),
	}
	v.Center = v.Center.Sub(d)
}

// SetFromRect replaces the viewport with the region r. Rectangles
// degenerate on either axis are ignored: a zero-width or zero-height
// focus would break the positive half-extent invariant.
func (v *Viewport) SetFromRect(r Rect) {
	if r.Empty() {
		return
	}
	v.Center = r.Center()
	v.Half = r.HalfSize()
}
