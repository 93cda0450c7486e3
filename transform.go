package mandelview

import "github.com/go-gl/mathgl/mgl32"

// Extent is the pixel size of the drawable surface. Both dimensions must
// be positive before any coordinate conversion is attempted; the app
// shell guarantees a valid drawable exists before the first frame.
type Extent struct {
	Width  int
	Height int
}

// Aspect returns the width/height ratio.
func (e Extent) Aspect() float32 {
	return float32(e.Width) / float32(e.Height)
}

// PixelToNDC maps a window pixel position to normalized device
// coordinates. Pixels have their origin at the top-left with y down;
// NDC covers [-1,1]² with y up, so the y axis flips.
func (e Extent) PixelToNDC(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		2*p.X()/float32(e.Width) - 1,
		2*(float32(e.Height)-p.Y())/float32(e.Height) - 1,
	}
}

// NDCToPixel is the inverse of PixelToNDC.
func (e Extent) NDCToPixel(ndc mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(ndc.X() + 1) * float32(e.Width) / 2,
		float32(e.Height) - (ndc.Y()+1)*float32(e.Height)/2,
	}
}

// Transform is the affine map from NDC to the complex plane:
//
//	fractal = Scale ⊙ ndc + Center
//
// It is derived fresh each frame from the viewport and window extent and
// never stored across frames.
type Transform struct {
	Center mgl32.Vec2
	Scale  mgl32.Vec2
}

// Apply maps an NDC point to fractal space.
func (t Transform) Apply(ndc mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		t.Scale.X()*ndc.X() + t.Center.X(),
		t.Scale.Y()*ndc.Y() + t.Center.Y(),
	}
}

// Invert maps a fractal-space point back to NDC. Scale components must
// be non-zero.
func (t Transform) Invert(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(p.X() - t.Center.X()) / t.Scale.X(),
		(p.Y() - t.Center.Y()) / t.Scale.Y(),
	}
}

// Vec4 packs the transform as (tx, ty, sx, sy) for the shader uniform.
func (t Transform) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{t.Center.X(), t.Center.Y(), t.Scale.X(), t.Scale.Y()}
}

// Rect is an axis-aligned rectangle in fractal space with Min ≤ Max on
// both axes. The zero Rect doubles as "no selection".
type Rect struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// RectFromCorners builds a well-formed Rect from two opposite corners in
// any drag direction by sorting each axis independently.
func RectFromCorners(a, b mgl32.Vec2) Rect {
	return Rect{
		Min: mgl32.Vec2{min(a.X(), b.X()), min(a.Y(), b.Y())},
		Max: mgl32.Vec2{max(a.X(), b.X()), max(a.Y(), b.Y())},
	}
}

// Empty reports whether the rectangle is degenerate on either axis.
func (r Rect) Empty() bool {
	return r.Min.X() == r.Max.X() || r.Min.Y() == r.Max.Y()
}

// Center returns the rectangle midpoint.
func (r Rect) Center() mgl32.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// HalfSize returns the rectangle half-extents.
func (r Rect) HalfSize() mgl32.Vec2 {
	return r.Max.Sub(r.Min).Mul(0.5)
}

// Vec4 packs the rectangle as (x0, y0, x1, y1) for the shader uniform.
func (r Rect) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{r.Min.X(), r.Min.Y(), r.Max.X(), r.Max.Y()}
}
