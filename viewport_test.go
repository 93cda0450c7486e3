package mandelview

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewport_FitNeverCrops(t *testing.T) {
	viewports := []Viewport{
		{Half: mgl32.Vec2{1, 1}},
		{Center: mgl32.Vec2{-0.75, 0.1}, Half: mgl32.Vec2{0.5, 2}},
		{Half: mgl32.Vec2{3, 0.25}},
		{Half: mgl32.Vec2{1e-3, 1e-3}},
	}
	extents := []Extent{{1280, 800}, {800, 1280}, {512, 512}, {1920, 1080}, {100, 900}}

	for _, v := range viewports {
		for _, e := range extents {
			tr := v.Fit(e)
			if tr.Scale.X() < v.Half.X() || tr.Scale.Y() < v.Half.Y() {
				t.Errorf("Fit(%v, %v) scale %v crops viewport half %v",
					v, e, tr.Scale, v.Half)
			}
			if tr.Center != v.Center {
				t.Errorf("Fit(%v, %v) moved center to %v", v, e, tr.Center)
			}
			// The visible region must match the window aspect exactly
			// (padding, never distortion).
			got := tr.Scale.X() / tr.Scale.Y()
			if !mgl32.FloatEqualThreshold(got, e.Aspect(), 1e-4) {
				t.Errorf("Fit(%v, %v) visible aspect %v, want %v", v, e, got, e.Aspect())
			}
		}
	}
}

func TestViewport_FitWideWindow(t *testing.T) {
	// Window aspect 1.6 ≥ focus aspect 1.0: height is the limiting
	// dimension and width pads out to 1.6.
	v := NewViewport()
	tr := v.Fit(Extent{Width: 1280, Height: 800})

	want := mgl32.Vec2{1.6, 1}
	if !tr.Scale.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Fit scale = %v, want %v", tr.Scale, want)
	}
}

func TestViewport_FitTallWindow(t *testing.T) {
	// Window aspect 0.625 < focus aspect 1.0: width limits and height
	// pads to 1/0.625.
	v := NewViewport()
	tr := v.Fit(Extent{Width: 500, Height: 800})

	want := mgl32.Vec2{1, 1.6}
	if !tr.Scale.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Fit scale = %v, want %v", tr.Scale, want)
	}
}

func TestViewport_ZoomKeepsCursorFixed(t *testing.T) {
	e := Extent{Width: 1280, Height: 800}
	factors := []float32{0.25, 1 / 1.5, 0.9, 1.5, 4}
	cursors := []mgl32.Vec2{{100, 100}, {640, 400}, {1279, 1}, {0, 799}}

	for _, factor := range factors {
		for _, cursor := range cursors {
			v := Viewport{Center: mgl32.Vec2{-0.5, 0.25}, Half: mgl32.Vec2{1, 1}}

			before := v.Fit(e).Apply(e.PixelToNDC(cursor))
			v.Zoom(e, cursor, factor)
			after := v.Fit(e).Apply(e.PixelToNDC(cursor))

			if !after.ApproxEqualThreshold(before, 1e-3) {
				t.Errorf("factor %v cursor %v: point under cursor moved %v -> %v",
					factor, cursor, before, after)
			}
		}
	}
}

func TestViewport_ZoomScalesHalfExtents(t *testing.T) {
	e := Extent{Width: 1280, Height: 800}
	v := NewViewport()

	// One wheel notch up: factor 1.5⁻¹ shrinks the viewport (zoom in).
	factor := float32(math.Pow(1.5, -1))
	v.Zoom(e, mgl32.Vec2{640, 400}, factor)

	want := mgl32.Vec2{factor, factor}
	if !v.Half.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Half = %v, want %v", v.Half, want)
	}
}

func TestViewport_ZoomPreservesFocusAspect(t *testing.T) {
	// Zoom scales the un-fitted viewport dimensions, so the user-chosen
	// region aspect survives repeated zooms even in a mismatched window.
	e := Extent{Width: 1280, Height: 800}
	v := Viewport{Half: mgl32.Vec2{0.5, 2}}
	wantAspect := v.Half.X() / v.Half.Y()

	for i := 0; i < 5; i++ {
		v.Zoom(e, mgl32.Vec2{100, 700}, 1/1.5)
	}

	got := v.Half.X() / v.Half.Y()
	if !mgl32.FloatEqualThreshold(got, wantAspect, 1e-4) {
		t.Errorf("focus aspect after zooms = %v, want %v", got, wantAspect)
	}
}

func TestViewport_ZoomCenterFixedAtWindowCenter(t *testing.T) {
	e := Extent{Width: 1280, Height: 800}
	v := NewViewport()

	v.Zoom(e, mgl32.Vec2{640, 400}, 0.5)

	if !v.Center.ApproxEqualThreshold(mgl32.Vec2{}, 1e-6) {
		t.Errorf("zoom at window center moved center to %v", v.Center)
	}
}

func TestViewport_PanSymmetry(t *testing.T) {
	e := Extent{Width: 1280, Height: 800}
	deltas := []mgl32.Vec2{{10, 0}, {0, -25}, {13.5, 7.25}, {-400, 300}}

	for _, d := range deltas {
		v := Viewport{Center: mgl32.Vec2{0.3, -0.2}, Half: mgl32.Vec2{1, 1}}
		orig := v.Center

		v.Pan(e, d)
		v.Pan(e, mgl32.Vec2{-d.X(), -d.Y()})

		if !v.Center.ApproxEqualThreshold(orig, 1e-5) {
			t.Errorf("pan %v then back: center %v, want %v", d, v.Center, orig)
		}
	}
}

func TestViewport_PanContentFollowsPointer(t *testing.T) {
	// After panning by d, the fractal point previously under pixel q
	// must sit under pixel q+d.
	e := Extent{Width: 1280, Height: 800}
	v := NewViewport()
	q := mgl32.Vec2{300, 500}
	d := mgl32.Vec2{40, -30}

	before := v.Fit(e).Apply(e.PixelToNDC(q))
	v.Pan(e, d)
	after := v.Fit(e).Apply(e.PixelToNDC(q.Add(d)))

	if !after.ApproxEqualThreshold(before, 1e-4) {
		t.Errorf("content did not follow pointer: %v -> %v", before, after)
	}
}

func TestViewport_SetFromRect(t *testing.T) {
	v := NewViewport()
	v.SetFromRect(Rect{
		Min: mgl32.Vec2{-1.35, 0.75},
		Max: mgl32.Vec2{-1.1, 0.875},
	})

	if !v.Center.ApproxEqualThreshold(mgl32.Vec2{-1.225, 0.8125}, 1e-6) {
		t.Errorf("Center = %v", v.Center)
	}
	if !v.Half.ApproxEqualThreshold(mgl32.Vec2{0.125, 0.0625}, 1e-6) {
		t.Errorf("Half = %v", v.Half)
	}
}

func TestViewport_SetFromRectDegenerate(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
	}{
		{"zero", Rect{}},
		{"zero width", Rect{Min: mgl32.Vec2{0.5, 0}, Max: mgl32.Vec2{0.5, 1}}},
		{"zero height", Rect{Min: mgl32.Vec2{0, 0.5}, Max: mgl32.Vec2{1, 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{Center: mgl32.Vec2{0.3, -0.2}, Half: mgl32.Vec2{1, 1}}
			orig := v
			v.SetFromRect(tt.rect)
			if v != orig {
				t.Errorf("degenerate rect changed viewport: %v -> %v", orig, v)
			}
		})
	}
}

func TestViewport_CommitOwnRegionIdempotent(t *testing.T) {
	v := Viewport{Center: mgl32.Vec2{-0.7, 0.3}, Half: mgl32.Vec2{0.4, 0.9}}
	orig := v

	v.SetFromRect(Rect{
		Min: v.Center.Sub(v.Half),
		Max: v.Center.Add(v.Half),
	})

	if !v.Center.ApproxEqualThreshold(orig.Center, 1e-6) ||
		!v.Half.ApproxEqualThreshold(orig.Half, 1e-6) {
		t.Errorf("committing own region changed viewport: %v -> %v", orig, v)
	}
}
