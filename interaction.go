package mandelview

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Button identifies a logical mouse button. The windowing adapter maps
// physical buttons onto these two roles.
type Button int

const (
	// ButtonPrimary starts a drag-to-select gesture.
	ButtonPrimary Button = iota
	// ButtonSecondary starts a pan gesture.
	ButtonSecondary
)

// Event is the discriminated union of platform input the Session
// consumes. Positions and deltas are window pixels.
type Event interface {
	isEvent()
}

// ResizeEvent reports a new drawable pixel size.
type ResizeEvent struct {
	Width  int
	Height int
}

// WheelEvent reports vertical wheel motion. Positive DY (wheel up)
// zooms in.
type WheelEvent struct {
	DY float32
}

// ButtonDownEvent reports a button press at a pointer position.
type ButtonDownEvent struct {
	Button Button
	Pos    mgl32.Vec2
}

// ButtonUpEvent reports a button release. Any release ends the active
// gesture, so the button identity is informational.
type ButtonUpEvent struct {
	Button Button
}

// MotionEvent reports pointer motion with its relative delta.
type MotionEvent struct {
	Pos   mgl32.Vec2
	Delta mgl32.Vec2
}

func (ResizeEvent) isEvent()     {}
func (WheelEvent) isEvent()      {}
func (ButtonDownEvent) isEvent() {}
func (ButtonUpEvent) isEvent()   {}
func (MotionEvent) isEvent()     {}

// gesture is the interaction sum type. Each variant carries only the
// fields its state needs, so stale anchor coordinates cannot be read in
// the wrong mode.
type gesture interface {
	isGesture()
}

type idle struct{}

type selecting struct {
	anchor  mgl32.Vec2
	current mgl32.Vec2
}

type panning struct{}

func (idle) isGesture()      {}
func (selecting) isGesture() {}
func (panning) isGesture()   {}

// zoomBase is the per-wheel-notch zoom ratio: one notch up shrinks the
// viewport to 1/1.5 of its size.
const zoomBase = 1.5

// Session owns the interactive state: the viewport, the window extent,
// the tracked pointer, and the active gesture. It is mutated only from
// the event loop goroutine and needs no locking.
//
// At most one gesture is active at a time; button presses during an
// active gesture are ignored. Wheel zoom is not modal and applies in
// any state.
type Session struct {
	viewport Viewport
	extent   Extent
	pointer  mgl32.Vec2
	gesture  gesture
}

// NewSession creates a session over an initial viewport and drawable
// extent.
func NewSession(v Viewport, e Extent) *Session {
	return &Session{
		viewport: v,
		extent:   e,
		gesture:  idle{},
	}
}

// Viewport returns the current focus region.
func (s *Session) Viewport() Viewport {
	return s.viewport
}

// Extent returns the current drawable extent.
func (s *Session) Extent() Extent {
	return s.extent
}

// Handle feeds one input event through the interaction state machine,
// mutating the viewport on pan, zoom, and selection commit.
func (s *Session) Handle(ev Event) {
	switch ev := ev.(type) {
	case ResizeEvent:
		s.extent = Extent{Width: ev.Width, Height: ev.Height}

	case WheelEvent:
		factor := float32(math.Pow(zoomBase, float64(-ev.DY)))
		s.viewport.Zoom(s.extent, s.pointer, factor)
		Logger().Debug("zoom",
			"factor", factor,
			"halfW", s.viewport.Half.X(),
			"halfH", s.viewport.Half.Y())

	case ButtonDownEvent:
		s.pointer = ev.Pos
		if _, ok := s.gesture.(idle); !ok {
			return
		}
		switch ev.Button {
		case ButtonPrimary:
			s.gesture = selecting{anchor: ev.Pos, current: ev.Pos}
		case ButtonSecondary:
			s.gesture = panning{}
		}

	case ButtonUpEvent:
		if _, ok := s.gesture.(selecting); ok {
			s.commitSelection()
		}
		s.gesture = idle{}

	case MotionEvent:
		s.pointer = ev.Pos
		switch g := s.gesture.(type) {
		case selecting:
			g.current = ev.Pos
			s.gesture = g
		case panning:
			s.viewport.Pan(s.extent, ev.Delta)
		}
	}
}

// Transform derives the model transform for the current frame.
func (s *Session) Transform() Transform {
	return s.viewport.Fit(s.extent)
}

// Selection derives the active selection rectangle in fractal space, or
// the zero Rect when no selection is in progress. Both drag corners are
// projected through the current transform and sorted per axis.
func (s *Session) Selection() Rect {
	g, ok := s.gesture.(selecting)
	if !ok {
		return Rect{}
	}
	t := s.Transform()
	a := t.Apply(s.extent.PixelToNDC(g.anchor))
	b := t.Apply(s.extent.PixelToNDC(g.current))
	return RectFromCorners(a, b)
}

func (s *Session) commitSelection() {
	r := s.Selection()
	if r.Empty() {
		return
	}
	s.viewport.SetFromRect(r)
	Logger().Info("selection committed",
		"centerX", s.viewport.Center.X(),
		"centerY", s.viewport.Center.Y(),
		"halfW", s.viewport.Half.X(),
		"halfH", s.viewport.Half.Y())
}
