package mandelview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App adapts the interaction core to the windowing layer. It implements
// [ebiten.Game]: every tick it polls input, converts it to the neutral
// event union, and feeds the session; every frame it draws once.
//
// All state is owned by the game-loop goroutine; there are no locks and
// no background work.
type App struct {
	session *Session
	shader  *ebiten.Shader

	title string

	// drawable size reported by Layout, fed to the session as a
	// ResizeEvent when it changes
	width  int
	height int

	prevCursor mgl32.Vec2
	hasCursor  bool
}

// NewApp creates the application. All startup failure — invalid options
// or a shader that does not compile — is reported here so the entry
// point can exit once; there is no recoverable-error path.
func NewApp(opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidExtent, o.width, o.height)
	}
	if o.viewport.Half.X() <= 0 || o.viewport.Half.Y() <= 0 {
		return nil, fmt.Errorf("%w: half extents (%v, %v)",
			ErrInvalidViewport, o.viewport.Half.X(), o.viewport.Half.Y())
	}

	shader, err := compileShader()
	if err != nil {
		return nil, err
	}

	extent := Extent{Width: o.width, Height: o.height}
	return &App{
		session: NewSession(o.viewport, extent),
		shader:  shader,
		title:   o.title,
		width:   o.width,
		height:  o.height,
	}, nil
}

// Run opens the window and blocks in the event loop until the window is
// closed or Escape is pressed.
func (a *App) Run() error {
	ebiten.SetWindowTitle(a.title)
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	Logger().Info("starting",
		"title", a.title,
		"width", a.width,
		"height", a.height)

	return ebiten.RunGame(a)
}

// Update polls one tick of input and drains it through the session.
// Update implements [ebiten.Game].
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if e := a.session.Extent(); e.Width != a.width || e.Height != a.height {
		a.session.Handle(ResizeEvent{Width: a.width, Height: a.height})
	}

	cx, cy := ebiten.CursorPosition()
	cursor := mgl32.Vec2{float32(cx), float32(cy)}
	if !a.hasCursor {
		a.prevCursor = cursor
		a.hasCursor = true
	}
	if cursor != a.prevCursor {
		a.session.Handle(MotionEvent{
			Pos:   cursor,
			Delta: cursor.Sub(a.prevCursor),
		})
		a.prevCursor = cursor
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.session.Handle(ButtonDownEvent{Button: ButtonPrimary, Pos: cursor})
	}
	// The original tool pans on the middle button; right is the common
	// secondary today. Accept either.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		a.session.Handle(ButtonDownEvent{Button: ButtonSecondary, Pos: cursor})
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.session.Handle(ButtonUpEvent{Button: ButtonPrimary})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		a.session.Handle(ButtonUpEvent{Button: ButtonSecondary})
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		a.session.Handle(WheelEvent{DY: float32(wy)})
	}

	return nil
}

// Layout reports the drawable size back to the windowing layer. The
// window renders at its native logical size; resizes reach the session
// on the next Update. Layout implements [ebiten.Game].
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width = outsideWidth
	a.height = outsideHeight
	return outsideWidth, outsideHeight
}
