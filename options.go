package mandelview

// Option configures an App during creation.
//
// Example:
//
//	// Defaults: 1280×800, standard title, viewport {0,0,1,1}
//	app, err := mandelview.NewApp()
//
//	// Custom start region
//	app, err := mandelview.NewApp(
//	    mandelview.WithViewport(mandelview.Viewport{
//	        Center: mgl32.Vec2{-0.75, 0},
//	        Half:   mgl32.Vec2{1.5, 1.5},
//	    }),
//	)
type Option func(*options)

// options holds optional configuration for App creation.
type options struct {
	title    string
	width    int
	height   int
	viewport Viewport
}

// defaultOptions returns the default app options.
func defaultOptions() options {
	return options{
		title:    "Mandelbrot Set Visualizer",
		width:    1280,
		height:   800,
		viewport: NewViewport(),
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithWindowSize sets the initial window size in pixels. Both dimensions
// must be positive or NewApp returns ErrInvalidExtent.
func WithWindowSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithViewport sets the initial focus region of the complex plane. Both
// half-extents must be positive or NewApp returns ErrInvalidViewport.
func WithViewport(v Viewport) Option {
	return func(o *options) {
		o.viewport = v
	}
}
