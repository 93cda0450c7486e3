// Package mandelview implements an interactive Mandelbrot set explorer.
//
// # Overview
//
// mandelview renders the Mandelbrot set with a GPU fragment shader and
// lets the user explore the complex plane with the mouse: drag with the
// primary button to select the next focus region, drag with the secondary
// button to pan, and zoom toward the cursor with the wheel.
//
// The CPU side of the program is a small amount of precise geometry. A
// Viewport holds the focus region of the complex plane, independent of
// window shape. Each frame two 4-component vectors are derived from it
// and handed to the GPU: the model transform mapping normalized device
// coordinates to the complex plane, and the selection overlay rectangle.
// Both are recomputed every frame from the current state, so they can
// never go stale.
//
// # Quick Start
//
//	app, err := mandelview.NewApp(
//	    mandelview.WithTitle("Mandelbrot"),
//	    mandelview.WithWindowSize(1280, 800),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The package is organized leaf to root:
//   - Geometry: Extent, Transform, Rect (transform.go) — pure mappings
//     between window pixels, NDC, and the complex plane
//   - Viewport: the focus region and its zoom/pan/commit operations
//   - Session: the interaction state machine consuming platform-neutral
//     input events (interaction.go)
//   - Render driver: uniform derivation and the single full-window
//     shader draw (render.go, shader.go)
//   - App: the Ebitengine adapter that polls input and runs the loop
//
// # Coordinate Systems
//
// Window pixels have their origin at the top-left with y increasing
// downward. Normalized device coordinates cover [-1,1]² with y
// increasing upward. The complex plane ("fractal space") is reached from
// NDC through the per-frame fit-inside transform, which pads but never
// crops the viewport to match the window aspect ratio.
//
// # Precision
//
// All geometry is single-precision, matching the GPU pipeline. Repeated
// zooming eventually exhausts float32 resolution; this is a documented
// limitation, not a defect.
package mandelview
