// Command mandelview opens an interactive Mandelbrot set explorer.
//
// Drag with the left mouse button to select the next focus region (the
// selection shows as a color-inverted overlay), drag with the right or
// middle button to pan, and zoom toward the cursor with the mouse
// wheel. Escape or closing the window quits.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/mandelview/mandelview"
)

func main() {
	mandelview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := mandelview.NewApp()
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
