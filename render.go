package mandelview

import "github.com/hajimehoshi/ebiten/v2"

// Draw derives the two per-frame uniform vectors from the session and
// issues the single full-window shader draw. Draw implements
// [ebiten.Game].
//
// Both vectors are recomputed from scratch every frame; nothing is
// cached between frames.
func (a *App) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	transformation := a.session.Transform().Vec4()
	selection := a.session.Selection().Vec4()

	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Transformation": transformation[:],
		"Selection":      selection[:],
		"Resolution":     []float32{float32(w), float32(h)},
	}
	screen.DrawRectShader(w, h, a.shader, op)
}
