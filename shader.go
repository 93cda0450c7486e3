package mandelview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// shaderSrc is the Kage fragment program evaluating the escape
// classification per pixel.
//
// Each pixel maps through Resolution to NDC (y flipped to y-up) and
// through the Transformation uniform (tx, ty, sx, sy) to a point p of
// the complex plane. z ← z² + p iterates exactly 256 times from z = p
// with no early exit; the point counts as inside when the final z lands
// in the open box (-3,3)×(-3,3). The test is per-axis on purpose — a
// circular bound renders visibly differently. Escaped orbits overflow
// to infinity or NaN and fail the box comparison either way.
//
// Pixels inside the Selection rectangle (x0, y0, x1, y1) have their
// color inverted; the zero rectangle selects nothing.
const shaderSrc = `//kage:unit pixels

package main

var Transformation vec4
var Selection vec4
var Resolution vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := dstPos.xy / Resolution
	ndc := vec2(2.0*uv.x-1.0, 1.0-2.0*uv.y)
	p := Transformation.zw*ndc + Transformation.xy

	z := p
	for i := 0; i < 256; i++ {
		z = vec2(z.x*z.x-z.y*z.y+p.x, 2.0*z.x*z.y+p.y)
	}

	col := vec3(0.0, 0.0, 0.5)
	if -3.0 < z.x && z.x < 3.0 && -3.0 < z.y && z.y < 3.0 {
		col = vec3(1.0)
	}

	if Selection.x <= p.x && p.x <= Selection.z &&
		Selection.y <= p.y && p.y <= Selection.w {
		col = vec3(1.0) - col
	}
	return vec4(col, 1.0)
}
`

// compileShader builds the fragment program. Failure is a fatal startup
// condition surfaced through ErrShaderCompile.
func compileShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader([]byte(shaderSrc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	return s, nil
}
