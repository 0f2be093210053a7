package chunky

import "math/rand/v2"

// GenCurve is the demo mode that draws a quadratic Bézier curve through
// the precomputed basis. Control points are regenerated randomly every
// frame — the point is constant visual variety, not a persistent curve —
// while the basis itself is computed once and never changes.
type GenCurve struct {
	art   Rect
	basis *Basis
	curve Curve
	buf   []Point
}

// NewGenCurve creates the mode with a basis at DefaultCurveSamples and an
// initial random curve.
func NewGenCurve(art Rect) *GenCurve {
	g := &GenCurve{
		art:   art,
		basis: NewBasis(DefaultCurveSamples),
		buf:   make([]Point, 0, DefaultCurveSamples),
	}
	g.Tick()
	return g
}

// Name implements Mode.
func (g *GenCurve) Name() string { return "gencurve" }

// Apply implements Mode. The curve takes no input.
func (g *GenCurve) Apply(Intents) {}

// Tick regenerates the three control points, each uniform within the
// middle half of the art surface.
func (g *GenCurve) Tick() {
	g.curve = Curve{
		P0: g.randomControlPoint(),
		P1: g.randomControlPoint(),
		P2: g.randomControlPoint(),
	}
}

func (g *GenCurve) randomControlPoint() Point {
	w := float64(g.art.W)
	h := float64(g.art.H)
	return Point{
		X: w/4 + rand.Float64()*w/2,
		Y: h/4 + rand.Float64()*h/2,
	}
}

// Draw renders the curve as lime lines with foreground sample points,
// plus the control polygon in tardis blue and the control points in
// dress pink.
func (g *GenCurve) Draw(art *ArtSurface, style Style) {
	g.buf = g.curve.AppendPoints(g.basis, g.buf[:0])

	art.StrokeLines(g.buf, colorLime)
	art.DrawPoints(g.buf, style.Palette.Foreground())

	controls := []Point{g.curve.P0, g.curve.P1, g.curve.P2}
	art.StrokeLines(controls, colorTardis)
	art.DrawPoints(controls, colorDress)
}
