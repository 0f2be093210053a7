package chunky

// Quadratic Bézier curves evaluated through a precomputed Bernstein basis.
// The basis depends only on the sample resolution K, never on control
// points, so one Basis serves every curve instance on every frame. Higher
// curve orders would need one extra basis row per control point; this
// system only ever draws quadratics.

// DefaultCurveSamples is the sample resolution used by the curve demo.
const DefaultCurveSamples = 128

// Basis holds the three quadratic Bernstein polynomials
//
//	B₀(t) = (1-t)²   B₁(t) = 2t(1-t)   B₂(t) = t²
//
// sampled at t = i/K for i in [0, K). Immutable after construction.
type Basis struct {
	k  int
	b0 []float64
	b1 []float64
	b2 []float64
}

// NewBasis computes the basis for k sample parameters. Panics if k < 2;
// fewer samples cannot describe a curve.
func NewBasis(k int) *Basis {
	if k < 2 {
		panic("chunky: curve basis needs at least 2 samples")
	}
	b := &Basis{
		k:  k,
		b0: make([]float64, k),
		b1: make([]float64, k),
		b2: make([]float64, k),
	}
	for i := 0; i < k; i++ {
		t := float64(i) / float64(k)
		u := 1 - t
		b.b0[i] = u * u
		b.b1[i] = 2 * t * u
		b.b2[i] = t * t
	}
	return b
}

// Samples returns the basis's sample resolution K.
func (b *Basis) Samples() int {
	return b.k
}

// Curve is a quadratic Bézier curve defined by three control points.
// P0 and P2 are the endpoints; P1 pulls the curve toward itself.
type Curve struct {
	P0, P1, P2 Point
}

// AppendPoints appends the curve's K sample points to dst and returns the
// extended slice. Each sample is the 1×3 control-point row times one
// column of the basis; the result is identical (within floating-point
// tolerance) to de Casteljau evaluation at the same parameters.
func (c Curve) AppendPoints(b *Basis, dst []Point) []Point {
	for i := 0; i < b.k; i++ {
		b0, b1, b2 := b.b0[i], b.b1[i], b.b2[i]
		dst = append(dst, Point{
			X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X,
			Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y,
		})
	}
	return dst
}

// At evaluates the curve at parameter t by direct de Casteljau
// interpolation: two lerps along the control polygon, then one lerp
// between those results. Reference implementation for the basis method.
func (c Curve) At(t float64) Point {
	q0 := Point{
		X: (1-t)*c.P0.X + t*c.P1.X,
		Y: (1-t)*c.P0.Y + t*c.P1.Y,
	}
	q1 := Point{
		X: (1-t)*c.P1.X + t*c.P2.X,
		Y: (1-t)*c.P1.Y + t*c.P2.Y,
	}
	return Point{
		X: (1-t)*q0.X + t*q1.X,
		Y: (1-t)*q0.Y + t*q1.Y,
	}
}
