package chunky

// Rational parametrization of the unit circle. For t in [0, 1] the pair
// (CircleX, CircleY) traces one quarter turn without any trigonometry:
//
//	x(t) = (1 - t²) / (1 + t²)
//	y(t) =      2t  / (1 + t²)
//
// Equal steps in t give non-uniform angular steps: points bunch up near
// the end of each quarter turn. That slowdown is a deliberate visual
// property of every animation built on these functions, so callers must
// not resample uniformly in angle.

// CircleX returns x(t) for t = n/d. Panics if d is zero.
func CircleX(n, d int) float64 {
	if d == 0 {
		panic("chunky: circle parameter denominator is zero")
	}
	t := float64(n) / float64(d)
	return (1 - t*t) / (1 + t*t)
}

// CircleY returns y(t) for t = n/d. Panics if d is zero.
func CircleY(n, d int) float64 {
	if d == 0 {
		panic("chunky: circle parameter denominator is zero")
	}
	t := float64(n) / float64(d)
	return (2 * t) / (1 + t*t)
}

// CirclePoints fills dst with the 4n points of a unit circle and returns
// dst resliced to length 4n. The first quarter is sampled at t = i/n for
// i in [0, n); each remaining quarter is the previous quarter rotated 90°
// via (x, y) → (-y, x). Panics if n < 1 or dst lacks capacity for 4n
// points.
func CirclePoints(dst []Point, n int) []Point {
	if n < 1 {
		panic("chunky: circle resolution must be at least 1")
	}
	count := 4 * n
	dst = dst[:count]
	for i := 0; i < n; i++ {
		dst[i] = Point{X: CircleX(i, n), Y: CircleY(i, n)}
	}
	for i := n; i < count; i++ {
		prev := dst[i-n]
		dst[i] = Point{X: -prev.Y, Y: prev.X}
	}
	return dst
}
