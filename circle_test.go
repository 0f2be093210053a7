package chunky

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCircleStartsAtUnitX(t *testing.T) {
	if x := CircleX(0, 100); !approxEqual(x, 1, epsilon) {
		t.Errorf("CircleX(0, 100) = %f, want 1", x)
	}
	if y := CircleY(0, 100); !approxEqual(y, 0, epsilon) {
		t.Errorf("CircleY(0, 100) = %f, want 0", y)
	}
}

func TestCirclePointsOnUnitCircle(t *testing.T) {
	for n := 0; n <= 64; n++ {
		x := CircleX(n, 64)
		y := CircleY(n, 64)
		if r := x*x + y*y; !approxEqual(r, 1, epsilon) {
			t.Errorf("x²+y² at t=%d/64 = %f, want 1", n, r)
		}
	}
}

func TestCircleZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("CircleX(1, 0) did not panic")
		}
	}()
	CircleX(1, 0)
}

func TestCirclePointsCount(t *testing.T) {
	pts := CirclePoints(make([]Point, 0, 128), 32)
	if len(pts) != 128 {
		t.Errorf("len = %d, want 128", len(pts))
	}
}

func TestCirclePointsRotationIdentity(t *testing.T) {
	const n = 16
	pts := CirclePoints(make([]Point, 0, 4*n), n)
	for i := 0; i < 3*n; i++ {
		want := Point{X: -pts[i].Y, Y: pts[i].X}
		got := pts[i+n]
		if !approxEqual(got.X, want.X, epsilon) || !approxEqual(got.Y, want.Y, epsilon) {
			t.Errorf("point %d = %v, want 90° rotation of point %d = %v", i+n, got, i, want)
		}
	}
}

func TestCirclePointsAllOnUnitCircle(t *testing.T) {
	const n = 16
	pts := CirclePoints(make([]Point, 0, 4*n), n)
	for i, p := range pts {
		if r := p.X*p.X + p.Y*p.Y; !approxEqual(r, 1, epsilon) {
			t.Errorf("point %d: x²+y² = %f, want 1", i, r)
		}
	}
}

func TestCirclePointsZeroResolutionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("CirclePoints with n=0 did not panic")
		}
	}()
	CirclePoints(make([]Point, 0, 4), 0)
}

// Equal steps in t compress toward the end of the quarter turn. The
// non-uniform spacing is load-bearing for the animations, so pin it.
func TestCircleSpacingIsNonUniform(t *testing.T) {
	const n = 64
	first := math.Atan2(CircleY(1, n), CircleX(1, n)) -
		math.Atan2(CircleY(0, n), CircleX(0, n))
	last := math.Atan2(CircleY(n, n), CircleX(n, n)) -
		math.Atan2(CircleY(n-1, n), CircleX(n-1, n))
	if first <= last {
		t.Errorf("angular step should shrink across the quarter: first %f, last %f", first, last)
	}
}
