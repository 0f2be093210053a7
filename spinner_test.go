package chunky

import "testing"

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		i, count, want int
	}{
		{0, 100, 0},
		{99, 100, 99},
		{100, 100, 0},
		{140, 100, 40},
		{-1, 100, 99},
		{-100, 100, 0},
		{-101, 100, 99},
	}
	for _, c := range cases {
		if got := wrapIndex(c.i, c.count); got != c.want {
			t.Errorf("wrapIndex(%d, %d) = %d, want %d", c.i, c.count, got, c.want)
		}
	}
}

func TestSpinnerAdvanceWrapsAtReadTime(t *testing.T) {
	s := NewSpinner(0, 0, 10, 7, 0)
	s.SetResolution(25) // 100-point buffer
	if s.Count() != 100 {
		t.Fatalf("Count = %d, want 100", s.Count())
	}
	for i := 0; i < 20; i++ {
		s.Advance(1)
	}
	// 20 ticks at speed 7: counter 140, active index 40.
	if s.Counter() != 140 {
		t.Errorf("Counter = %d, want 140", s.Counter())
	}
	want := s.points[40]
	if got := s.ActivePoint(); got != want {
		t.Errorf("ActivePoint = %v, want points[40] = %v", got, want)
	}
}

func TestSpinnerAdvanceBatch(t *testing.T) {
	a := NewSpinner(0, 0, 10, 5, 0)
	b := NewSpinner(0, 0, 10, 5, 0)
	for i := 0; i < 13; i++ {
		a.Advance(1)
	}
	b.Advance(13)
	if a.Counter() != b.Counter() {
		t.Errorf("batched Advance diverged: %d vs %d", a.Counter(), b.Counter())
	}
}

func TestSpinnerTrailWrapsBackward(t *testing.T) {
	s := NewSpinner(0, 0, 10, 1, 0)
	s.SetResolution(25)
	s.Advance(3) // counter 3
	want := s.points[98]
	if got := s.TrailPoint(5); got != want {
		t.Errorf("TrailPoint(5) at counter 3 = %v, want points[98] = %v", got, want)
	}
}

func TestSpinnerSpeedClamp(t *testing.T) {
	s := NewSpinner(0, 0, 10, 1, 0)
	s.SetSpeed(0)
	if s.Speed() != 1 {
		t.Errorf("Speed after SetSpeed(0) = %d, want 1", s.Speed())
	}
	s.SetSpeed(MaxSpinnerSpeed + 50)
	if s.Speed() != MaxSpinnerSpeed {
		t.Errorf("Speed = %d, want %d", s.Speed(), MaxSpinnerSpeed)
	}
	// Clamping is idempotent at the boundary.
	s.SetSpeed(s.Speed() + 1)
	if s.Speed() != MaxSpinnerSpeed {
		t.Errorf("Speed = %d, want %d", s.Speed(), MaxSpinnerSpeed)
	}
}

func TestSpinnerRadiusClamp(t *testing.T) {
	s := NewSpinner(0, 0, 10, 1, 0)
	s.SetRadius(0)
	if s.Radius() != MinSpinnerRadius {
		t.Errorf("Radius = %d, want %d", s.Radius(), MinSpinnerRadius)
	}
	s.SetRadius(s.Radius() - 1)
	if s.Radius() != MinSpinnerRadius {
		t.Errorf("Radius = %d, want %d", s.Radius(), MinSpinnerRadius)
	}
}

func TestSpinnerResolutionClamp(t *testing.T) {
	s := NewSpinner(0, 0, 10, 1, 0)
	s.SetResolution(0)
	if s.Count() != 4 {
		t.Errorf("Count = %d, want 4", s.Count())
	}
	s.SetResolution(MaxCirclePoints) // way past the per-quarter limit
	if s.Count() != 4*(MaxCirclePoints/4) {
		t.Errorf("Count = %d, want %d", s.Count(), 4*(MaxCirclePoints/4))
	}
}

// The buffer is allocated once at maximum capacity; resolution changes
// reslice, never reallocate.
func TestSpinnerBufferNeverReallocates(t *testing.T) {
	s := NewSpinner(0, 0, 10, 1, 0)
	for _, n := range []int{1, 100, 25, MaxCirclePoints / 4, 3} {
		s.SetResolution(n)
		if cap(s.points) != MaxCirclePoints {
			t.Fatalf("cap = %d after SetResolution(%d), want %d", cap(s.points), n, MaxCirclePoints)
		}
	}
}

func TestSpinnerPointsScaledAndTranslated(t *testing.T) {
	s := NewSpinner(100, 50, 10, 1, 0)
	// First point of the rational quarter is (1, 0): scaled by the radius
	// and translated to the center, that is (110, 50).
	got := s.points[0]
	if !approxEqual(got.X, 110, epsilon) || !approxEqual(got.Y, 50, epsilon) {
		t.Errorf("points[0] = %v, want (110, 50)", got)
	}
}

func TestSpinnerFieldFleetControls(t *testing.T) {
	art := Rect{W: 320, H: 180}
	f := NewSpinnerField(art)
	if len(f.spinners) != spinnerFieldCount {
		t.Fatalf("field size = %d, want %d", len(f.spinners), spinnerFieldCount)
	}

	// Hammer the speed-up intent: every spinner must saturate, not wrap.
	for i := 0; i < MaxSpinnerSpeed+10; i++ {
		f.Apply(Intents{Up: true})
	}
	for i, s := range f.spinners {
		if s.Speed() != MaxSpinnerSpeed {
			t.Fatalf("spinner %d speed = %d, want %d", i, s.Speed(), MaxSpinnerSpeed)
		}
	}

	// Same for growth: the field clamps at half the art height.
	for i := 0; i < art.H; i++ {
		f.Apply(Intents{Bigger: true})
	}
	for i, s := range f.spinners {
		if s.Radius() != f.maxRadius {
			t.Fatalf("spinner %d radius = %d, want %d", i, s.Radius(), f.maxRadius)
		}
	}
}

func TestSpinnerFieldSpawnsInsideBorder(t *testing.T) {
	art := Rect{W: 320, H: 180}
	f := NewSpinnerField(art)
	border := borderRect(art)
	for i, s := range f.spinners {
		if s.CenterX < border.X || s.CenterX > border.X+border.W ||
			s.CenterY < border.Y || s.CenterY > border.Y+border.H {
			t.Fatalf("spinner %d center (%f, %f) outside border %+v", i, s.CenterX, s.CenterY, border)
		}
	}
}
