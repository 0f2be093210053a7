package chunky

import "math/rand/v2"

// Circle buffer limits shared by every spinner.
const (
	// MaxCirclePoints is the fixed capacity of a spinner's point buffer.
	// Resolution changes stay within it, so the buffer never reallocates.
	MaxCirclePoints = 1<<9 - 3
	// MaxSpinnerSpeed is the most counter increments allowed per tick.
	MaxSpinnerSpeed = MaxCirclePoints / (1 << 4)
	// MinSpinnerRadius keeps a spinner from collapsing to a point.
	MinSpinnerRadius = 2
)

// wrapIndex maps i onto [0, count) with a well-defined result for
// negative i: -1 wraps to count-1, not to a negative index.
func wrapIndex(i, count int) int {
	i %= count
	if i < 0 {
		i += count
	}
	return i
}

// Spinner is one animated point traveling around a rational-parametrized
// circle. A monotonic counter accumulates phase; the active point is the
// counter read modulo the buffer length.
type Spinner struct {
	// CenterX and CenterY position the circle on the art surface.
	// Call RecomputePoints after changing them.
	CenterX, CenterY float64

	radius  int
	speed   int
	n       int // points per quarter circle; buffer holds 4n
	counter int
	points  []Point
}

// NewSpinner creates a spinner at (x, y) with the given radius, speed,
// and initial phase. The point buffer is allocated once at maximum
// capacity and computed immediately. Radius and speed are clamped to
// their valid ranges.
func NewSpinner(x, y float64, radius, speed, phase int) *Spinner {
	s := &Spinner{
		CenterX: x,
		CenterY: y,
		n:       MaxCirclePoints / 4,
		counter: phase,
		points:  make([]Point, 0, MaxCirclePoints),
	}
	s.SetRadius(radius)
	s.SetSpeed(speed)
	return s
}

// Radius returns the current radius in art pixels.
func (s *Spinner) Radius() int { return s.radius }

// Speed returns the counter increments applied per physics tick.
func (s *Spinner) Speed() int { return s.speed }

// Counter returns the raw phase accumulator. It may exceed the buffer
// length; reads wrap it via modulo.
func (s *Spinner) Counter() int { return s.counter }

// Count returns the number of points in the circle buffer (4 per
// quarter).
func (s *Spinner) Count() int { return 4 * s.n }

// SetRadius clamps r to at least MinSpinnerRadius and recomputes the
// point buffer. Upper-bound clamping is the owner's job since the limit
// depends on the art surface size.
func (s *Spinner) SetRadius(r int) {
	if r < MinSpinnerRadius {
		r = MinSpinnerRadius
	}
	s.radius = r
	s.RecomputePoints()
}

// SetSpeed clamps v to [1, MaxSpinnerSpeed]. Zero would freeze the
// animation and is disallowed.
func (s *Spinner) SetSpeed(v int) {
	if v < 1 {
		v = 1
	}
	if v > MaxSpinnerSpeed {
		v = MaxSpinnerSpeed
	}
	s.speed = v
}

// SetResolution clamps n to [1, MaxCirclePoints/4] quarter-circle points
// and recomputes the buffer. O(Count), so it only runs on discrete
// changes, never per frame.
func (s *Spinner) SetResolution(n int) {
	if n < 1 {
		n = 1
	}
	if limit := MaxCirclePoints / 4; n > limit {
		n = limit
	}
	s.n = n
	s.RecomputePoints()
}

// RecomputePoints rebuilds the full circle buffer from the current
// center, radius, and resolution: one rational quarter, three rotated
// copies, then scale and translate.
func (s *Spinner) RecomputePoints() {
	s.points = CirclePoints(s.points[:0], s.n)
	for i := range s.points {
		s.points[i] = Point{
			X: float64(s.radius)*s.points[i].X + s.CenterX,
			Y: float64(s.radius)*s.points[i].Y + s.CenterY,
		}
	}
}

// Advance accumulates ticks physics ticks: counter grows by speed per
// tick with no clamping. Wrapping happens at read time.
func (s *Spinner) Advance(ticks int) {
	s.counter += ticks * s.speed
}

// ActivePoint returns the point the spinner currently occupies.
func (s *Spinner) ActivePoint() Point {
	return s.points[wrapIndex(s.counter, len(s.points))]
}

// TrailPoint returns the point j steps behind the active point, wrapping
// to the end of the buffer when the phase is smaller than j.
func (s *Spinner) TrailPoint(j int) Point {
	return s.points[wrapIndex(s.counter-j, len(s.points))]
}

// --- SpinnerField mode ---

const (
	spinnerFieldCount = 1 << 12
	spinnerTrailLen   = 25
)

// SpinnerField is the demo mode that fills the art surface with a few
// thousand independent spinners. The j/k keys change every spinner's
// speed; with Shift they change every radius.
type SpinnerField struct {
	spinners  []*Spinner
	maxRadius int
}

// NewSpinnerField spawns the field uniformly inside a 1%-margin border of
// the art rect, with randomized radius, speed, and phase per spinner.
func NewSpinnerField(art Rect) *SpinnerField {
	border := borderRect(art)
	f := &SpinnerField{
		spinners:  make([]*Spinner, spinnerFieldCount),
		maxRadius: art.H / 2,
	}
	for i := range f.spinners {
		x := border.X + 1 + rand.Float64()*(border.W-3)
		y := border.Y + 1 + rand.Float64()*(border.H-3)
		r := rand.IntN(62) + 2
		v := rand.IntN(10) + 1
		p := rand.IntN(MaxCirclePoints)
		f.spinners[i] = NewSpinner(x, y, r, v, p)
	}
	return f
}

// Name implements Mode.
func (f *SpinnerField) Name() string { return "spinners" }

// Apply consumes the frame's intent flags: up/down drive fleet speed,
// bigger/smaller drive fleet radius.
func (f *SpinnerField) Apply(in Intents) {
	if in.Up {
		for _, s := range f.spinners {
			s.SetSpeed(s.Speed() + 1)
		}
	}
	if in.Down {
		for _, s := range f.spinners {
			s.SetSpeed(s.Speed() - 1)
		}
	}
	if in.Bigger {
		for _, s := range f.spinners {
			r := s.Radius() + 1
			if r > f.maxRadius {
				r = f.maxRadius
			}
			s.SetRadius(r)
		}
	}
	if in.Smaller {
		for _, s := range f.spinners {
			s.SetRadius(s.Radius() - 1)
		}
	}
}

// Tick advances every spinner by one physics tick.
func (f *SpinnerField) Tick() {
	for _, s := range f.spinners {
		s.Advance(1)
	}
}

// Draw renders each spinner at its active point. Colors cycle through the
// palette, skipping the current background; spinners that land on the
// foreground color get a comet trail with per-step alpha falloff.
func (f *SpinnerField) Draw(art *ArtSurface, style Style) {
	pal := style.Palette
	fgnd := pal.ForegroundIndex()
	for i, s := range f.spinners {
		idx := i % pal.Len()
		if idx == pal.Index() {
			idx = (idx + 1) % pal.Len()
		}
		c := pal.Color(idx)

		trail := 1
		if idx == fgnd {
			trail = spinnerTrailLen
		}
		for j := 0; j < trail; j++ {
			fade := c
			if drop := j * 10; drop < int(fade.A) {
				fade.A -= uint8(drop)
			} else {
				fade.A = 0
			}
			art.DrawPoint(s.TrailPoint(j), fade)
		}
	}
}

// borderRect returns the 1%-margin border inside which shapes spawn and
// the frame is drawn.
func borderRect(art Rect) RectF {
	w := float64(art.W)
	h := float64(art.H)
	m := 0.01 * w
	return RectF{X: m, Y: m, W: w - 2*m, H: h - 2*m}
}
