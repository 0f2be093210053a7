package chunky

import "math/rand/v2"

// Static is the demo mode that fills the border with random points in
// every palette color — rainbow static. It exists to make the chunky
// pixel size visible when tuning the art scale.
type Static struct {
	art      Rect
	perColor int
	scratch  []Point
}

// NewStatic creates the mode. The per-color point count scales with the
// art resolution so the static stays equally dense at any chunkiness.
func NewStatic(art Rect) *Static {
	scale := art.W / 16
	perColor := (1 << 6) * scale * scale / 100
	return &Static{
		art:      art,
		perColor: perColor,
		scratch:  make([]Point, perColor),
	}
}

// Name implements Mode.
func (s *Static) Name() string { return "static" }

// Apply implements Mode. Static takes no input.
func (s *Static) Apply(Intents) {}

// Tick implements Mode. The noise is resampled during Draw; there is no
// state to advance.
func (s *Static) Tick() {}

// Draw scatters fresh random points inside the border, one batch per
// palette color. The scratch buffer holds one batch at a time.
func (s *Static) Draw(art *ArtSurface, style Style) {
	border := borderRect(s.art)
	pal := style.Palette
	for i := 0; i < pal.Len(); i++ {
		for j := range s.scratch {
			s.scratch[j] = Point{
				X: border.X + 1 + rand.Float64()*(border.W-3),
				Y: border.Y + 1 + rand.Float64()*(border.H-3),
			}
		}
		art.DrawPoints(s.scratch, pal.Color(i))
	}
}
