package chunky

import (
	"image/color"
	"math/rand/v2"
)

const (
	// blobQuarterPoints is N, the rational samples per quarter circle.
	// Powers of two between 2² and 2³ look best; 6 sits in that range.
	blobQuarterPoints = 6
	blobPointCount    = blobQuarterPoints * 4

	// blobJiggle scales the per-point random displacement, in the
	// normalized [-1, 1] circle space.
	blobJiggle = 0.1
)

// Blob is the demo mode showing a single jiggly circle outline. The
// outline is resampled from scratch every physics tick — jitter cannot be
// updated incrementally — while a parallel debug buffer keeps the same
// points without jitter for overlay comparison.
type Blob struct {
	// CenterX and CenterY position the blob on the art surface.
	CenterX, CenterY float64

	radius    float64
	maxRadius float64
	points    []Point
	debug     []Point
}

// NewBlob creates a blob centered in the art rect with a radius of a
// twelfth of the art width, growable up to a quarter of it. Both point
// buffers are allocated once and computed immediately.
func NewBlob(art Rect) *Blob {
	b := &Blob{
		CenterX:   float64(art.W / 2),
		CenterY:   float64(art.H / 2),
		radius:    float64(art.W / 12),
		maxRadius: float64(art.W / 4),
		points:    make([]Point, blobPointCount),
		debug:     make([]Point, blobPointCount),
	}
	b.Tick()
	return b
}

// Radius returns the current radius in art pixels.
func (b *Blob) Radius() float64 { return b.radius }

// Points returns the jittered outline. The last point equals the first so
// the polygon is closed for line-strip rendering.
func (b *Blob) Points() []Point { return b.points }

// DebugPoints returns the outline without jitter.
func (b *Blob) DebugPoints() []Point { return b.debug }

// Name implements Mode.
func (b *Blob) Name() string { return "blob" }

// Apply consumes the frame's intent flags. Resize intents step the radius
// by one pixel with clamping; movement intents step the center by a
// quarter of the current radius, so a larger blob moves faster.
func (b *Blob) Apply(in Intents) {
	if in.Smaller {
		b.radius--
		if b.radius <= 2 {
			b.radius = 2
		}
	}
	if in.Bigger {
		b.radius++
		if b.radius >= b.maxRadius {
			b.radius = b.maxRadius
		}
	}
	step := b.radius / 4
	if in.Down {
		b.CenterY += step
	}
	if in.Up {
		b.CenterY -= step
	}
	if in.Left {
		b.CenterX -= step
	}
	if in.Right {
		b.CenterX += step
	}
}

// Tick rebuilds both outlines: a rational quarter circle with fresh
// jitter, three rotated quarters, then scale and translate, then forced
// closure.
func (b *Blob) Tick() {
	for i := 0; i < blobQuarterPoints; i++ {
		p := Point{
			X: CircleX(i, blobQuarterPoints),
			Y: CircleY(i, blobQuarterPoints),
		}
		b.debug[i] = p

		// One random draw shared by x and y: the displacement is
		// deliberately diagonal, not independent per axis. Changing this
		// changes the animation's visual character.
		jiggle := blobJiggle * (rand.Float64() - 0.5)
		p.X += jiggle
		p.Y += jiggle
		b.points[i] = p
	}
	for i := blobQuarterPoints; i < blobPointCount; i++ {
		prev := b.points[i-blobQuarterPoints]
		b.points[i] = Point{X: -prev.Y, Y: prev.X}
		prevDebug := b.debug[i-blobQuarterPoints]
		b.debug[i] = Point{X: -prevDebug.Y, Y: prevDebug.X}
	}
	for i := 0; i < blobPointCount; i++ {
		b.points[i] = Point{
			X: b.radius*b.points[i].X + b.CenterX,
			Y: b.radius*b.points[i].Y + b.CenterY,
		}
		b.debug[i] = Point{
			X: b.radius*b.debug[i].X + b.CenterX,
			Y: b.radius*b.debug[i].Y + b.CenterY,
		}
	}
	// Overwrite the final point so the line strip closes exactly.
	b.points[blobPointCount-1] = b.points[0]
	b.debug[blobPointCount-1] = b.debug[0]
}

// Draw renders the outline as translucent tardis-blue lines with
// foreground-colored points on top. When the help overlay is up, the
// unjittered reference outline is drawn behind it in translucent green.
func (b *Blob) Draw(art *ArtSurface, style Style) {
	if style.Overlay {
		debugGreen := color.NRGBA{100, 255, 100, 255 / (1 << 1)}
		art.StrokeLines(b.debug, debugGreen)
	}
	art.StrokeLines(b.points, withAlpha(colorTardis, colorTardis.A/(1<<1)))
	art.DrawPoints(b.points, style.Palette.Foreground())
}
