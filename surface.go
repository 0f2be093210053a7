package chunky

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArtSurface is the fixed-resolution offscreen target that all demo
// content is drawn to before scaling. Its dimensions are always exactly
// 16:9, parametrized by a single scale factor: width = 16·scale,
// height = 9·scale. Owned by the pipeline for the process lifetime and
// never resized in normal operation.
type ArtSurface struct {
	image *ebiten.Image
	rect  Rect
	scale int
}

// DefaultArtScale yields a 1280×720 art surface. Try 10 for maximum
// chunkiness, 20 for a retro-game look, 80 for high-res.
const DefaultArtScale = 80

// NewArtSurface allocates the offscreen image for the given scale factor.
func NewArtSurface(scale int) (*ArtSurface, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("art surface scale must be positive, got %d", scale)
	}
	rect := Rect{W: 16 * scale, H: 9 * scale}
	return &ArtSurface{
		image: ebiten.NewImage(rect.W, rect.H),
		rect:  rect,
		scale: scale,
	}, nil
}

// Rect returns the surface's pixel rect, anchored at the origin.
func (a *ArtSurface) Rect() Rect { return a.rect }

// Scale returns the surface's scale factor.
func (a *ArtSurface) Scale() int { return a.scale }

// Image exposes the underlying offscreen image.
func (a *ArtSurface) Image() *ebiten.Image { return a.image }

// Clear fills the whole surface with c.
func (a *ArtSurface) Clear(c color.Color) {
	a.image.Fill(c)
}

// --- Drawing helpers ---
//
// Points and filled rects go through the shared white pixel with a color
// scale; line strips go through the vector package with antialiasing off
// to keep edges chunky.

// DrawPoint plots a single pixel.
func (a *ArtSurface) DrawPoint(p Point, c color.Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(c)
	a.image.DrawImage(whitePixel(), &op)
}

// DrawPoints plots one pixel per point, reusing a single draw option set.
func (a *ArtSurface) DrawPoints(pts []Point, c color.Color) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(c)
	for _, p := range pts {
		op.GeoM.Reset()
		op.GeoM.Translate(p.X, p.Y)
		a.image.DrawImage(whitePixel(), &op)
	}
}

// StrokeLines connects consecutive points with one-pixel line segments.
// The strip is left open; callers wanting a closed polygon repeat the
// first point at the end.
func (a *ArtSurface) StrokeLines(pts []Point, c color.Color) {
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(a.image,
			float32(pts[i-1].X), float32(pts[i-1].Y),
			float32(pts[i].X), float32(pts[i].Y),
			1, c, false)
	}
}

// StrokeRect outlines r with one-pixel lines.
func (a *ArtSurface) StrokeRect(r RectF, c color.Color) {
	vector.StrokeRect(a.image,
		float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		1, c, false)
}

// FillRect fills r with c.
func (a *ArtSurface) FillRect(r RectF, c color.Color) {
	vector.DrawFilledRect(a.image,
		float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		c, false)
}

// Composite copies the art surface onto screen through the scaling
// policy: integer scale-up, centered, nearest-neighbor. When the screen
// is smaller than the art surface the copy lands unscaled at the origin
// and the screen bounds clip it, revealing the top-left portion.
func (a *ArtSurface) Composite(screen *ebiten.Image) {
	display := Rect{W: screen.Bounds().Dx(), H: screen.Bounds().Dy()}
	dst := FitRect(display, a.rect)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(
		float64(dst.W)/float64(a.rect.W),
		float64(dst.H)/float64(a.rect.H),
	)
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	screen.DrawImage(a.image, &op)
}
