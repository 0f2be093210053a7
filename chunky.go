package chunky

import "github.com/hajimehoshi/ebiten/v2"

// Point is a 2D point in art-surface coordinates. The origin is the
// top-left corner with Y increasing downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in whole pixels. Used for the art
// surface, the display area, and the scale mapping between them.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W &&
		r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H &&
		r.Y+r.H >= other.Y
}

// RectF is a float64 rectangle for geometry that lives between pixels,
// like the spawn border.
type RectF struct {
	X, Y, W, H float64
}

var whitePixelImage *ebiten.Image

// whitePixel returns the shared 1x1 white image used for solid-color
// point and rectangle drawing. Created lazily so pure-math tests never
// touch the graphics backend.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(colorSnow)
	}
	return whitePixelImage
}
