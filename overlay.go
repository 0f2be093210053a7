package chunky

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	overlayBandHeight = 100
	overlayFadeTime   = 0.25 // seconds
)

// Overlay is the translucent help panel drawn over the top rows of the
// art surface: a darkening band so light art reads through it, a
// lightening band so dark art does, and the key legend. Visibility fades
// in and out with an eased tween instead of snapping.
type Overlay struct {
	visible bool
	alpha   float32
	tween   *gween.Tween
}

// Toggle flips visibility, fading from the current alpha so rapid
// toggles do not jump.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
	target := float32(0)
	if o.visible {
		target = 1
	}
	o.tween = gween.New(o.alpha, target, overlayFadeTime, ease.OutQuad)
}

// Visible reports whether the overlay is toggled on (regardless of
// whether the fade has finished).
func (o *Overlay) Visible() bool {
	return o.visible
}

// Update advances the fade by dt seconds.
func (o *Overlay) Update(dt float32) {
	if o.tween == nil {
		return
	}
	a, done := o.tween.Update(dt)
	o.alpha = a
	if done {
		o.tween = nil
	}
}

// Draw renders the bands and legend at the current fade alpha.
func (o *Overlay) Draw(art *ArtSurface) {
	if o.alpha <= 0 {
		return
	}
	band := RectF{W: float64(art.Rect().W), H: overlayBandHeight}

	// Darken light art to half, lighten dark art by an eighth.
	art.FillRect(band, withAlpha(colorCoal, scaleAlpha(255/(1<<1), o.alpha)))
	art.FillRect(band, withAlpha(colorSnow, scaleAlpha(255/(1<<3), o.alpha)))

	if o.alpha >= 1 {
		ebitenutil.DebugPrintAt(art.Image(), helpText, 8, 8)
	}
}

// scaleAlpha scales a base alpha by the fade factor.
func scaleAlpha(base uint8, f float32) uint8 {
	return uint8(float32(base) * f)
}

const helpText = "" +
	"q        quit\n" +
	"Space    next palette (Shift: previous)\n" +
	"F11      toggle fullscreen\n" +
	"j/k      slower/faster or down/up\n" +
	"J/K      smaller/bigger\n" +
	"h/l      left/right (tap)  w/a/s/d  move (hold)\n" +
	"?        toggle this help"

// DrawFPS prints the frame and tick rates in the screen corner, outside
// the art surface so it never scales.
func DrawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
}
