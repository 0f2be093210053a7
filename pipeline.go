package chunky

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config configures a Pipeline. The zero value is usable: every field
// falls back to a sensible default at construction. All state the demo
// needs travels through this object and the Pipeline that consumes it;
// there are no package-level mode or window globals.
type Config struct {
	// ArtScale sets the art surface to 16·ArtScale × 9·ArtScale pixels.
	// Defaults to DefaultArtScale.
	ArtScale int
	// ModeName selects the demo variant (see ModeNames). Defaults to
	// "gencurve". Ignored when Mode is set directly.
	ModeName string
	// Mode overrides ModeName with a preconstructed mode.
	Mode Mode
	// TickMultiplier runs the physics phase this many times per video
	// frame, decoupling perceived animation speed from the 60 Hz
	// presentation rate. Defaults to 1.
	TickMultiplier int
	// ShowFPS draws a frame-rate readout in the window corner.
	ShowFPS bool
}

// Pipeline is the frame pipeline: it owns the art surface, the palette,
// the active mode, and the input flags, and drives each frame through
// the strict input → physics → art render → composite order. It
// implements ebiten.Game; the host's vsync-gated present is the only
// timing source.
type Pipeline struct {
	art     *ArtSurface
	mode    Mode
	pal     Palette
	intents Intents
	overlay Overlay

	tickMultiplier int
	showFPS        bool
	fullscreen     bool
}

// NewPipeline builds a pipeline from cfg. Initialization failures
// (invalid art scale, unknown mode name) are fatal to the caller; there
// is no retry.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if cfg.ArtScale <= 0 {
		cfg.ArtScale = DefaultArtScale
	}
	if cfg.TickMultiplier <= 0 {
		cfg.TickMultiplier = 1
	}
	if cfg.ModeName == "" {
		cfg.ModeName = "gencurve"
	}

	art, err := NewArtSurface(cfg.ArtScale)
	if err != nil {
		return nil, err
	}

	mode := cfg.Mode
	if mode == nil {
		mode, err = NewMode(cfg.ModeName, art.Rect())
		if err != nil {
			return nil, err
		}
	}

	return &Pipeline{
		art:            art,
		mode:           mode,
		pal:            NewPalette(),
		tickMultiplier: cfg.TickMultiplier,
		showFPS:        cfg.ShowFPS,
	}, nil
}

// Art returns the pipeline's art surface.
func (p *Pipeline) Art() *ArtSurface { return p.art }

// Mode returns the active demo mode.
func (p *Pipeline) Mode() Mode { return p.mode }

// Palette returns the pipeline's palette.
func (p *Pipeline) Palette() *Palette { return &p.pal }

// TickMultiplier returns the physics ticks run per video frame.
func (p *Pipeline) TickMultiplier() int { return p.tickMultiplier }

// Update runs the input and physics phases for one frame. Quit is the
// only exit path, checked here after in-flight work would have
// completed; returning ebiten.Termination ends the run cleanly.
func (p *Pipeline) Update() error {
	// Input phase: flags and counters only.
	cmd := PollInput(&p.intents)
	if cmd.Quit {
		return ebiten.Termination
	}
	if cmd.PaletteNext {
		p.pal.Next()
	}
	if cmd.PalettePrev {
		p.pal.Prev()
	}
	if cmd.ToggleFullscreen {
		p.fullscreen = !p.fullscreen
		ebiten.SetFullscreen(p.fullscreen)
	}
	if cmd.ToggleOverlay {
		p.overlay.Toggle()
	}

	// Physics phase: one-shot flags are consumed exactly once, then the
	// tick loop runs synchronously within this frame's budget.
	p.mode.Apply(p.intents.Consume())
	for i := 0; i < p.tickMultiplier; i++ {
		p.mode.Tick()
	}
	p.overlay.Update(1 / float32(ebiten.TPS()))
	return nil
}

// Draw runs the art render and composite phases. The display is fully
// cleared every frame: toggling fullscreen leaves stale pixels in
// regions the OS does not repaint, and the clear also colors whatever
// margin the scaled art does not cover.
func (p *Pipeline) Draw(screen *ebiten.Image) {
	// Art phase, at fixed resolution.
	p.art.Clear(p.pal.Background())
	p.art.StrokeRect(borderRect(p.art.Rect()), p.pal.Foreground())
	p.mode.Draw(p.art, Style{Palette: &p.pal, Overlay: p.overlay.Visible()})
	p.overlay.Draw(p.art)

	// Composite phase, at whatever size the display is this frame.
	screen.Fill(color.Black)
	p.art.Composite(screen)

	if p.showFPS {
		DrawFPS(screen)
	}
}

// Layout reports the draw-space size. Returning the outside size
// unchanged keeps one draw pixel per window pixel, so the scaling policy
// sees the real display dimensions as they change.
func (p *Pipeline) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
