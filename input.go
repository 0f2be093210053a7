package chunky

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input handling sets flags and does little else; the physics phase does
// the actual work by consuming them. Two sampling strategies coexist on
// purpose: h/j/k/l are edge-triggered (one keypress, one step — the
// tile-based feel) while w/a/s/d are polled every frame (held key,
// continuous motion — the platformer feel).

// Intents is the movement/resize flag set produced by one frame of input
// sampling. Flags are consumed and cleared exactly once per frame; a
// polled key simply re-raises its flag next frame.
type Intents struct {
	Up, Down, Left, Right bool
	Bigger, Smaller       bool
}

// Consume returns the current flag set and clears it, so a single
// keypress yields a single discrete step.
func (in *Intents) Consume() Intents {
	out := *in
	*in = Intents{}
	return out
}

// Commands are frame-level requests aimed at the pipeline itself rather
// than the active mode.
type Commands struct {
	Quit             bool
	PaletteNext      bool
	PalettePrev      bool
	ToggleFullscreen bool
	ToggleOverlay    bool
}

// PollInput drains this frame's keyboard state into intent flags and
// pipeline commands. Called once per frame from the input phase; no
// drawing or heavy computation happens here.
func PollInput(in *Intents) Commands {
	var cmd Commands
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		cmd.Quit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		cmd.ToggleFullscreen = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if shift {
			cmd.PalettePrev = true
		} else {
			cmd.PaletteNext = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && shift {
		cmd.ToggleOverlay = true
	}

	// Edge-triggered: k is up (faster), j is down (slower); Shift turns
	// them into resize intents.
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		if shift {
			in.Bigger = true
		} else {
			in.Up = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		if shift {
			in.Smaller = true
		} else {
			in.Down = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		in.Left = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		in.Right = true
	}

	// Polled: WASD re-raises its flag every frame the key is held.
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Up = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Left = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Down = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Right = true
	}

	return cmd
}
