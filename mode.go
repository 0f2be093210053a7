package chunky

import "fmt"

// Style carries the per-frame drawing context shared by every mode:
// the active palette and whether the help overlay is up (some modes add
// debug geometry under the overlay).
type Style struct {
	Palette *Palette
	Overlay bool
}

// Mode is one of the sandbox's mutually exclusive demo variants. The
// pipeline drives the active mode through the frame phases: Apply
// consumes the frame's input intents once, Tick runs once per physics
// tick (possibly several per frame), and Draw renders the current state
// to the art surface.
type Mode interface {
	Name() string
	Apply(in Intents)
	Tick()
	Draw(art *ArtSurface, style Style)
}

// ModeNames lists the selectable demo modes.
func ModeNames() []string {
	return []string{"spinners", "blob", "gencurve", "static"}
}

// NewMode constructs the demo mode with the given name for an art surface
// of the given rect.
func NewMode(name string, art Rect) (Mode, error) {
	switch name {
	case "spinners":
		return NewSpinnerField(art), nil
	case "blob":
		return NewBlob(art), nil
	case "gencurve":
		return NewGenCurve(art), nil
	case "static":
		return NewStatic(art), nil
	}
	return nil, fmt.Errorf("unknown demo mode %q", name)
}
