package chunky

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowInfo is the window geometry and behavior derived from positional
// command-line arguments. The contract mimics a Vim window: pass nothing
// and get a normal resizable window; pass any geometry and get a
// borderless, always-on-top window suitable for embedding in another
// application's region.
type WindowInfo struct {
	X, Y, W, H int
	Borderless bool
}

// ParseWindowInfo reads up to four positional arguments, x y w h, each
// optional left-to-right. Unset arguments keep their defaults: position
// (50, 50), size twice the art rect. Non-numeric arguments parse
// permissively as zero — junk input is not an error.
func ParseWindowInfo(args []string, art Rect) WindowInfo {
	wi := WindowInfo{X: 50, Y: 50, W: 2 * art.W, H: 2 * art.H}
	if len(args) > 0 {
		wi.X = permissiveAtoi(args[0])
		wi.Borderless = true
	}
	if len(args) > 1 {
		wi.Y = permissiveAtoi(args[1])
	}
	if len(args) > 2 {
		wi.W = permissiveAtoi(args[2])
	}
	if len(args) > 3 {
		wi.H = permissiveAtoi(args[3])
	}
	return wi
}

// permissiveAtoi parses s as an integer, yielding 0 for anything that
// does not parse.
func permissiveAtoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// Apply pushes the geometry and behavior onto the host window.
func (wi WindowInfo) Apply(title string) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowPosition(wi.X, wi.Y)
	ebiten.SetWindowSize(wi.W, wi.H)
	if wi.Borderless {
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
}
