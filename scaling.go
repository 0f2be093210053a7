package chunky

// FitRect returns art scaled up and centered to best fit display while
// preserving aspect ratio and pixel chunkiness:
//
//   - the scale factor is always a whole number (fractional magnification
//     produces sampling artifacts)
//   - when display is smaller than art in either dimension the art rect is
//     returned unscaled; the caller clips at render time, revealing only
//     the top-left portion
//
// The returned rect never exceeds the display dimensions when scaling did
// apply.
func FitRect(display, art Rect) Rect {
	ratioW := display.W / art.W
	ratioH := display.H / art.H

	// Integer part of either ratio being 0 means the display cannot hold
	// even one unscaled copy in that dimension.
	if ratioW == 0 || ratioH == 0 {
		return art
	}

	k := min(ratioW, ratioH)
	scaled := Rect{W: k * art.W, H: k * art.H}
	return CenterRect(display, scaled)
}

// CenterRect returns src centered within display. Centering uses integer
// division, so an odd-size remainder leaves the result off-center by up
// to one pixel.
func CenterRect(display, src Rect) Rect {
	return Rect{
		X: (display.W - src.W) / 2,
		Y: (display.H - src.H) / 2,
		W: src.W,
		H: src.H,
	}
}
