package chunky

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Badwolf palette, carried over from Steve Losh's badwolf.vim colorscheme
// (http://stevelosh.com/projects/badwolf/).
var (
	colorPlain          = color.NRGBA{0xf8, 0xf6, 0xf2, 0xff}
	colorSnow           = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	colorCoal           = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	colorBrightGravel   = color.NRGBA{0xd9, 0xce, 0xc3, 0xff}
	colorLightGravel    = color.NRGBA{0x99, 0x8f, 0x84, 0xff}
	colorGravel         = color.NRGBA{0x85, 0x7f, 0x78, 0xff}
	colorMediumGravel   = color.NRGBA{0x66, 0x64, 0x62, 0xff}
	colorDeepGravel     = color.NRGBA{0x45, 0x41, 0x3b, 0xff}
	colorDeeperGravel   = color.NRGBA{0x35, 0x32, 0x2d, 0xff}
	colorDarkGravel     = color.NRGBA{0x24, 0x23, 0x21, 0xff}
	colorBlackGravel    = color.NRGBA{0x1c, 0x1b, 0x1a, 0xff}
	colorBlackestGravel = color.NRGBA{0x14, 0x14, 0x13, 0xff}
	colorDalespale      = color.NRGBA{0xfa, 0xde, 0x3e, 0xff}
	colorDirtyBlonde    = color.NRGBA{0xf4, 0xcf, 0x86, 0xff}
	colorTaffy          = color.NRGBA{0xff, 0x2c, 0x4b, 0xff}
	colorSaltwaterTaffy = color.NRGBA{0x8c, 0xff, 0xba, 0xff}
	colorTardis         = color.NRGBA{0x0a, 0x9d, 0xff, 0xff}
	colorOrange         = color.NRGBA{0xff, 0xa7, 0x24, 0xff}
	colorLime           = color.NRGBA{0xae, 0xee, 0x00, 0xff}
	colorDress          = color.NRGBA{0xff, 0x9e, 0xb8, 0xff}
	colorToffee         = color.NRGBA{0xb8, 0x88, 0x53, 0xff}
	colorCoffee         = color.NRGBA{0xc7, 0x91, 0x5b, 0xff}
	colorDarkRoast      = color.NRGBA{0x88, 0x63, 0x3f, 0xff}
)

// paletteList is the background cycling order. Indexes are stable; the
// named constants below point at entries other code needs by position.
var paletteList = []color.NRGBA{
	colorSnow,
	colorCoal,
	colorPlain,
	colorBrightGravel,
	colorLightGravel,
	colorGravel,
	colorMediumGravel,
	colorDeepGravel,
	colorDeeperGravel,
	colorDarkGravel,
	colorBlackGravel,
	colorBlackestGravel,
	colorDalespale,
	colorDirtyBlonde,
	colorTaffy,
	colorSaltwaterTaffy,
	colorTardis,
	colorOrange,
	colorLime,
	colorDress,
	colorToffee,
	colorCoffee,
	colorDarkRoast,
}

const (
	paletteSnow       = 0
	paletteCoal       = 1
	paletteDarkGravel = 9
)

// Palette cycles a background color through the badwolf list and derives
// a readable foreground for whatever the current background is.
type Palette struct {
	index int
}

// NewPalette returns a palette starting on dark gravel, the sandbox's
// default background.
func NewPalette() Palette {
	return Palette{index: paletteDarkGravel}
}

// Len returns the number of palette entries.
func (p *Palette) Len() int {
	return len(paletteList)
}

// Index returns the current background index.
func (p *Palette) Index() int {
	return p.index
}

// Color returns the palette entry at index i.
func (p *Palette) Color(i int) color.NRGBA {
	return paletteList[i]
}

// Background returns the current background color.
func (p *Palette) Background() color.NRGBA {
	return paletteList[p.index]
}

// Next advances the background to the next palette entry, wrapping.
func (p *Palette) Next() {
	p.index++
	if p.index >= len(paletteList) {
		p.index = 0
	}
}

// Prev moves the background to the previous palette entry, wrapping.
func (p *Palette) Prev() {
	p.index--
	if p.index < 0 {
		p.index = len(paletteList) - 1
	}
}

// ForegroundIndex returns the palette index of the color that contrasts
// with the current background: coal on light backgrounds, snow on dark
// ones. Derived from HSL lightness rather than a per-entry table so any
// future palette entry gets a readable foreground for free.
func (p *Palette) ForegroundIndex() int {
	c := p.Background()
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	_, _, l := cf.Hsl()
	if l >= 0.5 {
		return paletteCoal
	}
	return paletteSnow
}

// Foreground returns the contrasting color for the current background.
func (p *Palette) Foreground() color.NRGBA {
	return paletteList[p.ForegroundIndex()]
}

// withAlpha returns c with its alpha replaced by a.
func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
