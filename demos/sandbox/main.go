// Demo: the chunky rendering sandbox. Four demo modes over a
// fixed-resolution art surface that integer-scales into the window.
//
//	go run ./demos/sandbox -mode spinners
//	go run ./demos/sandbox -mode blob 100 100 640 360   (borderless at 100,100)
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/chunky"
)

func main() {
	mode := flag.String("mode", "gencurve",
		"demo mode: "+strings.Join(chunky.ModeNames(), ", "))
	scale := flag.Int("scale", chunky.DefaultArtScale,
		"art surface scale factor (surface is 16·scale x 9·scale)")
	ticks := flag.Int("ticks", 1, "physics ticks per video frame")
	fps := flag.Bool("fps", false, "show frame-rate readout")
	flag.Parse()

	p, err := chunky.NewPipeline(chunky.Config{
		ArtScale:       *scale,
		ModeName:       *mode,
		TickMultiplier: *ticks,
		ShowFPS:        *fps,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Positional args after the flags are window geometry: x y w h, each
	// optional. Passing any of them makes the window borderless.
	wi := chunky.ParseWindowInfo(flag.Args(), p.Art().Rect())
	wi.Apply("chunky sandbox")

	fmt.Printf("window: %dx%d at (%d,%d) borderless=%v\n", wi.W, wi.H, wi.X, wi.Y, wi.Borderless)
	fmt.Printf("art surface: %dx%d, palette of %d colors\n",
		p.Art().Rect().W, p.Art().Rect().H, p.Palette().Len())

	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
